package view

import (
	"strings"

	"github.com/iudanet/contactbook/internal/models"
)

// Visible отбирает контакты, видимые при данных поиске и фильтре.
// Контакт виден, если строка поиска пуста или входит (без учета регистра)
// в имя или email, и фильтр равен "all" или является тегом контакта.
// Порядок сервера сохраняется.
func Visible(contacts []models.Contact, search, filter string) []models.Contact {
	term := strings.ToLower(search)
	out := make([]models.Contact, 0, len(contacts))
	for _, c := range contacts {
		if matchesSearch(c, term) && matchesFilter(c, filter) {
			out = append(out, c)
		}
	}
	return out
}

func matchesSearch(c models.Contact, lowerTerm string) bool {
	if lowerTerm == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), lowerTerm) ||
		strings.Contains(strings.ToLower(c.Email), lowerTerm)
}

func matchesFilter(c models.Contact, filter string) bool {
	if filter == "" || filter == models.FilterAll {
		return true
	}
	return c.HasTag(filter)
}
