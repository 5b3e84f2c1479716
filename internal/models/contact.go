package models

import (
	"slices"
	"strings"

	"github.com/iudanet/contactbook/pkg/api"
)

// FilterAll значение фильтра, при котором ограничение по тегу не применяется
const FilterAll = "all"

// Social содержит имена пользователей в социальных сетях.
// Набор ключей фиксирован: linkedin, github, twitter.
type Social struct {
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Twitter  string `json:"twitter"`
}

// Contact представляет контакт, полученный с сервера.
// ID назначается сервером и не меняется.
type Contact struct {
	Social  Social   `json:"social"`  // Social имена в соцсетях
	ID      string   `json:"id"`      // ID идентификатор, назначенный сервером
	Name    string   `json:"name"`    // Name имя контакта
	Email   string   `json:"email"`   // Email адрес электронной почты
	Phone   string   `json:"phone"`   // Phone телефон
	Role    string   `json:"role"`    // Role должность
	Company string   `json:"company"` // Company компания
	Notes   string   `json:"notes"`   // Notes заметки
	Image   string   `json:"image"`   // Image data URL изображения или пустая строка
	Tags    []string `json:"tags"`    // Tags теги (множество, порядок не важен)
}

// HasTag проверяет, содержит ли контакт тег
func (c Contact) HasTag(tag string) bool {
	return slices.Contains(c.Tags, tag)
}

// ParseTags превращает строку вида "developer, frontend" в набор тегов.
// Пробелы обрезаются, пустые элементы отбрасываются, повторы удаляются.
func ParseTags(input string) []string {
	tags := make([]string, 0)
	for _, part := range strings.Split(input, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" || slices.Contains(tags, tag) {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// ContactFromAPI конвертирует DTO сервера в модель
func ContactFromAPI(c api.Contact) Contact {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return Contact{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Role:    c.Role,
		Company: c.Company,
		Notes:   c.Notes,
		Image:   c.Image,
		Tags:    tags,
		Social:  Social(c.Social),
	}
}
