package models

import "fmt"

// Page одна страница контактов с сервера
type Page struct {
	Content    []Contact // Content контакты в порядке сервера
	Page       int       // Page номер страницы, начиная с 0
	TotalPages int       // TotalPages общее количество страниц
}

// Validate проверяет инварианты страницы
func (p *Page) Validate() error {
	if p.Page < 0 {
		return fmt.Errorf("page index must be non-negative, got %d", p.Page)
	}
	if p.TotalPages < 0 {
		return fmt.Errorf("total pages must be non-negative, got %d", p.TotalPages)
	}
	if p.TotalPages == 0 && len(p.Content) > 0 {
		return fmt.Errorf("page has %d contacts but total pages is 0", len(p.Content))
	}
	return nil
}

// Find ищет контакт на странице по ID
func (p *Page) Find(id string) (Contact, bool) {
	if p == nil {
		return Contact{}, false
	}
	for _, c := range p.Content {
		if c.ID == id {
			return c, true
		}
	}
	return Contact{}, false
}

// IsLast сообщает, является ли страница последней
func (p *Page) IsLast() bool {
	return p.Page >= p.TotalPages-1
}
