package models

import "github.com/iudanet/contactbook/pkg/api"

// ContactDraft черновик нового контакта в форме.
// Tags хранится как строка через запятую, в набор превращается при отправке.
type ContactDraft struct {
	Social  Social `validate:"-"`
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Phone   string
	Role    string
	Company string
	Tags    string
	Notes   string
	Image   string // data URL, пустая строка если изображения нет
}

// EmptyContactDraft возвращает пустой шаблон формы создания контакта
func EmptyContactDraft() ContactDraft {
	return ContactDraft{}
}

// ToRequest собирает тело запроса POST /contacts
func (d ContactDraft) ToRequest() api.CreateContactRequest {
	req := api.CreateContactRequest{
		Name:    d.Name,
		Email:   d.Email,
		Phone:   d.Phone,
		Role:    d.Role,
		Company: d.Company,
		Notes:   d.Notes,
		Tags:    ParseTags(d.Tags),
		Social:  api.Social(d.Social),
	}
	if d.Image != "" {
		image := d.Image
		req.Image = &image
	}
	return req
}
