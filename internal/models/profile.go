package models

import "github.com/iudanet/contactbook/pkg/api"

// Profile профиль текущего пользователя. Сохраняется только целиком.
type Profile struct {
	Name       string `validate:"required"`
	Email      string `validate:"required,email"`
	Phone      string
	Avatar     string `validate:"-"` // data URL
	JoinedDate string `validate:"-"` // только для чтения
}

// ProfileFromAPI конвертирует DTO сервера в модель
func ProfileFromAPI(p api.Profile) Profile {
	return Profile(p)
}

// ToAPI конвертирует модель в DTO
func (p Profile) ToAPI() api.Profile {
	return api.Profile(p)
}
