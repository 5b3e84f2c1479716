package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/iudanet/contactbook/internal/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldError описывает одно нарушение правил для поля
type FieldError struct {
	Field string // имя поля в нижнем регистре, как в форме
	Rule  string // нарушенное правило: required, email
}

// ValidationError возвращается, когда обязательное поле пустое или имеет неверный формат
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		switch f.Rule {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", f.Field))
		case "email":
			parts = append(parts, fmt.Sprintf("%s must be a valid email address", f.Field))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid (%s)", f.Field, f.Rule))
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// HasField сообщает, есть ли ошибка для указанного поля
func (e *ValidationError) HasField(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// ValidateContactDraft проверяет черновик контакта перед отправкой.
// Сервер остается источником истины, здесь только клиентские предусловия.
func ValidateContactDraft(d models.ContactDraft) error {
	return structErr(validate.Struct(d))
}

// ValidateProfile проверяет профиль перед сохранением
func ValidateProfile(p models.Profile) error {
	return structErr(validate.Struct(p))
}

// ValidateEmail проверяет формат email (используется при входе)
func ValidateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return &ValidationError{Fields: []FieldError{{Field: "email", Rule: verrs[0].Tag()}}}
		}
		return fmt.Errorf("failed to validate email: %w", err)
	}
	return nil
}

func structErr(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate: %w", err)
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field: strings.ToLower(fe.Field()),
			Rule:  fe.Tag(),
		})
	}
	return out
}
