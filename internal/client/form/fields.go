package form

import (
	"fmt"
	"strings"
)

// Field адрес поля черновика. Набор закрыт: неизвестный путь
// отклоняется при разборе, дальше по коду ходят только эти значения.
type Field int

const (
	FieldName Field = iota + 1
	FieldEmail
	FieldPhone
	FieldRole
	FieldCompany
	FieldTags
	FieldNotes
	FieldSocialLinkedIn
	FieldSocialGitHub
	FieldSocialTwitter
)

const socialGroup = "social"

var fieldPaths = map[Field]string{
	FieldName:           "name",
	FieldEmail:          "email",
	FieldPhone:          "phone",
	FieldRole:           "role",
	FieldCompany:        "company",
	FieldTags:           "tags",
	FieldNotes:          "notes",
	FieldSocialLinkedIn: "social.linkedin",
	FieldSocialGitHub:   "social.github",
	FieldSocialTwitter:  "social.twitter",
}

var pathFields = func() map[string]Field {
	m := make(map[string]Field, len(fieldPaths))
	for f, p := range fieldPaths {
		m[p] = f
	}
	return m
}()

// String возвращает путь поля, например "social.linkedin"
func (f Field) String() string {
	if p, ok := fieldPaths[f]; ok {
		return p
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// Social сообщает, относится ли поле к группе social
func (f Field) Social() bool {
	return f == FieldSocialLinkedIn || f == FieldSocialGitHub || f == FieldSocialTwitter
}

// InvalidFieldError путь поля не распознан
type InvalidFieldError struct {
	Path   string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Path, e.Reason)
}

// ParseField разбирает путь поля: имя верхнего уровня или group.leaf.
// Из вложенных групп известна только social.
func ParseField(path string) (Field, error) {
	group, leaf, nested := strings.Cut(path, ".")
	if nested {
		if group != socialGroup {
			return 0, &InvalidFieldError{Path: path, Reason: fmt.Sprintf("unknown group %q", group)}
		}
		if leaf == "" || strings.Contains(leaf, ".") {
			return 0, &InvalidFieldError{Path: path, Reason: "expected group.leaf"}
		}
	}
	f, ok := pathFields[path]
	if !ok {
		return 0, &InvalidFieldError{Path: path, Reason: "unknown field"}
	}
	return f, nil
}

// ContactFields поля формы создания контакта в порядке отображения
func ContactFields() []Field {
	return []Field{
		FieldName, FieldEmail, FieldPhone, FieldRole, FieldCompany,
		FieldTags, FieldNotes, FieldSocialLinkedIn, FieldSocialGitHub, FieldSocialTwitter,
	}
}

// ProfileFields поля формы профиля
func ProfileFields() []Field {
	return []Field{FieldName, FieldEmail, FieldPhone}
}
