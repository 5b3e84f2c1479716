package form

import (
	"github.com/iudanet/contactbook/internal/models"
)

// UpdateContact возвращает копию черновика, в которой изменено только поле f
func UpdateContact(d models.ContactDraft, f Field, value string) (models.ContactDraft, error) {
	switch f {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	case FieldRole:
		d.Role = value
	case FieldCompany:
		d.Company = value
	case FieldTags:
		d.Tags = value
	case FieldNotes:
		d.Notes = value
	case FieldSocialLinkedIn:
		d.Social.LinkedIn = value
	case FieldSocialGitHub:
		d.Social.GitHub = value
	case FieldSocialTwitter:
		d.Social.Twitter = value
	default:
		return d, &InvalidFieldError{Path: f.String(), Reason: "not a contact field"}
	}
	return d, nil
}

// UpdateContactPath то же, что UpdateContact, но по строковому пути
func UpdateContactPath(d models.ContactDraft, path, value string) (models.ContactDraft, error) {
	f, err := ParseField(path)
	if err != nil {
		return d, err
	}
	return UpdateContact(d, f, value)
}

// UpdateProfile возвращает копию профиля с измененным полем.
// В профиле редактируются только name, email и phone.
func UpdateProfile(p models.Profile, f Field, value string) (models.Profile, error) {
	switch f {
	case FieldName:
		p.Name = value
	case FieldEmail:
		p.Email = value
	case FieldPhone:
		p.Phone = value
	default:
		return p, &InvalidFieldError{Path: f.String(), Reason: "not a profile field"}
	}
	return p, nil
}

// UpdateProfilePath то же, что UpdateProfile, но по строковому пути
func UpdateProfilePath(p models.Profile, path, value string) (models.Profile, error) {
	f, err := ParseField(path)
	if err != nil {
		return p, err
	}
	return UpdateProfile(p, f, value)
}

// ContactValue читает значение поля черновика
func ContactValue(d models.ContactDraft, f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldPhone:
		return d.Phone
	case FieldRole:
		return d.Role
	case FieldCompany:
		return d.Company
	case FieldTags:
		return d.Tags
	case FieldNotes:
		return d.Notes
	case FieldSocialLinkedIn:
		return d.Social.LinkedIn
	case FieldSocialGitHub:
		return d.Social.GitHub
	case FieldSocialTwitter:
		return d.Social.Twitter
	}
	return ""
}

// ProfileValue читает значение поля профиля
func ProfileValue(p models.Profile, f Field) string {
	switch f {
	case FieldName:
		return p.Name
	case FieldEmail:
		return p.Email
	case FieldPhone:
		return p.Phone
	}
	return ""
}
