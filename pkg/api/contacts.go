package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Social содержит имена пользователей в социальных сетях
type Social struct {
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Twitter  string `json:"twitter"`
}

// Contact представляет контакт в том виде, в котором его отдает сервер
type Contact struct {
	Social  Social   `json:"social"`
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Role    string   `json:"role"`
	Company string   `json:"company"`
	Notes   string   `json:"notes,omitempty"`
	Image   string   `json:"image,omitempty"` // data URL
	Tags    []string `json:"tags"`
}

// CreateContactRequest тело POST /contacts (Contact без id)
type CreateContactRequest struct {
	Social  Social   `json:"social"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Role    string   `json:"role"`
	Company string   `json:"company"`
	Notes   string   `json:"notes"`
	Image   *string  `json:"image,omitempty"` // data URL или отсутствует
	Tags    []string `json:"tags"`
}

// ContactPageResponse ответ GET /contacts/user
type ContactPageResponse struct {
	Content    []Contact `json:"content"`
	TotalPages int       `json:"totalPages"`
}

// ErrMalformedPage ответ страницы не содержит обязательных полей
var ErrMalformedPage = errors.New("malformed contacts page")

var jsonNull = []byte("null")

// UnmarshalJSON требует наличия content и totalPages.
// content: null допустим и означает пустую страницу.
func (r *ContactPageResponse) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return fmt.Errorf("%w: response is null", ErrMalformedPage)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	rawContent, ok := fields["content"]
	if !ok {
		return fmt.Errorf("%w: no content field", ErrMalformedPage)
	}
	rawTotal, ok := fields["totalPages"]
	if !ok || bytes.Equal(bytes.TrimSpace(rawTotal), jsonNull) {
		return fmt.Errorf("%w: no totalPages field", ErrMalformedPage)
	}

	var content []Contact
	if err := json.Unmarshal(rawContent, &content); err != nil {
		return fmt.Errorf("%w: content: %w", ErrMalformedPage, err)
	}
	var total int
	if err := json.Unmarshal(rawTotal, &total); err != nil {
		return fmt.Errorf("%w: totalPages: %w", ErrMalformedPage, err)
	}

	r.Content = content
	r.TotalPages = total
	return nil
}

// Profile представляет профиль текущего пользователя
type Profile struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Avatar     string `json:"avatar,omitempty"` // data URL
	JoinedDate string `json:"joinedDate,omitempty"`
}
