package api

import (
	"errors"
	"fmt"
)

// ErrorKind классифицирует ошибки HTTP адаптера
type ErrorKind int

const (
	// KindNetwork ответ от сервера не получен (соединение, таймаут, отмена контекста)
	KindNetwork ErrorKind = iota + 1
	// KindStatus сервер ответил статусом вне диапазона 2xx
	KindStatus
	// KindDecode тело ответа не JSON или не той формы
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network error"
	case KindStatus:
		return "http status error"
	case KindDecode:
		return "decode error"
	default:
		return "unknown error"
	}
}

// Sentinel значения для сравнения через errors.Is по виду ошибки
var (
	ErrNetwork = &HTTPError{Kind: KindNetwork}
	ErrStatus  = &HTTPError{Kind: KindStatus}
	ErrDecode  = &HTTPError{Kind: KindDecode}
)

// HTTPError единая ошибка адаптера
type HTTPError struct {
	Err        error // исходная причина, может быть nil
	Message    string
	Kind       ErrorKind
	StatusCode int // заполняется только для KindStatus
}

func (e *HTTPError) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// Is сравнивает по виду ошибки; для KindStatus с ненулевым кодом сравнивается и код
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.StatusCode == 0 || t.StatusCode == e.StatusCode
}

// StatusCode возвращает HTTP статус из цепочки ошибок или 0
func StatusCode(err error) int {
	var herr *HTTPError
	if errors.As(err, &herr) && herr.Kind == KindStatus {
		return herr.StatusCode
	}
	return 0
}

func networkError(err error) *HTTPError {
	return &HTTPError{Kind: KindNetwork, Message: err.Error(), Err: err}
}

func decodeError(msg string, err error) *HTTPError {
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	return &HTTPError{Kind: KindDecode, Message: msg, Err: err}
}
