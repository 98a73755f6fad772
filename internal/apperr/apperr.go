// Package apperr описывает таксономию ошибок ядра: вид ошибки, сообщение для клиента
// и соответствие HTTP-статусу.
//
// Сервисы возвращают *Error через конструкторы InvalidIdentifier, NotFound и т.д.,
// транспорт определяет статус через KindOf(err).HTTPStatus().
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind — машиночитаемый вид ошибки.
type Kind string

// Виды ошибок.
const (
	KindInvalidIdentifier Kind = "InvalidIdentifier"
	KindInvalidInput      Kind = "InvalidInput"
	KindSelfSubscription  Kind = "SelfSubscriptionError"
	KindNotFound          Kind = "NotFound"
	KindUnauthorized      Kind = "Unauthorized"
	KindConflict          Kind = "Conflict"
	KindTooManyRequests   Kind = "TooManyRequests"
	KindInternal          Kind = "Internal"
)

// HTTPStatus возвращает HTTP-статус для вида ошибки.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindInvalidIdentifier, KindInvalidInput, KindSelfSubscription:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusConflict
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Error — доменная ошибка с видом и сообщением.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap возвращает исходную ошибку.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is сравнивает ошибки по виду.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// WithCause оборачивает исходную ошибку, сохраняя вид и сообщение.
func (e *Error) WithCause(err error) *Error {
	return &Error{Kind: e.Kind, Message: e.Message, cause: err}
}

// Эталонные ошибки для errors.Is.
var (
	ErrInvalidIdentifier = &Error{Kind: KindInvalidIdentifier, Message: "invalid identifier"}
	ErrInvalidInput      = &Error{Kind: KindInvalidInput, Message: "invalid input"}
	ErrSelfSubscription  = &Error{Kind: KindSelfSubscription, Message: "you cannot subscribe to yourself"}
	ErrNotFound          = &Error{Kind: KindNotFound, Message: "not found"}
	ErrUnauthorized      = &Error{Kind: KindUnauthorized, Message: "unauthorized"}
	ErrConflict          = &Error{Kind: KindConflict, Message: "conflict"}
	ErrInternal          = &Error{Kind: KindInternal, Message: "internal error"}
)

// InvalidIdentifier создаёт ошибку некорректного идентификатора.
func InvalidIdentifier(msg string) *Error {
	return &Error{Kind: KindInvalidIdentifier, Message: msg}
}

// InvalidInput создаёт ошибку отсутствующего или некорректного поля.
func InvalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}

// SelfSubscription создаёт ошибку подписки на самого себя.
func SelfSubscription() *Error {
	return &Error{Kind: KindSelfSubscription, Message: ErrSelfSubscription.Message}
}

// NotFound создаёт ошибку отсутствующей сущности или пустого результата.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Unauthorized создаёт ошибку неверных или устаревших учётных данных.
func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

// Conflict создаёт ошибку нарушения уникальности.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// TooManyRequests создаёт ошибку превышения лимита запросов.
func TooManyRequests(msg string) *Error {
	return &Error{Kind: KindTooManyRequests, Message: msg}
}

// Internal оборачивает неожиданную ошибку хранилища.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: ErrInternal.Message, cause: err}
}

// KindOf возвращает вид ошибки; для ошибок вне таксономии — KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf возвращает сообщение, безопасное для клиента.
// Для внутренних ошибок детали не раскрываются.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Message
	}
	return ErrInternal.Message
}
