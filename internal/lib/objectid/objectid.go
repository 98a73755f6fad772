// Package objectid проверяет и нормализует идентификаторы пользователей и видео.
//
// Идентификаторы в системе — UUID в каноническом текстовом виде.
package objectid

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrMalformed возвращается для строки, не являющейся идентификатором.
var ErrMalformed = errors.New("malformed identifier")

// IsValid сообщает, является ли строка корректным идентификатором.
func IsValid(id string) bool {
	_, err := Normalize(id)
	return err == nil
}

// Normalize разбирает идентификатор и возвращает его каноническую форму.
// Строки в формате urn:uuid и в фигурных скобках не принимаются.
func Normalize(id string) (string, error) {
	id = strings.TrimSpace(id)
	if len(id) != 36 {
		return "", ErrMalformed
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", errors.Join(ErrMalformed, err)
	}
	return parsed.String(), nil
}

// New возвращает новый идентификатор.
func New() string {
	return uuid.NewString()
}
