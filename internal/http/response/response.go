// Package response формирует единый JSON-конверт ответов HTTP-обработчиков:
// {statusCode, data, message, success} при успехе и
// {statusCode, message, errorKind, success} при ошибке.
package response

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/vidhub/internal/apperr"
)

// Response — успешный ответ.
type Response struct {
	StatusCode int    `json:"statusCode" example:"200"`
	Data       any    `json:"data"`
	Message    string `json:"message" example:"ok"`
	Success    bool   `json:"success" example:"true"`
}

// ErrorResponse — ответ с ошибкой. Используется и в аннотациях @Failure.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"invalid channelId"`
	ErrorKind  string `json:"errorKind" example:"InvalidIdentifier"`
	Success    bool   `json:"success" example:"false"`
}

// OK формирует успешный ответ. Пустые данные сериализуются как {}.
func OK(status int, data any, message string) Response {
	if data == nil {
		data = struct{}{}
	}
	return Response{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    true,
	}
}

// Error формирует ответ по доменной ошибке. Детали внутренних ошибок скрываются.
func Error(err error) ErrorResponse {
	kind := apperr.KindOf(err)
	return ErrorResponse{
		StatusCode: kind.HTTPStatus(),
		Message:    apperr.MessageOf(err),
		ErrorKind:  string(kind),
		Success:    false,
	}
}

// Write отправляет успешный ответ со статусом status.
func Write(w http.ResponseWriter, r *http.Request, status int, data any, message string) {
	render.Status(r, status)
	render.JSON(w, r, OK(status, data, message))
}

// WriteError отправляет ответ с ошибкой и соответствующим ей статусом.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	resp := Error(err)
	render.Status(r, resp.StatusCode)
	render.JSON(w, r, resp)
}

// ValidationError превращает ошибки валидатора в InvalidInput.
// Каждое нарушение формулируется человекочитаемо, сообщения объединяются через запятую.
func ValidationError(err error) *apperr.Error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.InvalidInput("invalid request")
	}

	var msgs []string
	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is a required field", e.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("field %s must be a valid email", e.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("field %s must be at least %s characters", e.Field(), e.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("field %s must be at most %s characters", e.Field(), e.Param()))
		case "required_without":
			msgs = append(msgs, fmt.Sprintf("field %s is required when %s is empty", e.Field(), e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is not valid", e.Field()))
		}
	}
	return apperr.InvalidInput(strings.Join(msgs, ", "))
}
