// Package formfile достаёт загруженные файлы из multipart-запросов.
package formfile

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/magabrotheeeer/vidhub/internal/apperr"
	"github.com/magabrotheeeer/vidhub/internal/media"
)

// MaxMemory — сколько байт multipart-формы держится в памяти, остальное уходит во временные файлы.
const MaxMemory = 10 << 20

// MaxUploadSize ограничивает размер всего тела multipart-запроса.
const MaxUploadSize = 25 << 20

// Parse ограничивает тело запроса maxSize байтами и разбирает multipart-форму.
// Возвращает InvalidInput для слишком большого или некорректного тела.
func Parse(w http.ResponseWriter, r *http.Request, maxSize int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)
	if err := r.ParseMultipartForm(MaxMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperr.InvalidInput("request body is too large").WithCause(err)
		}
		return apperr.InvalidInput("invalid multipart form").WithCause(err)
	}
	return nil
}

// Get возвращает файл из поля field или nil, если поле не передано.
// Body файла читается до закрытия тела запроса.
func Get(r *http.Request, field string) (*media.File, error) {
	const op = "formfile.Get"

	f, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &media.File{
		Name:        header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Body:        f,
	}, nil
}

// Close закрывает тела файлов, полученных через Get.
func Close(files ...*media.File) {
	for _, f := range files {
		if f == nil {
			continue
		}
		if c, ok := f.Body.(io.Closer); ok {
			_ = c.Close()
		}
	}
}
