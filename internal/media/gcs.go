package media

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/magabrotheeeer/vidhub/internal/config"
)

// GCSUploader хранит файлы в Google Cloud Storage.
type GCSUploader struct {
	client    *storage.Client
	bucket    string
	baseURL   string
	newWriter func(ctx context.Context, object, contentType string) io.WriteCloser
}

// NewGCSUploader создаёт клиент хранилища. Без файла ключа используются
// учётные данные окружения (ADC).
func NewGCSUploader(ctx context.Context, cfg config.Media) (*GCSUploader, error) {
	const op = "media.NewGCSUploader"
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("%s: bucket is not configured", op)
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u := &GCSUploader{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: cfg.BaseURL,
	}
	u.newWriter = u.objectWriter
	return u, nil
}

func (u *GCSUploader) objectWriter(ctx context.Context, object, contentType string) io.WriteCloser {
	writer := u.client.Bucket(u.bucket).Object(object).NewWriter(ctx)
	writer.ContentType = contentType
	writer.CacheControl = "public, max-age=86400"
	return writer
}

// Upload сохраняет файл в папку folder и возвращает публичный URL.
// При ошибке чтения загрузка прерывается отменой контекста писателя,
// недописанный объект в бакете не появляется.
func (u *GCSUploader) Upload(ctx context.Context, folder string, file File) (string, error) {
	const op = "media.Upload"
	object := objectName(folder, file.Name)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	writer := u.newWriter(ctx, object, file.ContentType)
	if _, err := io.Copy(writer, file.Body); err != nil {
		cancel()
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return publicURL(u.baseURL, u.bucket, object), nil
}

// Delete удаляет объект по его публичному URL. Отсутствующий объект не считается ошибкой.
func (u *GCSUploader) Delete(ctx context.Context, url string) error {
	const op = "media.Delete"
	object, err := objectFromURL(u.baseURL, u.bucket, url)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	err = u.client.Bucket(u.bucket).Object(object).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает клиент хранилища.
func (u *GCSUploader) Close() error {
	return u.client.Close()
}
