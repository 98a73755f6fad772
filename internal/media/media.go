// Package media загружает изображения профиля (аватар, обложка) во внешнее
// хранилище и возвращает их публичный URL.
package media

import (
	"errors"
	"io"
	"path"
	"strings"

	"github.com/magabrotheeeer/vidhub/internal/lib/objectid"
)

// ErrForeignURL возвращается при попытке удалить объект не из нашего бакета.
var ErrForeignURL = errors.New("url does not belong to media bucket")

// File — загружаемый файл.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Папки в бакете.
const (
	FolderAvatars = "avatars"
	FolderCovers  = "covers"
)

func objectName(folder, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return folder + "/" + objectid.New() + ext
}

func publicURL(baseURL, bucket, object string) string {
	return strings.TrimRight(baseURL, "/") + "/" + bucket + "/" + object
}

func objectFromURL(baseURL, bucket, url string) (string, error) {
	prefix := strings.TrimRight(baseURL, "/") + "/" + bucket + "/"
	if !strings.HasPrefix(url, prefix) || len(url) == len(prefix) {
		return "", ErrForeignURL
	}
	return strings.TrimPrefix(url, prefix), nil
}
