package media

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectName(t *testing.T) {
	name := objectName(FolderAvatars, "Me.PNG")

	assert.True(t, strings.HasPrefix(name, "avatars/"))
	assert.True(t, strings.HasSuffix(name, ".png"))
	assert.NotEqual(t, name, objectName(FolderAvatars, "Me.PNG"))
}

func TestPublicURLRoundTrip(t *testing.T) {
	url := publicURL("https://storage.googleapis.com/", "vidhub", "covers/abc.jpg")
	assert.Equal(t, "https://storage.googleapis.com/vidhub/covers/abc.jpg", url)

	object, err := objectFromURL("https://storage.googleapis.com", "vidhub", url)
	require.NoError(t, err)
	assert.Equal(t, "covers/abc.jpg", object)
}

func TestObjectFromURL_Foreign(t *testing.T) {
	tests := []string{
		"",
		"https://res.cloudinary.com/demo/image/upload/sample.jpg",
		"https://storage.googleapis.com/other-bucket/avatars/a.png",
		"https://storage.googleapis.com/vidhub/",
	}

	for _, url := range tests {
		_, err := objectFromURL("https://storage.googleapis.com", "vidhub", url)
		assert.ErrorIs(t, err, ErrForeignURL, url)
	}
}
