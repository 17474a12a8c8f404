package gallery

import (
	"mime/multipart"
	"net/textproto"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildObjectKeyShape(t *testing.T) {
	key := buildObjectKey("Team Photo.JPG")
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{12}_\d+\.jpg$`), key)
}

func TestBuildObjectKeyNoExtension(t *testing.T) {
	key := buildObjectKey("snapshot")
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{12}_\d+$`), key)
}

func TestBuildObjectKeyUnique(t *testing.T) {
	assert.NotEqual(t, buildObjectKey("a.png"), buildObjectKey("a.png"))
}

func TestKeyFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://cdn.example.com/images/abc123_17000.png", "abc123_17000.png"},
		{"https://bucket.endpoint.example.com/abc.webp", "abc.webp"},
		{"https://example.com/", ""},
		{"://bad url", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, keyFromURL(tc.url), "url %q", tc.url)
	}
}

func TestDetectContentType(t *testing.T) {
	withHeader := &multipart.FileHeader{
		Filename: "a.bin",
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
	}
	assert.Equal(t, "image/png", detectContentType(withHeader))

	byExt := &multipart.FileHeader{Filename: "photo.WEBP", Header: textproto.MIMEHeader{}}
	assert.Equal(t, "image/webp", detectContentType(byExt))

	unknown := &multipart.FileHeader{Filename: "blob", Header: textproto.MIMEHeader{}}
	assert.Equal(t, "application/octet-stream", detectContentType(unknown))
}
