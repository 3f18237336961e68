package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaFileKind(t *testing.T) {
	cases := []struct {
		contentType string
		kind        MediaType
		ok          bool
	}{
		{"image/png", MediaTypeImage, true},
		{"IMAGE/JPEG", MediaTypeImage, true},
		{"video/mp4", MediaTypeVideo, true},
		{"", "", false},
		{"application/pdf", "", false},
		{"videogame", "", false},
	}

	for _, tc := range cases {
		kind, ok := MediaFile{ContentType: tc.contentType}.Kind()
		assert.Equal(t, tc.kind, kind, tc.contentType)
		assert.Equal(t, tc.ok, ok, tc.contentType)
	}
}

func TestMediaFileExt(t *testing.T) {
	assert.Equal(t, "png", MediaFile{Name: "a.png"}.Ext())
	assert.Equal(t, "", MediaFile{Name: "noext"}.Ext())
	assert.Equal(t, "", MediaFile{Name: "trailing."}.Ext())
}
