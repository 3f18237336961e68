package domain

import "strings"

// MediaFile is a picked file before upload.
type MediaFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// Kind maps the file's content type to a story media type. It reports false
// for anything that is neither an image nor a video.
func (f MediaFile) Kind() (MediaType, bool) {
	ct := strings.ToLower(strings.TrimSpace(f.ContentType))
	switch {
	case strings.HasPrefix(ct, "video/"):
		return MediaTypeVideo, true
	case strings.HasPrefix(ct, "image/"):
		return MediaTypeImage, true
	default:
		return "", false
	}
}

// Ext returns the file extension without the dot, or "" when absent.
func (f MediaFile) Ext() string {
	i := strings.LastIndex(f.Name, ".")
	if i < 0 || i == len(f.Name)-1 {
		return ""
	}
	return f.Name[i+1:]
}

// Place is a location search hit used for location stickers.
type Place struct {
	DisplayName string
	Lat         float64
	Lon         float64
}
