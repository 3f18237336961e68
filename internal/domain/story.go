package domain

import "time"

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
	MediaTypeText  MediaType = "text"
)

// StoryTTL is how long a story stays active after creation.
const StoryTTL = 24 * time.Hour

type Story struct {
	ID              string
	OwnerID         string
	MediaType       MediaType
	MediaRef        string // empty for text stories
	TextContent     string // text stories only
	DurationSeconds int
	Stickers        []Sticker
	Background      string // palette token, text stories only
	CreatedAt       time.Time
	ExpiresAt       time.Time
}

// IsActive reports whether the story is still visible at now.
func (s Story) IsActive(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}

func (s Story) Duration() time.Duration {
	return time.Duration(s.DurationSeconds) * time.Second
}

func (s Story) IsVideo() bool {
	return s.MediaType == MediaTypeVideo
}

// StoryDraft is what the composer hands to persistence.
type StoryDraft struct {
	OwnerID         string    `validate:"required"`
	MediaType       MediaType `validate:"required,oneof=image video text"`
	MediaRef        string    `validate:"required_unless=MediaType text"`
	TextContent     string
	DurationSeconds int       `validate:"gt=0"`
	Stickers        []Sticker `validate:"dive"`
	Background      string
}
