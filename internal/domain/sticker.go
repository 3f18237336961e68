package domain

type StickerKind string

const (
	StickerKindText     StickerKind = "text"
	StickerKindLocation StickerKind = "location"
	StickerKindMention  StickerKind = "mention"
)

// DefaultStickerColor is used when no color was picked.
const DefaultStickerColor = "#FFFFFF"

// Sticker is positioned in percentage space of the story canvas,
// origin top-left, anchored at its center.
type Sticker struct {
	ID      string      `json:"id" validate:"required"`
	Kind    StickerKind `json:"type" validate:"oneof=text location mention"`
	Content string      `json:"content" validate:"required"`
	Color   string      `json:"color" validate:"omitempty,hexcolor"`
	X       float64     `json:"x" validate:"gte=0,lte=100"`
	Y       float64     `json:"y" validate:"gte=0,lte=100"`
}
