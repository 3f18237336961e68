package sticker

import (
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/orgball2608/story-engine/internal/domain"
	"github.com/orgball2608/story-engine/internal/geometry"
)

const (
	// TapThreshold is the largest pointer displacement, in device-independent
	// pixels, that still counts as a tap rather than a drag.
	TapThreshold = 5.0

	// DropZoneY is the percentage line below which a released sticker is deleted.
	DropZoneY = 85.0

	DefaultX = 50.0
	DefaultY = 50.0
)

var (
	ErrUnknownSticker = errors.New("sticker not found")
	ErrDragInProgress = errors.New("another sticker is being dragged")
	ErrNotDragging    = errors.New("sticker is not the active drag target")
)

type Action int

const (
	// ActionMoved means the drag only repositioned the sticker.
	ActionMoved Action = iota
	// ActionTapped means the gesture was a tap; the caller should open the editor.
	ActionTapped
	// ActionDeleted means the sticker was released over the drop zone and removed.
	ActionDeleted
)

func (a Action) String() string {
	switch a {
	case ActionTapped:
		return "tapped"
	case ActionDeleted:
		return "deleted"
	default:
		return "moved"
	}
}

type DragResult struct {
	Action  Action
	Sticker domain.Sticker
}

type Config struct {
	TapThreshold float64
	DropZoneY    float64
	Default      geometry.Point
}

func DefaultConfig() Config {
	return Config{
		TapThreshold: TapThreshold,
		DropZoneY:    DropZoneY,
		Default:      geometry.Point{X: DefaultX, Y: DefaultY},
	}
}

type drag struct {
	id     string
	start  geometry.Point
	origin geometry.Point
}

// Editor owns the sticker list of one draft. It is not safe for concurrent use;
// the composer serializes access.
type Editor struct {
	cfg         Config
	container   geometry.Rect
	stickers    []domain.Sticker
	drag        *drag
	hoverDelete bool
	newID       func() string
}

func NewEditor(cfg Config, container geometry.Rect) *Editor {
	return &Editor{
		cfg:       cfg,
		container: container,
		newID:     uuid.NewString,
	}
}

// SetContainer updates the on-screen canvas rect, e.g. after a resize.
func (e *Editor) SetContainer(r geometry.Rect) {
	e.container = r
}

func (e *Editor) Container() geometry.Rect {
	return e.container
}

// Stickers returns a copy of the current stickers in placement order.
func (e *Editor) Stickers() []domain.Sticker {
	return slices.Clone(e.stickers)
}

func (e *Editor) Len() int {
	return len(e.stickers)
}

func (e *Editor) Get(id string) (domain.Sticker, bool) {
	i := e.index(id)
	if i < 0 {
		return domain.Sticker{}, false
	}
	return e.stickers[i], true
}

// Place appends a new sticker at the default position.
func (e *Editor) Place(kind domain.StickerKind, content, color string) domain.Sticker {
	return e.PlaceAt(kind, content, color, e.cfg.Default)
}

// PlaceAt appends a new sticker at pos (percentage space, clamped).
func (e *Editor) PlaceAt(kind domain.StickerKind, content, color string, pos geometry.Point) domain.Sticker {
	if color == "" {
		color = domain.DefaultStickerColor
	}
	s := domain.Sticker{
		ID:      e.newID(),
		Kind:    kind,
		Content: content,
		Color:   color,
		X:       geometry.Clamp(pos.X, 0, 100),
		Y:       geometry.Clamp(pos.Y, 0, 100),
	}
	e.stickers = append(e.stickers, s)
	return s
}

// Dragging returns the active drag target, if any.
func (e *Editor) Dragging() (string, bool) {
	if e.drag == nil {
		return "", false
	}
	return e.drag.id, true
}

// HoverDelete reports whether the dragged sticker is currently over the drop zone.
func (e *Editor) HoverDelete() bool {
	return e.hoverDelete
}

// BeginDrag records the drag target and the raw pointer-down point. The point
// is only used to tell taps from drags, never for positioning.
func (e *Editor) BeginDrag(id string, down geometry.Point) error {
	if e.index(id) < 0 {
		return ErrUnknownSticker
	}
	if e.drag != nil && e.drag.id != id {
		return ErrDragInProgress
	}
	s := e.stickers[e.index(id)]
	e.drag = &drag{id: id, start: down, origin: geometry.Point{X: s.X, Y: s.Y}}
	e.hoverDelete = false
	return nil
}

// UpdateDrag moves the active drag target under the pointer.
func (e *Editor) UpdateDrag(id string, p geometry.Point) error {
	if e.drag == nil || e.drag.id != id {
		return ErrNotDragging
	}
	i := e.index(id)
	if i < 0 {
		e.reset()
		return ErrUnknownSticker
	}

	pos := geometry.ToPercent(p, e.container)
	e.stickers[i].X = pos.X
	e.stickers[i].Y = pos.Y
	e.hoverDelete = e.inDropZone(pos)
	return nil
}

// EndDrag resolves the gesture from the release point. The drop zone wins
// over the tap check so a sticker released in the zone is always deleted.
// A tap puts the sticker back where the gesture started.
func (e *Editor) EndDrag(id string, up geometry.Point) (DragResult, error) {
	if e.drag == nil || e.drag.id != id {
		return DragResult{}, ErrNotDragging
	}
	d := *e.drag
	defer e.reset()

	i := e.index(id)
	if i < 0 {
		return DragResult{}, ErrUnknownSticker
	}
	s := e.stickers[i]

	if e.inDropZone(geometry.ToPercent(up, e.container)) {
		e.stickers = slices.Delete(e.stickers, i, i+1)
		return DragResult{Action: ActionDeleted, Sticker: s}, nil
	}

	if geometry.Distance(d.start, up) < e.cfg.TapThreshold {
		e.stickers[i].X = d.origin.X
		e.stickers[i].Y = d.origin.Y
		return DragResult{Action: ActionTapped, Sticker: e.stickers[i]}, nil
	}

	return DragResult{Action: ActionMoved, Sticker: s}, nil
}

// CancelDrag drops the active drag without deciding anything.
func (e *Editor) CancelDrag() {
	e.reset()
}

// CommitEdit applies the text editor's result. An empty id creates a new text
// sticker. Blank content deletes the edited sticker, or creates nothing.
// The bool result is false when no sticker exists afterwards.
func (e *Editor) CommitEdit(id, content, color string) (domain.Sticker, bool, error) {
	if color == "" {
		color = domain.DefaultStickerColor
	}
	blank := strings.TrimSpace(content) == ""

	if id == "" {
		if blank {
			return domain.Sticker{}, false, nil
		}
		return e.Place(domain.StickerKindText, content, color), true, nil
	}

	i := e.index(id)
	if i < 0 {
		return domain.Sticker{}, false, ErrUnknownSticker
	}
	if blank {
		e.Remove(id)
		return domain.Sticker{}, false, nil
	}

	e.stickers[i].Content = content
	e.stickers[i].Color = color
	return e.stickers[i], true, nil
}

// Remove deletes a sticker; removing the drag target also ends the drag.
func (e *Editor) Remove(id string) bool {
	i := e.index(id)
	if i < 0 {
		return false
	}
	e.stickers = slices.Delete(e.stickers, i, i+1)
	if e.drag != nil && e.drag.id == id {
		e.reset()
	}
	return true
}

func (e *Editor) inDropZone(pos geometry.Point) bool {
	return pos.Y > e.cfg.DropZoneY
}

func (e *Editor) reset() {
	e.drag = nil
	e.hoverDelete = false
}

func (e *Editor) index(id string) int {
	return slices.IndexFunc(e.stickers, func(s domain.Sticker) bool {
		return s.ID == id
	})
}
