package sticker

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/orgball2608/story-engine/internal/domain"
	"github.com/orgball2608/story-engine/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// canvas is 400x800 at the origin so 1% is 4px horizontally and 8px vertically.
var canvas = geometry.Rect{Width: 400, Height: 800}

func newTestEditor() *Editor {
	e := NewEditor(DefaultConfig(), canvas)
	n := 0
	e.newID = func() string {
		n++
		return fmt.Sprintf("s%d", n)
	}
	return e
}

func TestPlaceUsesCenterAndDefaultColor(t *testing.T) {
	e := newTestEditor()

	s := e.Place(domain.StickerKindText, "hello", "")

	assert.Equal(t, "s1", s.ID)
	assert.Equal(t, 50.0, s.X)
	assert.Equal(t, 50.0, s.Y)
	assert.Equal(t, domain.DefaultStickerColor, s.Color)
	assert.Equal(t, 1, e.Len())
}

func TestDragRepositionsLive(t *testing.T) {
	e := newTestEditor()
	s := e.Place(domain.StickerKindText, "hi", "#FF0000")

	require.NoError(t, e.BeginDrag(s.ID, geometry.Point{X: 200, Y: 400}))
	require.NoError(t, e.UpdateDrag(s.ID, geometry.Point{X: 100, Y: 200}))

	got, _ := e.Get(s.ID)
	assert.Equal(t, 25.0, got.X)
	assert.Equal(t, 25.0, got.Y)
	assert.False(t, e.HoverDelete())

	res, err := e.EndDrag(s.ID, geometry.Point{X: 100, Y: 200})
	require.NoError(t, err)
	assert.Equal(t, ActionMoved, res.Action)
	assert.Equal(t, 25.0, res.Sticker.X)

	_, dragging := e.Dragging()
	assert.False(t, dragging)
}

func TestHoverDeleteFeedback(t *testing.T) {
	e := newTestEditor()
	s := e.Place(domain.StickerKindText, "hi", "")
	require.NoError(t, e.BeginDrag(s.ID, geometry.Point{X: 200, Y: 400}))

	require.NoError(t, e.UpdateDrag(s.ID, geometry.Point{X: 200, Y: 0.9 * 800}))
	assert.True(t, e.HoverDelete())

	require.NoError(t, e.UpdateDrag(s.ID, geometry.Point{X: 200, Y: 0.5 * 800}))
	assert.False(t, e.HoverDelete())
}

func TestTapOpensEditAndKeepsPosition(t *testing.T) {
	e := newTestEditor()
	s := e.Place(domain.StickerKindText, "hi", "#00FF00")

	down := geometry.Point{X: 200, Y: 400}
	require.NoError(t, e.BeginDrag(s.ID, down))
	// tiny jitter reaches UpdateDrag before release
	require.NoError(t, e.UpdateDrag(s.ID, geometry.Point{X: 203, Y: 402}))

	res, err := e.EndDrag(s.ID, geometry.Point{X: 203, Y: 402})
	require.NoError(t, err)
	assert.Equal(t, ActionTapped, res.Action)
	assert.Equal(t, "hi", res.Sticker.Content)
	assert.Equal(t, "#00FF00", res.Sticker.Color)

	got, ok := e.Get(s.ID)
	require.True(t, ok)
	assert.Equal(t, 50.0, got.X)
	assert.Equal(t, 50.0, got.Y)
}

func TestMoveAtThresholdIsNotTap(t *testing.T) {
	e := newTestEditor()
	s := e.Place(domain.StickerKindText, "hi", "")

	require.NoError(t, e.BeginDrag(s.ID, geometry.Point{X: 200, Y: 400}))
	res, err := e.EndDrag(s.ID, geometry.Point{X: 203, Y: 404})
	require.NoError(t, err)
	assert.Equal(t, ActionMoved, res.Action)
}

func TestReleaseInDropZoneDeletes(t *testing.T) {
	tests := []struct {
		name string
		down geometry.Point
		up   geometry.Point
	}{
		{"long drag", geometry.Point{X: 200, Y: 400}, geometry.Point{X: 200, Y: 780}},
		{"zero displacement", geometry.Point{X: 200, Y: 700}, geometry.Point{X: 200, Y: 700}},
		{"below container", geometry.Point{X: 10, Y: 10}, geometry.Point{X: 10, Y: 5000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor()
			s := e.Place(domain.StickerKindText, "bye", "")

			require.NoError(t, e.BeginDrag(s.ID, tt.down))
			res, err := e.EndDrag(s.ID, tt.up)
			require.NoError(t, err)

			assert.Equal(t, ActionDeleted, res.Action)
			_, ok := e.Get(s.ID)
			assert.False(t, ok)
			assert.Zero(t, e.Len())
		})
	}
}

func TestSingleDragTarget(t *testing.T) {
	e := newTestEditor()
	a := e.Place(domain.StickerKindText, "a", "")
	b := e.Place(domain.StickerKindText, "b", "")

	require.NoError(t, e.BeginDrag(a.ID, geometry.Point{}))
	assert.ErrorIs(t, e.BeginDrag(b.ID, geometry.Point{}), ErrDragInProgress)
	assert.ErrorIs(t, e.UpdateDrag(b.ID, geometry.Point{}), ErrNotDragging)

	_, err := e.EndDrag(b.ID, geometry.Point{})
	assert.ErrorIs(t, err, ErrNotDragging)

	assert.ErrorIs(t, e.BeginDrag("missing", geometry.Point{}), ErrUnknownSticker)
}

func TestCommitEdit(t *testing.T) {
	e := newTestEditor()

	_, ok, err := e.CommitEdit("", "   ", "#000000")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, e.Len())

	created, ok, err := e.CommitEdit("", "first", "")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.StickerKindText, created.Kind)
	assert.Equal(t, domain.DefaultStickerColor, created.Color)

	// move it, then edit: position must survive
	require.NoError(t, e.BeginDrag(created.ID, geometry.Point{X: 200, Y: 400}))
	require.NoError(t, e.UpdateDrag(created.ID, geometry.Point{X: 40, Y: 80}))
	_, err = e.EndDrag(created.ID, geometry.Point{X: 40, Y: 80})
	require.NoError(t, err)

	updated, ok, err := e.CommitEdit(created.ID, "second", "#123456")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", updated.Content)
	assert.Equal(t, "#123456", updated.Color)
	assert.Equal(t, 10.0, updated.X)
	assert.Equal(t, 10.0, updated.Y)

	_, ok, err = e.CommitEdit(created.ID, "\t\n", "#123456")
	require.NoError(t, err)
	assert.False(t, ok)
	_, exists := e.Get(created.ID)
	assert.False(t, exists)

	_, _, err = e.CommitEdit("missing", "x", "")
	assert.ErrorIs(t, err, ErrUnknownSticker)
}

func TestPositionsStayInBoundsUnderRandomDrags(t *testing.T) {
	e := newTestEditor()
	for i := 0; i < 5; i++ {
		e.Place(domain.StickerKindText, fmt.Sprintf("s%d", i), "")
	}

	rng := rand.New(rand.NewSource(7))
	point := func() geometry.Point {
		return geometry.Point{X: rng.Float64()*1200 - 400, Y: rng.Float64()*2400 - 800}
	}

	for round := 0; round < 500; round++ {
		stickers := e.Stickers()
		if len(stickers) == 0 {
			break
		}
		id := stickers[rng.Intn(len(stickers))].ID
		require.NoError(t, e.BeginDrag(id, point()))
		for m := 0; m < 3; m++ {
			require.NoError(t, e.UpdateDrag(id, point()))
		}
		_, err := e.EndDrag(id, point())
		require.NoError(t, err)

		for _, s := range e.Stickers() {
			assert.GreaterOrEqual(t, s.X, 0.0)
			assert.LessOrEqual(t, s.X, 100.0)
			assert.GreaterOrEqual(t, s.Y, 0.0)
			assert.LessOrEqual(t, s.Y, 100.0)
		}
	}
}
