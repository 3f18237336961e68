// Package composer is the story authoring controller. It owns one draft: the
// picked media, duration, background and stickers, and the single interaction
// (drag, text edit or eyedropper) currently in progress.
package composer

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/orgball2608/story-engine/internal/backend"
	"github.com/orgball2608/story-engine/internal/colorsampler"
	"github.com/orgball2608/story-engine/internal/domain"
	"github.com/orgball2608/story-engine/internal/geometry"
	"github.com/orgball2608/story-engine/internal/location"
	"github.com/orgball2608/story-engine/internal/ratelimit"
	"github.com/orgball2608/story-engine/internal/sticker"
	"github.com/orgball2608/story-engine/pkg/errors"
	"github.com/orgball2608/story-engine/pkg/logger"
	"github.com/orgball2608/story-engine/pkg/retry"
)

var (
	ErrEmptyStory       = errors.WrapWithCode(errors.ErrInvalidInput, errors.CodeEmptyStory, "an empty text card cannot be posted")
	ErrInvalidDuration  = errors.WrapWithCode(errors.ErrInvalidInput, errors.CodeInvalidDuration, "unsupported story duration")
	ErrDurationLocked   = errors.WrapWithCode(errors.ErrInvalidInput, errors.CodeDurationLocked, "video stories have a fixed duration")
	ErrInvalidColor     = errors.WrapWithCode(errors.ErrInvalidInput, errors.CodeInvalidDraft, "color must be #RRGGBB")
	ErrEmptyMention     = errors.WrapWithCode(errors.ErrInvalidInput, errors.CodeInvalidDraft, "mention needs a username")
	ErrBusy             = errors.WrapWithCode(errors.ErrConflict, errors.CodeInteractionBusy, "another interaction is in progress")
	ErrRateLimited      = errors.WrapWithCode(errors.ErrUnavailable, errors.CodeRateLimited, "too many location searches, try again shortly")
	ErrNoPlaces         = errors.WrapWithCode(errors.ErrNotFound, errors.CodeLocationNotFound, "no matching places")
	ErrUnsupportedMedia = errors.WrapWithCode(errors.ErrInvalidInput, errors.CodeUnsupportedMedia, "only images and videos can be posted")
)

// Interaction is the one thing the author is doing right now.
type Interaction int

const (
	InteractionIdle Interaction = iota
	InteractionDragging
	InteractionEditing
	InteractionSampling
)

func (i Interaction) String() string {
	switch i {
	case InteractionDragging:
		return "dragging"
	case InteractionEditing:
		return "editing"
	case InteractionSampling:
		return "sampling"
	default:
		return "idle"
	}
}

// Edit is the open text editor. StickerID is empty for a new sticker.
type Edit struct {
	StickerID string
	Content   string
	Color     string
}

// Chrome tells the shell which parts of the composer to show.
type Chrome struct {
	Header         bool
	Stickers       bool
	Footer         bool
	DurationPicker bool
	Palette        bool
	DropZone       bool
	DropZoneActive bool
	TextEditor     bool
	Eyedropper     bool
}

type media struct {
	file    domain.MediaFile
	kind    domain.MediaType
	surface *colorsampler.Surface
}

type Opts struct {
	AuthorID  string
	Container geometry.Rect

	Backend   backend.Client
	Locations location.Client
	Limiter   ratelimit.Limiter
	Validator *validator.Validate
	Logger    logger.Logger

	Sticker sticker.Config
	Retry   retry.Config
}

type Composer struct {
	mu sync.Mutex

	authorID  string
	backend   backend.Client
	locations location.Client
	limiter   ratelimit.Limiter
	validate  *validator.Validate
	logger    logger.Logger
	retry     retry.Config
	stickers  sticker.Config

	editor      *sticker.Editor
	media       *media
	duration    int
	background  int
	interaction Interaction
	edit        Edit
	publishing  bool
}

func New(opts Opts) *Composer {
	if opts.Sticker == (sticker.Config{}) {
		opts.Sticker = sticker.DefaultConfig()
	}
	if opts.Retry == (retry.Config{}) {
		opts.Retry = retry.DefaultConfig()
	}
	if opts.Limiter == nil {
		opts.Limiter = ratelimit.Unlimited{}
	}
	if opts.Validator == nil {
		opts.Validator = validator.New(validator.WithRequiredStructEnabled())
	}

	return &Composer{
		authorID:  opts.AuthorID,
		backend:   opts.Backend,
		locations: opts.Locations,
		limiter:   opts.Limiter,
		validate:  opts.Validator,
		logger:    opts.Logger.WithComponent("Composer"),
		retry:     opts.Retry,
		stickers:  opts.Sticker,
		editor:    sticker.NewEditor(opts.Sticker, opts.Container),
		duration:  DefaultDuration,
	}
}

func (c *Composer) Interaction() Interaction {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interaction
}

// Edit returns the open editor session, if any.
func (c *Composer) Edit() (Edit, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.interaction != InteractionEditing && c.interaction != InteractionSampling {
		return Edit{}, false
	}
	return c.edit, true
}

func (c *Composer) Stickers() []domain.Sticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editor.Stickers()
}

// MediaType is text until an image or video is picked.
func (c *Composer) MediaType() domain.MediaType {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mediaTypeLocked()
}

func (c *Composer) mediaTypeLocked() domain.MediaType {
	if c.media == nil {
		return domain.MediaTypeText
	}
	return c.media.kind
}

func (c *Composer) Duration() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.duration
}

func (c *Composer) Background() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Backgrounds[c.background]
}

// SetContainer updates the canvas rect used for drags and sampling.
func (c *Composer) SetContainer(r geometry.Rect) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editor.SetContainer(r)
}

func (c *Composer) idleLocked() error {
	if c.publishing || c.interaction != InteractionIdle {
		return ErrBusy
	}
	return nil
}

// SelectMedia switches the draft to the picked file. Stills are decoded for
// the eyedropper; a still that fails to decode just cannot be sampled. Files
// that are neither images nor videos are refused and the draft is kept.
func (c *Composer) SelectMedia(file domain.MediaFile) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.idleLocked(); err != nil {
		return err
	}

	kind, ok := file.Kind()
	if !ok {
		return ErrUnsupportedMedia
	}

	m := &media{file: file, kind: kind}
	if m.kind == domain.MediaTypeImage {
		surface, err := colorsampler.Decode(file.Data)
		if err != nil {
			c.logger.Warn("Picked image cannot be sampled", "name", file.Name, "error", err)
		}
		m.surface = surface
	}

	c.media = m
	if m.kind == domain.MediaTypeVideo {
		c.duration = VideoDuration
	} else {
		c.duration = DefaultDuration
	}
	return nil
}

// ClearMedia turns the draft back into a text card.
func (c *Composer) ClearMedia() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.idleLocked(); err != nil {
		return err
	}
	c.media = nil
	c.duration = DefaultDuration
	return nil
}

func (c *Composer) SetDuration(seconds int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mediaTypeLocked() == domain.MediaTypeVideo {
		return ErrDurationLocked
	}
	if !slices.Contains(Durations, seconds) {
		return ErrInvalidDuration
	}
	c.duration = seconds
	return nil
}

// CycleBackground moves to the next palette entry. Only text cards have a
// background; for media stories it returns the current entry unchanged.
func (c *Composer) CycleBackground() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mediaTypeLocked() == domain.MediaTypeText && !c.publishing {
		c.background = (c.background + 1) % len(Backgrounds)
	}
	return Backgrounds[c.background]
}

// PressSticker starts a gesture on a sticker. Whether it is a drag or a tap
// is decided on release.
func (c *Composer) PressSticker(id string, p geometry.Point) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.idleLocked(); err != nil {
		return err
	}
	if err := c.editor.BeginDrag(id, p); err != nil {
		return err
	}
	c.interaction = InteractionDragging
	return nil
}

func (c *Composer) PointerMove(p geometry.Point) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	id, ok := c.editor.Dragging()
	if c.interaction != InteractionDragging || !ok {
		return sticker.ErrNotDragging
	}
	return c.editor.UpdateDrag(id, p)
}

// PointerUp resolves the gesture. A tap opens the text editor on the sticker.
func (c *Composer) PointerUp(p geometry.Point) (sticker.DragResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id, ok := c.editor.Dragging()
	if c.interaction != InteractionDragging || !ok {
		return sticker.DragResult{}, sticker.ErrNotDragging
	}

	res, err := c.editor.EndDrag(id, p)
	c.interaction = InteractionIdle
	if err != nil {
		return res, err
	}

	switch res.Action {
	case sticker.ActionTapped:
		c.interaction = InteractionEditing
		c.edit = Edit{StickerID: res.Sticker.ID, Content: res.Sticker.Content, Color: res.Sticker.Color}
	case sticker.ActionDeleted:
		c.logger.Debug("Sticker dropped on delete zone", "sticker_id", res.Sticker.ID)
	}
	return res, nil
}

func (c *Composer) CancelDrag() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.interaction == InteractionDragging {
		c.editor.CancelDrag()
		c.interaction = InteractionIdle
	}
}

// OpenNewText opens the editor for a new text sticker.
func (c *Composer) OpenNewText() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.idleLocked(); err != nil {
		return err
	}
	c.interaction = InteractionEditing
	c.edit = Edit{Color: domain.DefaultStickerColor}
	return nil
}

func (c *Composer) SetEditContent(content string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.interaction != InteractionEditing {
		return ErrBusy
	}
	c.edit.Content = content
	return nil
}

func (c *Composer) SetEditColor(hex string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.interaction != InteractionEditing {
		return ErrBusy
	}
	if err := c.validate.Var(hex, "required,hexcolor"); err != nil {
		return ErrInvalidColor
	}
	c.edit.Color = strings.ToUpper(hex)
	return nil
}

// BeginSampling turns on the eyedropper. It only works on an image story
// whose still could be decoded; otherwise it does nothing and returns false.
func (c *Composer) BeginSampling() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.interaction != InteractionEditing || c.surfaceLocked() == nil {
		return false
	}
	c.interaction = InteractionSampling
	return true
}

func (c *Composer) surfaceLocked() *colorsampler.Surface {
	if c.media == nil || c.media.kind != domain.MediaTypeImage {
		return nil
	}
	return c.media.surface
}

// Sample picks the color under p into the open editor and leaves sampling
// mode, whether or not a color could be read.
func (c *Composer) Sample(p geometry.Point) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.interaction != InteractionSampling {
		return "", false
	}
	c.interaction = InteractionEditing

	hex, ok := colorsampler.Sample(c.surfaceLocked(), c.editor.Container(), p)
	if ok {
		c.edit.Color = hex
	}
	return hex, ok
}

func (c *Composer) CancelSampling() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.interaction == InteractionSampling {
		c.interaction = InteractionEditing
	}
}

// CommitEdit closes the editor and applies it. Blank content removes the
// edited sticker; the bool is false when no sticker is left.
func (c *Composer) CommitEdit() (domain.Sticker, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.interaction != InteractionEditing {
		return domain.Sticker{}, false, ErrBusy
	}

	s, ok, err := c.editor.CommitEdit(c.edit.StickerID, c.edit.Content, c.edit.Color)
	c.interaction = InteractionIdle
	c.edit = Edit{}
	return s, ok, err
}

func (c *Composer) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.interaction == InteractionEditing || c.interaction == InteractionSampling {
		c.interaction = InteractionIdle
		c.edit = Edit{}
	}
}

// PlaceLocation adds a location sticker for a search hit.
func (c *Composer) PlaceLocation(place domain.Place) (domain.Sticker, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.idleLocked(); err != nil {
		return domain.Sticker{}, err
	}
	name := strings.TrimSpace(place.DisplayName)
	if name == "" {
		return domain.Sticker{}, ErrNoPlaces
	}
	return c.editor.Place(domain.StickerKindLocation, name, ""), nil
}

// PlaceMention adds an @username sticker.
func (c *Composer) PlaceMention(username string) (domain.Sticker, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.idleLocked(); err != nil {
		return domain.Sticker{}, err
	}
	name := strings.TrimLeft(strings.TrimSpace(username), "@")
	if name == "" {
		return domain.Sticker{}, ErrEmptyMention
	}
	return c.editor.Place(domain.StickerKindMention, "@"+name, ""), nil
}

// SearchLocations looks up places for a location sticker, throttled per author.
func (c *Composer) SearchLocations(ctx context.Context, query string) ([]domain.Place, error) {
	if !c.limiter.Allow(c.authorID) {
		return nil, ErrRateLimited
	}
	places, err := c.locations.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, ErrNoPlaces
	}
	return places, nil
}

// Chrome derives what is on screen from the active interaction.
func (c *Composer) Chrome() Chrome {
	c.mu.Lock()
	defer c.mu.Unlock()

	kind := c.mediaTypeLocked()
	ch := Chrome{
		Header:         true,
		Stickers:       true,
		Footer:         true,
		DurationPicker: kind != domain.MediaTypeVideo,
		Palette:        kind == domain.MediaTypeText,
	}

	switch c.interaction {
	case InteractionDragging:
		ch.Header = false
		ch.Footer = false
		ch.DurationPicker = false
		ch.Palette = false
		ch.DropZone = true
		ch.DropZoneActive = c.editor.HoverDelete()
	case InteractionEditing:
		ch.TextEditor = true
		ch.Eyedropper = c.surfaceLocked() != nil
	case InteractionSampling:
		// the still must be fully visible to pick from it
		ch.Header = false
		ch.Stickers = false
		ch.Footer = false
		ch.DurationPicker = false
		ch.Palette = false
	}
	return ch
}

// CanPublish is false for an empty text card and while a publish is running.
func (c *Composer) CanPublish() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canPublishLocked()
}

func (c *Composer) canPublishLocked() bool {
	if c.publishing {
		return false
	}
	return c.media != nil || c.editor.Len() > 0
}

// Draft assembles the story as it would be posted, without the media ref.
func (c *Composer) Draft() domain.StoryDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draftLocked()
}

func (c *Composer) draftLocked() domain.StoryDraft {
	stickers := c.editor.Stickers()
	d := domain.StoryDraft{
		OwnerID:         c.authorID,
		MediaType:       c.mediaTypeLocked(),
		DurationSeconds: c.duration,
		Stickers:        stickers,
	}
	if d.MediaType == domain.MediaTypeText {
		d.Background = Backgrounds[c.background]
		var texts []string
		for _, s := range stickers {
			if s.Kind == domain.StickerKindText {
				texts = append(texts, s.Content)
			}
		}
		d.TextContent = strings.Join(texts, "\n")
	}
	return d
}

// Publish uploads the media, if any, then creates the story. On failure the
// draft is left as it was so the author can retry; on success the composer
// starts over with an empty text card.
func (c *Composer) Publish(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.publishing {
		c.mu.Unlock()
		return "", ErrBusy
	}
	if !c.canPublishLocked() {
		c.mu.Unlock()
		return "", ErrEmptyStory
	}
	if c.interaction != InteractionIdle {
		c.mu.Unlock()
		return "", ErrBusy
	}
	draft := c.draftLocked()
	var file *domain.MediaFile
	if c.media != nil {
		f := c.media.file
		file = &f
	}
	c.publishing = true
	c.mu.Unlock()

	id, err := c.publish(ctx, draft, file)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.publishing = false
	if err != nil {
		return "", err
	}
	c.resetLocked()
	return id, nil
}

func (c *Composer) publish(ctx context.Context, draft domain.StoryDraft, file *domain.MediaFile) (string, error) {
	if file != nil {
		ref, err := retry.DoValue(ctx, c.logger, "upload story media", func() (string, error) {
			return c.backend.UploadMedia(ctx, *file)
		}, c.retry)
		if err != nil {
			c.logger.Error("Failed to upload story media", "author_id", c.authorID, "error", err)
			return "", errors.WrapWithCode(err, errors.CodeUploadFailed, "failed to upload media")
		}
		draft.MediaRef = ref
	}

	if err := c.validate.Struct(draft); err != nil {
		return "", errors.WrapWithCode(errors.Join(errors.ErrInvalidInput, err), errors.CodeInvalidDraft, "story draft is invalid")
	}

	id, err := c.backend.CreateStory(ctx, draft)
	if err != nil {
		c.logger.Error("Failed to create story", "author_id", c.authorID, "error", err)
		return "", errors.WrapWithCode(err, errors.CodeCreateFailed, "failed to create story")
	}

	c.logger.Info("Story published", "story_id", id, "author_id", c.authorID, "media_type", draft.MediaType)
	return id, nil
}

func (c *Composer) resetLocked() {
	c.editor = sticker.NewEditor(c.stickers, c.editor.Container())
	c.media = nil
	c.duration = DefaultDuration
	c.background = 0
	c.interaction = InteractionIdle
	c.edit = Edit{}
}
