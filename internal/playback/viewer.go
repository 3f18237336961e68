package playback

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/story-engine/internal/backend"
	"github.com/orgball2608/story-engine/internal/domain"
	"github.com/orgball2608/story-engine/internal/storygroup"
	"github.com/orgball2608/story-engine/pkg/errors"
	"github.com/orgball2608/story-engine/pkg/formatter"
	"github.com/orgball2608/story-engine/pkg/logger"
)

const (
	DefaultTickInterval  = 50 * time.Millisecond
	DefaultHoldThreshold = 250 * time.Millisecond
	// PrevZone is the fraction of the surface width, from the left edge, where a tap goes back.
	PrevZone = 1.0 / 3
)

var (
	ErrClosed         = errors.New("viewer is closed")
	ErrNotOwner       = errors.WrapWithCode(errors.ErrForbidden, errors.CodeNotOwner, "only the story owner can do this")
	ErrInvalidState   = errors.WrapWithCode(errors.ErrConflict, errors.CodeInteractionBusy, "not allowed in the current viewer state")
	ErrStoryNotInFeed = errors.WrapWithCode(errors.ErrNotFound, errors.CodeStoryNotInFeed, "story is not in the feed")
)

type Config struct {
	TickInterval  time.Duration
	HoldThreshold time.Duration
	PrevZone      float64
}

func DefaultConfig() Config {
	return Config{
		TickInterval:  DefaultTickInterval,
		HoldThreshold: DefaultHoldThreshold,
		PrevZone:      PrevZone,
	}
}

// Gesture is what a pointer-up resolved to.
type Gesture int

const (
	GestureNone Gesture = iota
	GestureResume
	GesturePrevious
	GestureNext
)

type Opts struct {
	ViewerID     string
	Feed         storygroup.Feed
	StartStoryID string

	Backend    backend.Client
	Dispatcher Dispatcher
	Clock      clockwork.Clock
	Logger     logger.Logger
	Config     Config
}

// Snapshot is everything the shell needs to render one frame.
type Snapshot struct {
	State      State
	Story      domain.Story
	Owner      domain.Profile
	IsOwner    bool
	FlatIndex  int
	LocalIndex int
	GroupSize  int
	Progress   float64
	Bars       []float64

	Liked          bool
	LikeCount      int
	ViewCount      int
	ViewCountLabel string
	PostedAgo      string

	Analytics []ViewerEntry
}

// Viewer is the playback state machine for one viewing session. All methods
// are safe for concurrent use; persistence calls run through the Dispatcher
// after the state lock is released and their results are dropped once the
// viewer has moved to another story.
type Viewer struct {
	mu sync.Mutex

	viewerID string
	feed     storygroup.Feed
	backend  backend.Client
	dispatch Dispatcher
	clock    clockwork.Clock
	logger   logger.Logger
	cfg      Config

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	resets chan struct{}

	state     State
	cursor    int
	elapsed   time.Duration
	holdStart time.Time
	deleting  bool

	// storyGen changes on every story entry; timerGen on every transition
	// that must restart the progress timer.
	storyGen uint64
	timerGen uint64
	likeSeq  uint64

	// likeMu orders like persistence. likeIntent holds the latest toggle
	// sequence per story; older effects for the same story are skipped.
	likeMu     sync.Mutex
	likeIntent map[string]uint64

	liked     bool
	likeCount int
	viewCount int
	owner     domain.Profile
	analytics []ViewerEntry
}

// New opens the viewer on StartStoryID and fires that story's entry effects.
func New(ctx context.Context, opts Opts) (*Viewer, error) {
	idx := opts.Feed.Index(opts.StartStoryID)
	if idx < 0 {
		return nil, ErrStoryNotInFeed
	}
	if opts.Dispatcher == nil {
		opts.Dispatcher = Inline{}
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Config == (Config{}) {
		opts.Config = DefaultConfig()
	}

	ctx, cancel := context.WithCancel(ctx)
	v := &Viewer{
		viewerID: opts.ViewerID,
		feed:     opts.Feed,
		backend:  opts.Backend,
		dispatch: opts.Dispatcher,
		clock:    opts.Clock,
		logger:   opts.Logger.WithComponent("Viewer"),
		cfg:      opts.Config,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
		resets:   make(chan struct{}, 1),

		likeIntent: make(map[string]uint64),
	}

	v.mu.Lock()
	task := v.enterLocked(idx)
	v.mu.Unlock()
	v.run(task)

	return v, nil
}

func (v *Viewer) run(task func()) {
	if task != nil {
		v.dispatch.Go(task)
	}
}

// Done is closed when the viewer reaches StateClosed.
func (v *Viewer) Done() <-chan struct{} {
	return v.done
}

// Resets delivers a signal whenever the progress timer must restart.
func (v *Viewer) Resets() <-chan struct{} {
	return v.resets
}

func (v *Viewer) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Feed returns the feed as the viewer currently knows it; deleted stories are gone.
func (v *Viewer) Feed() storygroup.Feed {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.feed
}

func (v *Viewer) Current() (domain.Story, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state == StateClosed {
		return domain.Story{}, false
	}
	return v.feed.Flat[v.cursor], true
}

// Tick advances the progress timer. Video stories ignore ticks; they finish
// through VideoEnded.
func (v *Viewer) Tick(elapsed time.Duration) {
	v.mu.Lock()
	task := v.tickLocked(elapsed)
	v.mu.Unlock()
	v.run(task)
}

// tickAt applies a tick only if no timer reset happened since gen was read.
func (v *Viewer) tickAt(gen uint64, elapsed time.Duration) {
	v.mu.Lock()
	if v.timerGen != gen {
		v.mu.Unlock()
		return
	}
	task := v.tickLocked(elapsed)
	v.mu.Unlock()
	v.run(task)
}

func (v *Viewer) timerGeneration() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.timerGen
}

func (v *Viewer) tickLocked(elapsed time.Duration) func() {
	if v.state != StatePlaying {
		return nil
	}
	s := v.feed.Flat[v.cursor]
	if s.IsVideo() {
		return nil
	}
	v.elapsed += elapsed
	if v.elapsed < s.Duration() {
		return nil
	}
	return v.nextLocked()
}

// VideoEnded is the completion signal of a video story's own playback.
func (v *Viewer) VideoEnded(storyID string) {
	v.mu.Lock()
	var task func()
	if v.state == StatePlaying {
		if s := v.feed.Flat[v.cursor]; s.ID == storyID && s.IsVideo() {
			task = v.nextLocked()
		}
	}
	v.mu.Unlock()
	v.run(task)
}

// Next moves to the following story, closing the viewer after the last one.
func (v *Viewer) Next() error {
	v.mu.Lock()
	if err := v.navigableLocked(); err != nil {
		v.mu.Unlock()
		return err
	}
	task := v.nextLocked()
	v.mu.Unlock()
	v.run(task)
	return nil
}

// Prev moves to the preceding story with fresh progress. It is a no-op on the
// first story.
func (v *Viewer) Prev() error {
	v.mu.Lock()
	if err := v.navigableLocked(); err != nil {
		v.mu.Unlock()
		return err
	}
	task := v.prevLocked()
	v.mu.Unlock()
	v.run(task)
	return nil
}

func (v *Viewer) navigableLocked() error {
	switch v.state {
	case StateClosed:
		return ErrClosed
	case StatePlaying, StatePausedByHold:
		return nil
	default:
		return ErrInvalidState
	}
}

// PointerDown pauses playback while the pointer is held.
func (v *Viewer) PointerDown() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state != StatePlaying {
		return
	}
	v.state = StatePausedByHold
	v.holdStart = v.clock.Now()
	v.resetTimerLocked()
}

// PointerUp ends a hold. A hold of at least HoldThreshold only resumes;
// anything shorter is a tap that goes back in the left zone and forward elsewhere.
// xFraction is the release position across the surface width, 0 to 1.
func (v *Viewer) PointerUp(xFraction float64) Gesture {
	v.mu.Lock()
	if v.state != StatePausedByHold {
		v.mu.Unlock()
		return GestureNone
	}
	held := v.clock.Since(v.holdStart)
	v.state = StatePlaying
	v.resetTimerLocked()

	if held >= v.cfg.HoldThreshold {
		v.mu.Unlock()
		return GestureResume
	}

	var (
		task    func()
		gesture Gesture
	)
	if xFraction < v.cfg.PrevZone {
		gesture = GesturePrevious
		task = v.prevLocked()
	} else {
		gesture = GestureNext
		task = v.nextLocked()
	}
	v.mu.Unlock()
	v.run(task)
	return gesture
}

func (v *Viewer) nextLocked() func() {
	if v.cursor+1 < v.feed.Len() {
		return v.enterLocked(v.cursor + 1)
	}
	v.closeLocked()
	return nil
}

func (v *Viewer) prevLocked() func() {
	if v.cursor == 0 {
		return nil
	}
	return v.enterLocked(v.cursor - 1)
}

// enterLocked makes idx the current story with fresh transient state and
// returns its entry effects.
func (v *Viewer) enterLocked(idx int) func() {
	v.cursor = idx
	v.state = StatePlaying
	v.elapsed = 0
	v.liked = false
	v.likeCount = 0
	v.viewCount = 0
	v.owner = domain.Profile{}
	v.analytics = nil
	v.storyGen++
	v.resetTimerLocked()

	return v.entryEffect(v.storyGen, v.likeSeq, v.feed.Flat[idx])
}

func (v *Viewer) entryEffect(gen, likeSeq uint64, s domain.Story) func() {
	return func() {
		ctx := v.ctx
		log := v.logger

		if s.OwnerID != v.viewerID {
			if err := v.backend.RecordView(ctx, s.ID, v.viewerID); err != nil {
				log.Warn("Failed to record view", "story_id", s.ID, "error", err)
			}
		}

		views, viewsErr := v.backend.CountViews(ctx, s.ID)
		likes, likesErr := v.backend.CountLikes(ctx, s.ID)
		liked, likedErr := v.backend.HasLiked(ctx, s.ID, v.viewerID)
		profiles, profilesErr := v.backend.ResolveProfiles(ctx, []string{s.OwnerID})
		if err := errors.Join(viewsErr, likesErr, likedErr, profilesErr); err != nil {
			log.Warn("Failed to load story counters", "story_id", s.ID, "error", err)
		}

		v.mu.Lock()
		defer v.mu.Unlock()
		if v.storyGen != gen || v.state == StateClosed {
			return
		}
		if viewsErr == nil {
			v.viewCount = views
		}
		if profilesErr == nil {
			if p, ok := profiles[s.OwnerID]; ok {
				v.owner = p
			}
		}
		if v.likeSeq == likeSeq {
			if likesErr == nil {
				v.likeCount = likes
			}
			if likedErr == nil {
				v.liked = liked
			}
			return
		}
		// The viewer toggled while the counters were in flight: keep the local
		// liked flag and rebase the count on the fetched one.
		if likesErr == nil && likedErr == nil {
			v.likeCount = likes + boolToInt(v.liked) - boolToInt(liked)
		}
	}
}

// ToggleLike flips the liked flag and the count right away, then persists.
// Persistence is serialized per viewer and only the latest toggle of a story
// reaches the collaborator. A failed call is reconciled against its state.
func (v *Viewer) ToggleLike() error {
	v.mu.Lock()
	if v.state == StateClosed {
		v.mu.Unlock()
		return ErrClosed
	}
	s := v.feed.Flat[v.cursor]
	v.liked = !v.liked
	if v.liked {
		v.likeCount++
	} else {
		v.likeCount--
	}
	v.likeSeq++
	v.likeIntent[s.ID] = v.likeSeq
	task := v.likeEffect(v.storyGen, v.likeSeq, s, v.liked)
	v.mu.Unlock()

	v.run(task)
	return nil
}

func (v *Viewer) likeEffect(gen, seq uint64, s domain.Story, liked bool) func() {
	return func() {
		ctx := v.ctx

		v.likeMu.Lock()
		defer v.likeMu.Unlock()

		if !v.likeCurrent(s.ID, seq) {
			return
		}

		var err error
		if liked {
			err = v.backend.LikeStory(ctx, s.ID, v.viewerID)
		} else {
			err = v.backend.UnlikeStory(ctx, s.ID, v.viewerID)
		}
		if err != nil {
			v.logger.Warn("Failed to persist like", "story_id", s.ID, "liked", liked, "error", err)
			v.reconcileLike(gen, seq, s.ID)
			return
		}

		if !liked || s.OwnerID == v.viewerID || !v.likeCurrent(s.ID, seq) {
			return
		}
		err = v.backend.EmitNotification(ctx, domain.Notification{
			TargetUserID: s.OwnerID,
			ActorID:      v.viewerID,
			Kind:         domain.NotificationKindLike,
			Message:      domain.StoryLikedMessage,
			StoryID:      s.ID,
		})
		if err != nil {
			v.logger.Warn("Failed to emit like notification", "story_id", s.ID, "error", err)
		}
	}
}

func (v *Viewer) likeCurrent(storyID string, seq uint64) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.likeIntent[storyID] == seq
}

func (v *Viewer) reconcileLike(gen, seq uint64, storyID string) {
	liked, likedErr := v.backend.HasLiked(v.ctx, storyID, v.viewerID)
	count, countErr := v.backend.CountLikes(v.ctx, storyID)
	if err := errors.Join(likedErr, countErr); err != nil {
		v.logger.Warn("Failed to reconcile like state", "story_id", storyID, "error", err)
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.storyGen != gen || v.likeSeq != seq || v.state == StateClosed {
		return
	}
	v.liked = liked
	v.likeCount = count
}

// OpenAnalytics pauses playback and loads the owner's viewer list.
func (v *Viewer) OpenAnalytics(ctx context.Context) ([]ViewerEntry, error) {
	v.mu.Lock()
	s, err := v.ownerActionLocked()
	if err != nil {
		v.mu.Unlock()
		return nil, err
	}
	v.state = StatePausedByAnalytics
	v.analytics = []ViewerEntry{}
	v.resetTimerLocked()
	gen := v.storyGen
	v.mu.Unlock()

	entries, err := LoadAnalytics(ctx, v.backend, s.ID)
	if err != nil {
		v.logger.Error("Failed to load analytics", "story_id", s.ID, "error", err)
		return nil, errors.WrapWithCode(err, errors.CodeAnalyticsFailed, "failed to load story analytics")
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.storyGen == gen && v.state == StatePausedByAnalytics {
		v.analytics = entries
	}
	return entries, nil
}

// CloseAnalytics resumes playback where it paused.
func (v *Viewer) CloseAnalytics() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state != StatePausedByAnalytics {
		return ErrInvalidState
	}
	v.state = StatePlaying
	v.analytics = nil
	v.resetTimerLocked()
	return nil
}

// RequestDelete asks for confirmation before deleting the current story.
func (v *Viewer) RequestDelete() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, err := v.ownerActionLocked(); err != nil {
		return err
	}
	v.state = StatePausedByDeleteConfirm
	v.resetTimerLocked()
	return nil
}

func (v *Viewer) CancelDelete() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state != StatePausedByDeleteConfirm || v.deleting {
		return ErrInvalidState
	}
	v.state = StatePlaying
	v.resetTimerLocked()
	return nil
}

// ConfirmDelete deletes the current story and closes the viewer. On failure
// the viewer stays open in the confirmation state.
func (v *Viewer) ConfirmDelete(ctx context.Context) error {
	v.mu.Lock()
	if v.state == StateClosed {
		v.mu.Unlock()
		return ErrClosed
	}
	if v.state != StatePausedByDeleteConfirm || v.deleting {
		v.mu.Unlock()
		return ErrInvalidState
	}
	v.deleting = true
	s := v.feed.Flat[v.cursor]
	v.mu.Unlock()

	err := v.backend.DeleteStory(ctx, s.ID)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.deleting = false
	if err != nil {
		v.logger.Error("Failed to delete story", "story_id", s.ID, "error", err)
		return errors.WrapWithCode(err, errors.CodeDeleteFailed, "failed to delete story")
	}

	v.logger.Info("Story deleted", "story_id", s.ID)
	v.feed = v.feed.Without(s.ID)
	v.closeLocked()
	return nil
}

func (v *Viewer) ownerActionLocked() (domain.Story, error) {
	if err := v.navigableLocked(); err != nil {
		return domain.Story{}, err
	}
	s := v.feed.Flat[v.cursor]
	if s.OwnerID != v.viewerID {
		return domain.Story{}, ErrNotOwner
	}
	return s, nil
}

// Close ends the session. Pending effects finish but their results are dropped.
func (v *Viewer) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closeLocked()
}

func (v *Viewer) closeLocked() {
	if v.state == StateClosed {
		return
	}
	v.state = StateClosed
	v.cursor = -1
	v.elapsed = 0
	v.liked = false
	v.likeCount = 0
	v.viewCount = 0
	v.analytics = nil
	v.storyGen++
	v.timerGen++
	v.cancel()
	close(v.done)
}

func (v *Viewer) resetTimerLocked() {
	v.timerGen++
	select {
	case v.resets <- struct{}{}:
	default:
	}
}

func (v *Viewer) progressLocked() float64 {
	d := v.feed.Flat[v.cursor].Duration()
	if d <= 0 {
		return 0
	}
	return min(100, float64(v.elapsed)/float64(d)*100)
}

// ProgressBars returns the bars of the current owner's group.
func (v *Viewer) ProgressBars() []float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state == StateClosed {
		return nil
	}
	g, local, _ := v.feed.Locate(v.cursor)
	return Bars(len(g.Stories), local, v.progressLocked())
}

func (v *Viewer) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state == StateClosed {
		return Snapshot{State: StateClosed, FlatIndex: -1}
	}

	s := v.feed.Flat[v.cursor]
	g, local, _ := v.feed.Locate(v.cursor)
	progress := v.progressLocked()
	return Snapshot{
		State:          v.state,
		Story:          s,
		Owner:          v.owner,
		IsOwner:        s.OwnerID == v.viewerID,
		FlatIndex:      v.cursor,
		LocalIndex:     local,
		GroupSize:      len(g.Stories),
		Progress:       progress,
		Bars:           Bars(len(g.Stories), local, progress),
		Liked:          v.liked,
		LikeCount:      v.likeCount,
		ViewCount:      v.viewCount,
		ViewCountLabel: formatter.FormatNumber(v.viewCount),
		PostedAgo:      formatter.TimeAgo(v.clock.Now(), s.CreatedAt),
		Analytics:      v.analytics,
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
