package janitorimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/story-engine/internal/janitor"
	"github.com/orgball2608/story-engine/internal/repositories/story"
	"github.com/orgball2608/story-engine/pkg/config"
	"github.com/orgball2608/story-engine/pkg/logger"
	"go.uber.org/fx"
)

const (
	defaultInterval = time.Hour
	purgeTimeout    = 5 * time.Minute
)

type Opts struct {
	fx.In

	StoryRepo story.Repository
	Clock     clockwork.Clock
	Config    *config.Config
	Logger    logger.Logger
}

type Impl struct {
	storyRepo story.Repository
	clock     clockwork.Clock
	interval  time.Duration
	logger    logger.Logger
}

var _ janitor.Client = (*Impl)(nil)

func New(opts Opts) *Impl {
	interval := opts.Config.Story.CleanupInterval
	if interval <= 0 {
		interval = defaultInterval
	}

	return &Impl{
		storyRepo: opts.StoryRepo,
		clock:     opts.Clock,
		interval:  interval,
		logger:    opts.Logger.WithComponent("Janitor"),
	}
}

func (j *Impl) Purge(ctx context.Context) (int64, error) {
	deleted, err := j.storyRepo.DeleteExpired(ctx, j.clock.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired stories: %w", err)
	}
	return deleted, nil
}

func (j *Impl) SchedulePurge(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler(gocron.WithClock(j.clock))
	if err != nil {
		return fmt.Errorf("failed to create purge scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(j.interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				j.logger.Info("Context cancelled, skipping purge")
				return
			}

			purgeCtx, cancel := context.WithTimeout(ctx, purgeTimeout)
			defer cancel()

			deleted, err := j.Purge(purgeCtx)
			if err != nil {
				j.logger.Error("Scheduled purge failed", "error", err)
				return
			}

			j.logger.Info("Scheduled purge completed", "stories_deleted", deleted)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule purge: %w", err)
	}

	scheduler.Start()
	j.logger.Info("Purge scheduled", "interval", j.interval.String())

	go func() {
		<-ctx.Done()
		j.logger.Info("Stopping purge scheduler")
		if err := scheduler.Shutdown(); err != nil {
			j.logger.Error("Failed to shut down purge scheduler", "error", err)
		}
	}()

	return nil
}
