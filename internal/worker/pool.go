package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/orgball2608/story-engine/pkg/config"
	"github.com/orgball2608/story-engine/pkg/logger"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/fx"
)

const defaultSize = 8

// Pool runs side-effect tasks on a bounded ants pool.
type Pool struct {
	pool   *ants.Pool
	logger logger.Logger
}

func NewPool(size int, log logger.Logger) (*Pool, error) {
	if size <= 0 {
		size = defaultSize
	}
	log = log.WithComponent("WorkerPool")

	pool, err := ants.NewPool(size,
		ants.WithPreAlloc(true),
		ants.WithPanicHandler(func(p interface{}) {
			log.Error("Worker task panicked", "panic", p)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}

	return &Pool{pool: pool, logger: log}, nil
}

// Go submits task. When the pool refuses it the task still runs on its own goroutine.
func (p *Pool) Go(task func()) {
	if err := p.pool.Submit(task); err != nil {
		p.logger.Warn("Failed to submit task to ants pool, running detached", "error", err)
		go task()
	}
}

func (p *Pool) Running() int {
	return p.pool.Running()
}

func (p *Pool) Release(timeout time.Duration) error {
	return p.pool.ReleaseTimeout(timeout)
}

type Opts struct {
	fx.In
	LC     fx.Lifecycle
	Config *config.Config
	Logger logger.Logger
}

func New(opts Opts) (*Pool, error) {
	p, err := NewPool(opts.Config.Workers.PoolSize, opts.Logger)
	if err != nil {
		return nil, err
	}

	opts.LC.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			timeout := 5 * time.Second
			if deadline, ok := ctx.Deadline(); ok {
				timeout = time.Until(deadline)
			}
			if err := p.Release(timeout); err != nil {
				p.logger.Warn("Worker pool did not drain in time", "error", err)
			}
			return nil
		},
	})

	return p, nil
}
