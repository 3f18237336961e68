package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/story-engine/internal/backend/backendimpl"
	"github.com/orgball2608/story-engine/internal/cache"
	"github.com/orgball2608/story-engine/internal/db"
	"github.com/orgball2608/story-engine/internal/engine"
	"github.com/orgball2608/story-engine/internal/janitor"
	"github.com/orgball2608/story-engine/internal/janitor/janitorimpl"
	"github.com/orgball2608/story-engine/internal/location/nominatimimpl"
	"github.com/orgball2608/story-engine/internal/media/s3impl"
	repositories "github.com/orgball2608/story-engine/internal/repositories/fx"
	"github.com/orgball2608/story-engine/internal/worker"
	"github.com/orgball2608/story-engine/pkg/config"
	"github.com/orgball2608/story-engine/pkg/logger"
	"github.com/orgball2608/story-engine/pkg/pgx"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
		clockwork.NewRealClock,
		func() *validator.Validate {
			return validator.New(validator.WithRequiredStructEnabled())
		},
	),
	repositories.Module,
	cache.Module,
	s3impl.Module,
	nominatimimpl.Module,
	backendimpl.Module,
	worker.Module,
	janitorimpl.Module,
	engine.Module,
	fx.Invoke(migrate),
	fx.Invoke(run),
)

func migrate(lc fx.Lifecycle, cfg *config.Config, log logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pg, err := db.NewConnect(cfg)
			if err != nil {
				return fmt.Errorf("failed to open migration connection: %w", err)
			}
			defer pg.Close()

			if err := pg.Up(ctx); err != nil {
				return err
			}
			log.Info("Database schema is up to date")
			return nil
		},
	})
}

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, pool *pgxpool.Pool,
	purger janitor.Client, _ *engine.Engine) {
	ctx, cancel := context.WithCancel(context.Background())
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           newMux(log, pool),
		ReadHeaderTimeout: 5 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go startHttpServer(log, server)

			if err := purger.SchedulePurge(ctx); err != nil {
				log.Error("Schedule purge error", "Error", err)
			}
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			return server.Shutdown(stopCtx)
		},
	})
}

func newMux(log logger.Logger, pool *pgxpool.Pool) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log, pool)
	})
	return mux
}

func startHttpServer(log logger.Logger, server *http.Server) {
	log.Info(fmt.Sprintf("Starting server on %s", server.Addr))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("Server failed to start", "Error", err)
	}
}

type pinger interface {
	Ping(ctx context.Context) error
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, logger logger.Logger, db pinger) {
	logger.Debug("Health check request received", "Method", r.Method, "URL", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		logger.Warn("Health check failed", "Error", err)
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Error("Failed to write response", "Error", err)
	}
}
