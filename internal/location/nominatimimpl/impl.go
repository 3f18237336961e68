package nominatimimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/orgball2608/story-engine/internal/domain"
	"github.com/orgball2608/story-engine/internal/location"
	"github.com/orgball2608/story-engine/pkg/config"
	"github.com/orgball2608/story-engine/pkg/logger"
	"github.com/orgball2608/story-engine/pkg/retry"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const resultLimit = 5

type place struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Impl talks to an OpenStreetMap Nominatim instance. The public instance allows
// about one request per second and rejects requests without a User-Agent.
type Impl struct {
	baseURL   string
	userAgent string
	client    *http.Client
	limiter   *rate.Limiter
	retry     retry.Config
	logger    logger.Logger
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

func New(opts Opts) *Impl {
	cfg := opts.Config.Location
	return &Impl{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		client:    &http.Client{Timeout: cfg.Timeout},
		limiter:   rate.NewLimiter(rate.Every(cfg.GlobalInterval), 1),
		retry:     retry.Interactive(),
		logger:    opts.Logger.WithComponent("Nominatim"),
	}
}

var _ location.Client = (*Impl)(nil)

func (n *Impl) Search(ctx context.Context, query string) ([]domain.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, location.ErrEmptyQuery
	}

	places, err := retry.DoValue(ctx, n.logger, "nominatim search", func() ([]domain.Place, error) {
		return n.search(ctx, query)
	}, n.retry)
	if err != nil {
		n.logger.Error("Location search failed", "query", query, "error", err)
		return nil, fmt.Errorf("%w: %w", location.ErrLookup, err)
	}

	n.logger.Debug("Location search done", "query", query, "results", len(places))
	return places, nil
}

func (n *Impl) search(ctx context.Context, query string) ([]domain.Place, error) {
	if err := n.limiter.Wait(ctx); err != nil {
		return nil, retry.Permanent(err)
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(resultLimit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, retry.Permanent(fmt.Errorf("build search request: %w", err))
	}
	req.Header.Set("User-Agent", n.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("search returned %s", resp.Status)
	case resp.StatusCode != http.StatusOK:
		return nil, retry.Permanent(fmt.Errorf("search returned %s", resp.Status))
	}

	var raw []place
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, retry.Permanent(fmt.Errorf("decode search response: %w", err))
	}

	places := make([]domain.Place, 0, len(raw))
	for _, p := range raw {
		lat, latErr := strconv.ParseFloat(p.Lat, 64)
		lon, lonErr := strconv.ParseFloat(p.Lon, 64)
		if latErr != nil || lonErr != nil || p.DisplayName == "" {
			n.logger.Debug("Skipping malformed place", "display_name", p.DisplayName)
			continue
		}
		places = append(places, domain.Place{DisplayName: p.DisplayName, Lat: lat, Lon: lon})
	}
	return places, nil
}
