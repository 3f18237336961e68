package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/orgball2608/story-engine/pkg/logger"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error {
	return s.err
}

func TestHealthCheck(t *testing.T) {
	rec := httptest.NewRecorder()
	healthCheckHandler(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil), logger.NewNop(), stubPinger{})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestHealthCheckDatabaseDown(t *testing.T) {
	rec := httptest.NewRecorder()
	healthCheckHandler(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil), logger.NewNop(), stubPinger{err: errors.New("down")})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
