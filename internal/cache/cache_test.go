package cache

import (
	"context"
	"testing"

	"github.com/orgball2608/story-engine/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopAlwaysMisses(t *testing.T) {
	var c ProfileCache = Nop{}

	found, missing, err := c.GetProfiles(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Empty(t, found)
	assert.Equal(t, []string{"a", "b"}, missing)

	assert.NoError(t, c.SetProfiles(context.Background(), []domain.Profile{{ID: "a"}}))
}

func TestProfileKey(t *testing.T) {
	assert.Equal(t, "story-engine:profile:u1", profileKey("u1"))
}
