package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	cases := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-1234:    "-1,234",
		-12:      "-12",
		10000000: "10,000,000",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatNumber(in), "FormatNumber(%d)", in)
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "now", TimeAgo(now, now))
	assert.Equal(t, "now", TimeAgo(now, now.Add(-59*time.Second)))
	// exactly one minute is not "more than one" minute yet
	assert.Equal(t, "now", TimeAgo(now, now.Add(-60*time.Second)))
	assert.Equal(t, "1m", TimeAgo(now, now.Add(-90*time.Second)))
	assert.Equal(t, "3h", TimeAgo(now, now.Add(-3*time.Hour-5*time.Minute)))
	assert.Equal(t, "23h", TimeAgo(now, now.Add(-23*time.Hour-59*time.Minute)))
	assert.Equal(t, "2d", TimeAgo(now, now.Add(-50*time.Hour)))
}
