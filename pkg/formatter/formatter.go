package formatter

import (
	"strconv"
	"time"
)

// FormatNumber converts an integer to a string with commas as thousands separators.
// Example: 1234567 -> "1,234,567"
func FormatNumber(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		s = s[1:]
	}

	le := len(s)
	if le <= 3 {
		if n < 0 {
			return "-" + s
		}
		return s
	}

	sepCount := (le - 1) / 3

	res := make([]byte, le+sepCount)

	j := len(res) - 1
	for i := le - 1; i >= 0; i-- {
		res[j] = s[i]
		j--
		if (le-i)%3 == 0 && i > 0 {
			res[j] = ','
			j--
		}
	}

	if n < 0 {
		return "-" + string(res)
	}
	return string(res)
}

var agoUnits = []struct {
	seconds float64
	suffix  string
}{
	{31536000, "y"},
	{2592000, "mo"},
	{86400, "d"},
	{3600, "h"},
	{60, "m"},
}

// TimeAgo renders the compact age label shown in the story header: "3h", "2d", "now".
// A unit is used only once more than one whole unit has elapsed.
func TimeAgo(now, then time.Time) string {
	seconds := float64(int64(now.Sub(then) / time.Second))
	for _, u := range agoUnits {
		interval := seconds / u.seconds
		if interval > 1 {
			return strconv.Itoa(int(interval)) + u.suffix
		}
	}
	return "now"
}
