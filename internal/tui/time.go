package tui

import (
	"fmt"
	"time"

	"github.com/mrz1836/timekit/internal/clock"
)

// RelativeTimeWith formats t relative to c.Now(), e.g. "just now",
// "2 minutes ago", "in 3 days" or "10 weeks ago".
func RelativeTimeWith(t time.Time, c clock.Clock) string {
	diff := c.Now().Sub(t)
	if diff > -time.Minute && diff < time.Minute {
		return "just now"
	}

	future := diff < 0
	if future {
		diff = -diff
	}

	var amount string
	switch {
	case diff < time.Hour:
		amount = plural(int(diff.Minutes()), "minute")
	case diff < 24*time.Hour:
		amount = plural(int(diff.Hours()), "hour")
	case diff < 7*24*time.Hour:
		amount = plural(int(diff.Hours()/24), "day")
	default:
		amount = plural(int(diff.Hours()/24/7), "week")
	}

	if future {
		return "in " + amount
	}
	return amount + " ago"
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
