package notify

import (
	"fmt"
	"time"
)

// TimeAgo renders a notification timestamp relative to now
// ("Just now", "5 minutes ago", "3 weeks ago", ...).
func TimeAgo(t, now time.Time) string {
	diff := now.Sub(t)
	mins := int(diff.Minutes())
	hours := int(diff.Hours())
	days := int(diff.Hours() / 24)

	switch {
	case mins < 1:
		return "Just now"
	case mins < 60:
		return fmt.Sprintf("%d %s ago", mins, plural("minute", mins))
	case hours < 24:
		return fmt.Sprintf("%d %s ago", hours, plural("hour", hours))
	case days < 7:
		return fmt.Sprintf("%d %s ago", days, plural("day", days))
	case days < 30:
		weeks := days / 7
		return fmt.Sprintf("%d %s ago", weeks, plural("week", weeks))
	default:
		months := days / 30
		return fmt.Sprintf("%d %s ago", months, plural("month", months))
	}
}

func plural(unit string, n int) string {
	if n > 1 {
		return unit + "s"
	}
	return unit
}
