package comment

import (
	"fmt"
	"time"
)

// TimeAgo renders the time since t as a short label ("5 minutes ago").
// It derives the label from the stored creation time on every call, so
// re-rendering the same comment later yields a fresh label without
// touching the comment itself. Anything older than thirty days falls
// back to the plain date.
func TimeAgo(t, now time.Time) string {
	d := now.Sub(t)

	switch {
	case d < time.Minute:
		return "just now"
	case d < 2*time.Minute:
		return "1 minute ago"
	case d < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(d.Minutes()))
	case d < 2*time.Hour:
		return "1 hour ago"
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(d.Hours()))
	case d < 48*time.Hour:
		return "1 day ago"
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}
