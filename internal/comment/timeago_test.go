package comment

import (
	"testing"
	"time"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"just now", now.Add(-5 * time.Second), "just now"},
		{"one minute", now.Add(-90 * time.Second), "1 minute ago"},
		{"minutes", now.Add(-5 * time.Minute), "5 minutes ago"},
		{"fifty-nine minutes", now.Add(-59 * time.Minute), "59 minutes ago"},
		{"one hour", now.Add(-90 * time.Minute), "1 hour ago"},
		{"hours", now.Add(-5 * time.Hour), "5 hours ago"},
		{"one day", now.Add(-30 * time.Hour), "1 day ago"},
		{"days", now.Add(-5 * 24 * time.Hour), "5 days ago"},
		{"falls back to date", now.Add(-90 * 24 * time.Hour), "2024-03-17"},
		{"future timestamp", now.Add(time.Hour), "just now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeAgo(tt.t, now); got != tt.want {
				t.Errorf("TimeAgo = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTimeAgoDoesNotMutate(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := Comment{ID: "c1", Author: "Alice", CreatedAt: created}

	TimeAgo(c.CreatedAt, created.Add(time.Hour))
	TimeAgo(c.CreatedAt, created.Add(48*time.Hour))

	if !c.CreatedAt.Equal(created) {
		t.Error("CreatedAt changed")
	}
}
