package comment

import (
	"time"

	"github.com/robfig/cron/v3"
)

// RefreshInterval is how often a rendered thread refreshes its
// relative-time labels.
const RefreshInterval = 60 * time.Second

// Refresher runs a display-refresh callback on a fixed interval. It is
// owned by whoever renders the thread: started explicitly, and stopped
// on teardown so no background work outlives the view. The callback
// must only re-render; it must not re-fetch or mutate comment data.
type Refresher struct {
	c *cron.Cron
}

// NewRefresher schedules fn every interval. The schedule does not fire
// until Start is called.
func NewRefresher(interval time.Duration, fn func()) *Refresher {
	c := cron.New()
	c.Schedule(cron.Every(interval), cron.FuncJob(fn))
	return &Refresher{c: c}
}

// Start begins firing the callback.
func (r *Refresher) Start() {
	r.c.Start()
}

// Stop cancels the schedule. No callback runs after Stop returns and
// any in-flight callback has finished.
func (r *Refresher) Stop() {
	ctx := r.c.Stop()
	<-ctx.Done()
}
