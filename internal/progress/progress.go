// Package progress tracks which stages a learner has completed and with how
// many stars. The whole map is persisted on every mutation.
package progress

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/allyquest/internal/kv"
)

// Record is the completion state of a single stage.
type Record struct {
	Completed bool  `json:"completed"`
	Stars     int   `json:"stars"`
	Timestamp int64 `json:"timestamp"` // Unix milliseconds
}

// Map holds one record per completed stage id.
type Map map[int]Record

func emptyMap() Map { return Map{} }

// Tracker owns the progress map and its persistence.
type Tracker struct {
	value    *kv.Value[Map]
	progress Map
	now      func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the time source used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// NewTracker loads progress from store. Missing or malformed data yields an
// empty map.
func NewTracker(ctx context.Context, store kv.Store, logger *zap.Logger, opts ...Option) *Tracker {
	t := &Tracker{
		value: kv.NewValue(store, kv.KeyProgress, emptyMap, logger),
		now:   time.Now,
	}
	for _, o := range opts {
		o(t)
	}
	t.progress = t.value.Load(ctx)
	if t.progress == nil {
		t.progress = emptyMap()
	}
	return t
}

// IsUnlocked reports whether stageID may be entered. Stage 1 is always open;
// stage N opens once stage N-1 is completed.
func (t *Tracker) IsUnlocked(stageID int) bool {
	if stageID == 1 {
		return true
	}
	if stageID < 1 {
		return false
	}
	return t.progress[stageID-1].Completed
}

// CompleteStage records a completion, replacing any earlier record for the
// same stage, and persists the map. Later calls win even with fewer stars.
func (t *Tracker) CompleteStage(ctx context.Context, stageID, stars int) {
	t.progress[stageID] = Record{
		Completed: true,
		Stars:     stars,
		Timestamp: t.now().UnixMilli(),
	}
	t.value.Save(ctx, t.progress)
}

// Record returns the stored record for stageID.
func (t *Tracker) Record(stageID int) (Record, bool) {
	r, ok := t.progress[stageID]
	return r, ok
}

// CompletedCount returns the number of completed stages.
func (t *Tracker) CompletedCount() int {
	n := 0
	for _, r := range t.progress {
		if r.Completed {
			n++
		}
	}
	return n
}

// TotalStars sums stars over completed stages.
func (t *Tracker) TotalStars() int {
	sum := 0
	for _, r := range t.progress {
		if r.Completed {
			sum += r.Stars
		}
	}
	return sum
}

// AllComplete reports whether every one of total stages is completed.
func (t *Tracker) AllComplete(total int) bool {
	return total > 0 && t.CompletedCount() == total
}

// Snapshot returns a copy of the progress map.
func (t *Tracker) Snapshot() Map {
	out := make(Map, len(t.progress))
	for k, v := range t.progress {
		out[k] = v
	}
	return out
}

// Reset clears all progress and persists the empty map.
func (t *Tracker) Reset(ctx context.Context) {
	t.progress = emptyMap()
	t.value.Save(ctx, t.progress)
}
