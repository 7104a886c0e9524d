package nav

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/allyquest/internal/catalog"
	"github.com/abhisek/allyquest/internal/identity"
	"github.com/abhisek/allyquest/internal/kv"
	"github.com/abhisek/allyquest/internal/progress"
)

type fixture struct {
	store   kv.Store
	tracker *progress.Tracker
	ident   *identity.Store
	m       *Machine
}

func newFixture(t *testing.T, name string) *fixture {
	t.Helper()
	ctx := context.Background()
	cat, err := catalog.Default()
	require.NoError(t, err)

	store := kv.NewMemory()
	ident := identity.NewStore(ctx, store, nil)
	if name != "" {
		require.True(t, ident.SetName(ctx, name))
	}
	tracker := progress.NewTracker(ctx, store, nil)

	n := 0
	m := New(cat, tracker, ident, WithSessionIDs(func() string {
		n++
		return fmt.Sprintf("s%d", n)
	}))
	return &fixture{store: store, tracker: tracker, ident: ident, m: m}
}

func (f *fixture) play(t *testing.T, stageID, stars int) {
	t.Helper()
	st, ok := f.m.SelectStage(stageID)
	require.True(t, ok, "select %d", stageID)
	require.True(t, f.m.CompleteStage(context.Background(), st.SessionID, stars))
	require.True(t, f.m.ReturnToMap(st.SessionID))
}

func TestInitialState(t *testing.T) {
	assert.Equal(t, NameGate, newFixture(t, "").m.State().Kind)
	assert.Equal(t, Map, newFixture(t, "Sam").m.State().Kind)
}

func TestSubmitName(t *testing.T) {
	f := newFixture(t, "")
	ctx := context.Background()

	assert.False(t, f.m.SubmitName(ctx, "   "))
	assert.Equal(t, NameGate, f.m.State().Kind)

	require.True(t, f.m.SubmitName(ctx, " Sam "))
	assert.Equal(t, Map, f.m.State().Kind)
	assert.Equal(t, "Sam", f.ident.Name())
}

func TestSelectStage_LockedIsNoop(t *testing.T) {
	f := newFixture(t, "Sam")

	_, ok := f.m.SelectStage(2)
	assert.False(t, ok)
	_, ok = f.m.SelectStage(99)
	assert.False(t, ok)
	assert.Equal(t, Map, f.m.State().Kind)
}

func TestSelectStage_NewSessionEachTime(t *testing.T) {
	f := newFixture(t, "Sam")

	a, ok := f.m.SelectStage(1)
	require.True(t, ok)
	assert.Equal(t, State{Kind: Stage, StageID: 1, SessionID: "s1"}, a)

	require.True(t, f.m.Back())
	b, ok := f.m.SelectStage(1)
	require.True(t, ok)
	assert.NotEqual(t, a.SessionID, b.SessionID)
}

func TestSelectStage_OnlyFromMap(t *testing.T) {
	f := newFixture(t, "")
	_, ok := f.m.SelectStage(1)
	assert.False(t, ok)
}

func TestCompleteStage_OncePerSession(t *testing.T) {
	f := newFixture(t, "Sam")
	ctx := context.Background()
	st, _ := f.m.SelectStage(1)

	require.True(t, f.m.CompleteStage(ctx, st.SessionID, 2))
	assert.False(t, f.m.CompleteStage(ctx, st.SessionID, 3))

	r, ok := f.tracker.Record(1)
	require.True(t, ok)
	assert.Equal(t, 2, r.Stars)
}

func TestCompleteStage_RejectsOutOfRangeStars(t *testing.T) {
	f := newFixture(t, "Sam")
	ctx := context.Background()
	st, _ := f.m.SelectStage(1)

	assert.False(t, f.m.CompleteStage(ctx, st.SessionID, 0))
	assert.False(t, f.m.CompleteStage(ctx, st.SessionID, 4))
	assert.Zero(t, f.tracker.CompletedCount())
}

func TestStaleSessionIsNoop(t *testing.T) {
	f := newFixture(t, "Sam")
	ctx := context.Background()

	old, _ := f.m.SelectStage(1)
	require.True(t, f.m.Back())
	cur, _ := f.m.SelectStage(1)

	assert.False(t, f.m.CompleteStage(ctx, old.SessionID, 3))
	assert.False(t, f.m.ReturnToMap(old.SessionID))
	assert.Equal(t, cur, f.m.State())
	assert.Zero(t, f.tracker.CompletedCount())

	// A tick for a session abandoned to the map must not move the map either.
	require.True(t, f.m.Back())
	assert.False(t, f.m.ReturnToMap(cur.SessionID))
	assert.Equal(t, Map, f.m.State().Kind)
}

func TestBack_AfterCompletionKeepsCredit(t *testing.T) {
	f := newFixture(t, "Sam")
	st, _ := f.m.SelectStage(1)
	require.True(t, f.m.CompleteStage(context.Background(), st.SessionID, 3))

	require.True(t, f.m.Back())
	assert.False(t, f.m.ReturnToMap(st.SessionID))
	assert.Equal(t, 1, f.tracker.CompletedCount())
	assert.True(t, f.tracker.IsUnlocked(2))
}

func TestBack_WithoutCompletionGivesNoCredit(t *testing.T) {
	f := newFixture(t, "Sam")
	_, _ = f.m.SelectStage(1)
	require.True(t, f.m.Back())
	assert.Zero(t, f.tracker.CompletedCount())
	assert.False(t, f.tracker.IsUnlocked(2))
}

func TestEditIdentity(t *testing.T) {
	f := newFixture(t, "Sam")
	ctx := context.Background()
	f.play(t, 1, 3)

	require.True(t, f.m.EditIdentity())
	assert.Equal(t, NameGate, f.m.State().Kind)

	require.True(t, f.m.Back(), "cancel edit keeps the old name")
	assert.Equal(t, Map, f.m.State().Kind)

	require.True(t, f.m.EditIdentity())
	require.True(t, f.m.SubmitName(ctx, "Alex"))
	assert.Equal(t, "Alex", f.ident.Name())
	assert.Equal(t, 1, f.tracker.CompletedCount())
}

func TestBack_AtFirstNameGateIsNoop(t *testing.T) {
	f := newFixture(t, "")
	assert.False(t, f.m.Back())
	assert.Equal(t, NameGate, f.m.State().Kind)
}

func TestFullPlaythroughCelebratesOnce(t *testing.T) {
	f := newFixture(t, "Sam")

	for id := 1; id <= 5; id++ {
		for later := id + 1; later <= 5; later++ {
			_, ok := f.m.SelectStage(later)
			assert.False(t, ok, "stage %d must be locked before %d", later, id)
		}
		assert.False(t, f.m.ShouldCelebrate())
		f.play(t, id, 1+id%3)
	}

	assert.Equal(t, 5, f.tracker.CompletedCount())
	assert.True(t, f.m.ShouldCelebrate())
	assert.False(t, f.m.ShouldCelebrate())

	// Replaying a stage does not celebrate again.
	f.play(t, 3, 3)
	assert.False(t, f.m.ShouldCelebrate())
}

func TestShouldCelebrate_RearmsAfterReset(t *testing.T) {
	f := newFixture(t, "Sam")
	for id := 1; id <= 5; id++ {
		f.play(t, id, 3)
	}
	require.True(t, f.m.ShouldCelebrate())

	f.tracker.Reset(context.Background())
	assert.False(t, f.m.ShouldCelebrate())

	for id := 1; id <= 5; id++ {
		f.play(t, id, 2)
	}
	assert.True(t, f.m.ShouldCelebrate())
}

func TestShouldCelebrate_OnlyOnMap(t *testing.T) {
	f := newFixture(t, "Sam")
	for id := 1; id <= 5; id++ {
		f.play(t, id, 3)
	}
	_, ok := f.m.SelectStage(1)
	require.True(t, ok)
	assert.False(t, f.m.ShouldCelebrate())
}
