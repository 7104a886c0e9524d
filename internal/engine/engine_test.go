package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/allyquest/internal/catalog"
	"github.com/abhisek/allyquest/internal/kv"
	"github.com/abhisek/allyquest/internal/notes"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return c
}

// playPronouns plays every pronoun question, answering correctly for the first
// right questions and wrongly afterwards.
func playPronouns(t *testing.T, d *PronounDrill, right int) {
	t.Helper()
	for i := 0; i < d.Total(); i++ {
		q := d.Current()
		opt := q.Answer
		if i >= right {
			opt = (q.Answer + 1) % len(q.Options)
		}
		require.True(t, d.Choose(opt))
		require.True(t, d.Advance())
	}
}

func TestRatingTables(t *testing.T) {
	tests := []struct {
		name string
		rate func(int) int
		in   []int
		want []int
	}{
		{"pronouns", RatePronouns, []int{0, 1, 2, 3}, []int{1, 1, 2, 3}},
		{"language", RateLanguage, []int{0, 1, 2, 3, 4}, []int{1, 1, 1, 2, 3}},
		{"actions", RateActions, []int{0, 1, 2}, []int{1, 2, 3}},
		{"scenario", RateScenario, []int{0, 1, 2, 3, 4}, []int{1, 1, 2, 3, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, in := range tt.in {
				assert.Equal(t, tt.want[i], tt.rate(in), "score %d", in)
			}
		})
	}
}

func TestPronounDrill_ThreeCorrect(t *testing.T) {
	d := NewPronounDrill(testCatalog(t).Pronouns)
	require.Equal(t, 3, d.Total())

	playPronouns(t, d, 3)

	assert.Equal(t, Finished, d.Phase())
	stars, ok := d.Rating()
	require.True(t, ok)
	assert.Equal(t, 3, stars)
}

func TestPronounDrill_PartialScores(t *testing.T) {
	for right, want := range map[int]int{0: 1, 1: 1, 2: 2} {
		d := NewPronounDrill(testCatalog(t).Pronouns)
		playPronouns(t, d, right)
		stars, ok := d.Rating()
		require.True(t, ok)
		assert.Equal(t, want, stars, "right=%d", right)
	}
}

func TestPronounDrill_ChoiceLocksUntilAdvance(t *testing.T) {
	d := NewPronounDrill(testCatalog(t).Pronouns)
	q := d.Current()

	require.True(t, d.Choose(q.Answer))
	assert.Equal(t, AwaitingTransition, d.Phase())
	assert.True(t, d.LastCorrect())

	assert.False(t, d.Choose(0), "second choice must be rejected")
	assert.Equal(t, q.Answer, d.Selected())
	assert.Equal(t, 1, d.Correct())

	_, ok := d.Rating()
	assert.False(t, ok)
}

func TestPronounDrill_RejectsOutOfRange(t *testing.T) {
	d := NewPronounDrill(testCatalog(t).Pronouns)
	assert.False(t, d.Choose(-1))
	assert.False(t, d.Choose(99))
	assert.False(t, d.Advance(), "advance needs a locked choice")
	assert.Equal(t, InProgress, d.Phase())
}

func TestPronounDrill_NoInputAfterFinish(t *testing.T) {
	d := NewPronounDrill(testCatalog(t).Pronouns)
	playPronouns(t, d, 3)

	assert.False(t, d.Choose(0))
	assert.False(t, d.Advance())
	stars, _ := d.Rating()
	assert.Equal(t, 3, stars)
}

func TestLanguageCheck_AllCorrect(t *testing.T) {
	l := NewLanguageCheck(testCatalog(t).Language)
	require.Equal(t, 4, l.Total())

	for i := 0; i < l.Total(); i++ {
		require.True(t, l.Judge(l.Current().Appropriate))
		assert.True(t, l.LastCorrect())
		assert.False(t, l.Judge(!l.Current().Appropriate))
		require.True(t, l.Advance())
	}

	stars, ok := l.Rating()
	require.True(t, ok)
	assert.Equal(t, 3, stars)
}

func TestLanguageCheck_ThreeCorrect(t *testing.T) {
	l := NewLanguageCheck(testCatalog(t).Language)
	for i := 0; i < l.Total(); i++ {
		verdict := l.Current().Appropriate
		if i == 0 {
			verdict = !verdict
		}
		require.True(t, l.Judge(verdict))
		require.True(t, l.Advance())
	}

	stars, _ := l.Rating()
	assert.Equal(t, 2, stars)
}

func TestLanguageCheck_VerdictClearsOnAdvance(t *testing.T) {
	l := NewLanguageCheck(testCatalog(t).Language)
	_, ok := l.Verdict()
	assert.False(t, ok)

	require.True(t, l.Judge(true))
	v, ok := l.Verdict()
	assert.True(t, ok)
	assert.True(t, v)

	require.True(t, l.Advance())
	_, ok = l.Verdict()
	assert.False(t, ok)
}

func TestScenarioDecision_RatingIsOptionStars(t *testing.T) {
	content := testCatalog(t).Scenario
	for i, opt := range content.Options {
		s := NewScenarioDecision(content)
		require.True(t, s.Choose(i))

		chosen, ok := s.Chosen()
		require.True(t, ok)
		assert.Equal(t, opt.Feedback, chosen.Feedback)

		assert.False(t, s.Choose((i+1)%len(content.Options)))
		require.True(t, s.Advance())

		stars, ok := s.Rating()
		require.True(t, ok)
		assert.Equal(t, opt.Stars, stars, "option %d", i)
	}
}

func TestScenarioDecision_SecondOptionGivesOneStar(t *testing.T) {
	s := NewScenarioDecision(testCatalog(t).Scenario)
	require.True(t, s.Choose(1))
	require.True(t, s.Advance())
	stars, _ := s.Rating()
	assert.Equal(t, 1, stars)
}

func TestFriendlyActions_ConfirmRequiresSelection(t *testing.T) {
	f := NewFriendlyActions(testCatalog(t).Actions)
	assert.False(t, f.CanConfirm())
	assert.False(t, f.Confirm())
	assert.Equal(t, InProgress, f.Phase())
}

func TestFriendlyActions_SelectionChangeableUntilConfirm(t *testing.T) {
	f := NewFriendlyActions(testCatalog(t).Actions)
	q := f.Current()

	require.True(t, f.Select(0))
	require.True(t, f.Select(q.Answer))
	require.True(t, f.Confirm())
	assert.True(t, f.LastCorrect())

	assert.False(t, f.Select(0), "selection locked after confirm")
	assert.Equal(t, q.Answer, f.Selected())
}

func TestFriendlyActions_Ratings(t *testing.T) {
	for right, want := range map[int]int{0: 1, 1: 2, 2: 3} {
		f := NewFriendlyActions(testCatalog(t).Actions)
		require.Equal(t, 2, f.Total())
		for i := 0; i < f.Total(); i++ {
			q := f.Current()
			opt := q.Answer
			if i >= right {
				opt = (q.Answer + 1) % len(q.Options)
			}
			require.True(t, f.Select(opt))
			require.True(t, f.Confirm())
			require.True(t, f.Advance())
		}
		stars, ok := f.Rating()
		require.True(t, ok)
		assert.Equal(t, want, stars, "right=%d", right)
	}
}

func TestReflection_RejectsBlank(t *testing.T) {
	ctx := context.Background()
	store := notes.NewStore(kv.NewMemory(), nil)
	r := NewReflection(testCatalog(t).Reflection, store, "Sam")

	assert.False(t, r.Submit(ctx, "   \n\t"))
	assert.Equal(t, InProgress, r.Phase())
	assert.Empty(t, store.List(ctx))
}

func TestReflection_SubmitPrependsAndRatesThree(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	require.NoError(t, mem.Set(ctx, kv.KeyNotes, `[{"id":1,"text":"older","by":"Kim","timestamp":1}]`))
	store := notes.NewStore(mem, nil, notes.WithClock(func() time.Time { return time.UnixMilli(50) }))
	r := NewReflection(testCatalog(t).Reflection, store, "Sam")

	require.True(t, r.Submit(ctx, " A "))

	stars, ok := r.Rating()
	require.True(t, ok)
	assert.Equal(t, 3, stars)

	list := store.List(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, " A ", list[0].Text)
	assert.Equal(t, "Sam", list[0].By)
	assert.Equal(t, "older", list[1].Text)

	entry, ok := r.Entry()
	require.True(t, ok)
	assert.Equal(t, list[0], entry)

	assert.False(t, r.Submit(ctx, "again"), "only one submission per session")
	assert.Len(t, store.List(ctx), 2)
}

func TestEnginesSatisfyInterfaces(t *testing.T) {
	c := testCatalog(t)
	var _ Advancer = NewPronounDrill(c.Pronouns)
	var _ Advancer = NewLanguageCheck(c.Language)
	var _ Advancer = NewScenarioDecision(c.Scenario)
	var _ Advancer = NewFriendlyActions(c.Actions)
	var _ Engine = NewReflection(c.Reflection, notes.NewStore(kv.NewMemory(), nil), "x")
}
