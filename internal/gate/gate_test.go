package gate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/sfx-library/internal/model"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

var library = []model.Sound{
	{ID: "door", Title: "Door Creak", Tags: []string{"door", "horror"}},
	{ID: "moan", Title: "Door Moan", Tags: []string{"door", "nsfw"}},
	{ID: "thunder", Title: "Thunder", Tags: []string{"storm"}},
	{ID: "slap", Title: "Slap", Tags: []string{"impact", "nsfw"}},
}

func ids(items []model.Sound) []string {
	out := []string{}
	for _, s := range items {
		out = append(out, s.ID)
	}
	return out
}

func affirmedAt(t time.Time) *model.Affirmation {
	rec := model.NewAffirmation(t)
	return &rec
}

func TestValid_ExpiryWindow(t *testing.T) {
	day := 24 * time.Hour
	assert.True(t, Valid(affirmedAt(now.Add(-29*day)), now))
	assert.True(t, Valid(affirmedAt(now.Add(-30*day)), now))
	assert.False(t, Valid(affirmedAt(now.Add(-31*day)), now))
	assert.False(t, Valid(nil, now))
	assert.False(t, Valid(&model.Affirmation{Verified: false, Timestamp: now.UnixMilli()}, now))
}

func TestAttempt_UnrestrictedShowsImmediately(t *testing.T) {
	st, out := Attempt(State{}, library, QueryAction("thunder"), now)
	assert.False(t, st.Awaiting())
	assert.True(t, out.Visible)
	assert.False(t, out.Awaiting)
	assert.Equal(t, []string{"thunder"}, ids(out.Results))
}

func TestScenarioB_Decline(t *testing.T) {
	st, out := Attempt(State{}, library, QueryAction("door"), now)
	require.True(t, st.Awaiting())
	assert.True(t, out.Awaiting)
	assert.False(t, out.Visible)
	assert.Nil(t, out.Results)
	assert.Equal(t, QueryAction("door"), *st.Pending)

	st, out = Decline(st, library)
	assert.False(t, st.Awaiting())
	assert.Nil(t, st.Affirmation)
	assert.True(t, out.Visible)
	assert.False(t, out.AffirmationSet)
	assert.Equal(t, []string{"door"}, ids(out.Results))
}

func TestScenarioB_Affirm(t *testing.T) {
	st, _ := Attempt(State{}, library, QueryAction("door"), now)
	require.True(t, st.Awaiting())

	st, out := Affirm(st, library, now)
	assert.False(t, st.Awaiting())
	require.NotNil(t, st.Affirmation)
	assert.True(t, st.Affirmation.Verified)
	assert.Equal(t, now.UnixMilli(), st.Affirmation.Timestamp)
	assert.True(t, out.AffirmationSet)
	assert.True(t, out.Visible)
	assert.ElementsMatch(t, []string{"door", "moan"}, ids(out.Results))

	// Later actions run unfiltered without gating.
	st, out = Attempt(st, library, TagAction("nsfw"), now.Add(time.Hour))
	assert.False(t, st.Awaiting())
	assert.True(t, out.Visible)
	assert.Equal(t, []string{"moan", "slap"}, ids(out.Results))
}

func TestScenarioD_SecondGestureReplacesPending(t *testing.T) {
	st, _ := Attempt(State{}, library, QueryAction("door"), now)
	require.True(t, st.Awaiting())

	st, out := Attempt(st, library, TagAction("Impact"), now)
	require.True(t, out.Awaiting)
	assert.Equal(t, Action{Kind: KindTag, Term: "impact"}, *st.Pending)

	declined, out := Decline(st, library)
	assert.False(t, declined.Awaiting())
	assert.Equal(t, KindTag, out.Action.Kind)
	assert.Empty(t, out.Results)
	assert.True(t, out.Visible)

	affirmed, out := Affirm(st, library, now)
	assert.False(t, affirmed.Awaiting())
	assert.Equal(t, "impact", out.Action.Term)
	assert.Equal(t, []string{"slap"}, ids(out.Results))
}

func TestAttempt_UngatedActionDropsPending(t *testing.T) {
	st, _ := Attempt(State{}, library, QueryAction("door"), now)
	require.True(t, st.Awaiting())

	st, out := Attempt(st, library, QueryAction("thunder"), now)
	assert.False(t, st.Awaiting())
	assert.True(t, out.Visible)

	st, out = Decline(st, library)
	assert.False(t, out.Visible)
	assert.Nil(t, out.Results)
}

func TestViewAll(t *testing.T) {
	st, out := Attempt(State{}, library, ViewAllAction(), now)
	require.True(t, st.Awaiting())
	assert.False(t, out.Visible)

	declined, out := Decline(st, library)
	assert.False(t, declined.Awaiting())
	assert.False(t, out.Visible)
	assert.Nil(t, out.Results)

	affirmed, out := Affirm(st, library, now)
	assert.False(t, affirmed.Awaiting())
	assert.True(t, out.Visible)
	assert.Equal(t, ids(library), ids(out.Results))
}

func TestViewAll_NoRestrictedContent(t *testing.T) {
	clean := library[2:3]
	st, out := Attempt(State{}, clean, ViewAllAction(), now)
	assert.False(t, st.Awaiting())
	assert.Equal(t, []string{"thunder"}, ids(out.Results))
}

func TestTagAction_AllSoundsIsViewAll(t *testing.T) {
	assert.Equal(t, ViewAllAction(), TagAction("  All Sounds "))
	assert.Equal(t, Action{Kind: KindTag, Term: "door"}, TagAction(" DOOR"))
}

func TestAttempt_ExpiredAffirmationIsClearedAndGates(t *testing.T) {
	st := State{Affirmation: affirmedAt(now.Add(-31 * 24 * time.Hour))}
	st, out := Attempt(st, library, QueryAction("slap"), now)
	assert.Nil(t, st.Affirmation)
	assert.True(t, out.AffirmationCleared)
	assert.True(t, out.Awaiting)
}

func TestAttempt_ValidAffirmationSkipsGate(t *testing.T) {
	st := State{Affirmation: affirmedAt(now.Add(-29 * 24 * time.Hour))}
	st, out := Attempt(st, library, QueryAction("slap"), now)
	assert.NotNil(t, st.Affirmation)
	assert.False(t, out.AffirmationCleared)
	assert.False(t, out.Awaiting)
	assert.Equal(t, []string{"slap"}, ids(out.Results))
}

func TestDecline_IdleIsNoop(t *testing.T) {
	st := State{Affirmation: affirmedAt(now)}
	got, out := Decline(st, library)
	assert.Equal(t, st, got)
	assert.False(t, out.Visible)
}

func TestDismissEqualsDecline(t *testing.T) {
	st, _ := Attempt(State{}, library, QueryAction("door"), now)
	_, a := Decline(st, library)
	_, b := Dismiss(st, library)
	assert.Equal(t, a, b)
}

func TestAffirm_IdleOnlyRecords(t *testing.T) {
	st, out := Affirm(State{}, library, now)
	require.NotNil(t, st.Affirmation)
	assert.True(t, out.AffirmationSet)
	assert.False(t, out.Visible)
}

func TestReset(t *testing.T) {
	st := Reset(State{Affirmation: affirmedAt(now)})
	assert.Nil(t, st.Affirmation)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "query", KindQuery.String())
	assert.Equal(t, "tag", KindTag.String())
	assert.Equal(t, "view-all", KindViewAll.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
