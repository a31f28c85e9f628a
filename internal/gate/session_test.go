package gate

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/sfx-library/internal/model"
)

type memStore struct {
	rec     *model.Affirmation
	saves   int
	clears  int
	loadErr error
}

func (m *memStore) LoadAffirmation(context.Context) (*model.Affirmation, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.rec, nil
}

func (m *memStore) SaveAffirmation(_ context.Context, rec model.Affirmation) error {
	m.rec = &rec
	m.saves++
	return nil
}

func (m *memStore) ClearAffirmation(context.Context) error {
	m.rec = nil
	m.clears++
	return nil
}

func fixedClock(t time.Time) Option {
	return WithClock(func() time.Time { return t })
}

func TestSession_AffirmPersists(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	s, err := NewSession(ctx, store, fixedClock(now))
	require.NoError(t, err)

	out, err := s.Attempt(ctx, library, QueryAction("door"))
	require.NoError(t, err)
	assert.True(t, out.Awaiting)
	assert.True(t, s.State().Awaiting())
	assert.Zero(t, store.saves)

	out, err = s.Affirm(ctx, library)
	require.NoError(t, err)
	assert.True(t, out.Visible)
	assert.Equal(t, 1, store.saves)
	require.NotNil(t, store.rec)
	assert.Equal(t, now.UnixMilli(), store.rec.Timestamp)

	ok, err := s.Verified(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSession_DeclineDoesNotPersist(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	s, err := NewSession(ctx, store, fixedClock(now))
	require.NoError(t, err)

	_, err = s.Attempt(ctx, library, QueryAction("door"))
	require.NoError(t, err)
	out := s.Decline(library)
	assert.Equal(t, []string{"door"}, ids(out.Results))
	assert.Zero(t, store.saves)
	assert.Nil(t, store.rec)
}

func TestSession_ExpiredRecordClearedOnLoadCheck(t *testing.T) {
	ctx := context.Background()
	store := &memStore{rec: affirmedAt(now.Add(-31 * 24 * time.Hour))}
	s, err := NewSession(ctx, store, fixedClock(now))
	require.NoError(t, err)

	ok, err := s.Verified(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, store.clears)
	assert.Nil(t, store.rec)
}

func TestSession_ExpiredRecordClearedOnAttempt(t *testing.T) {
	ctx := context.Background()
	store := &memStore{rec: affirmedAt(now.Add(-40 * 24 * time.Hour))}
	s, err := NewSession(ctx, store, fixedClock(now))
	require.NoError(t, err)

	out, err := s.Attempt(ctx, library, QueryAction("thunder"))
	require.NoError(t, err)
	assert.True(t, out.AffirmationCleared)
	assert.Equal(t, 1, store.clears)
}

func TestSession_Reset(t *testing.T) {
	ctx := context.Background()
	store := &memStore{rec: affirmedAt(now)}
	s, err := NewSession(ctx, store, fixedClock(now))
	require.NoError(t, err)

	require.NoError(t, s.Reset(ctx))
	assert.Nil(t, s.State().Affirmation)
	assert.Nil(t, store.rec)
}

func TestSession_LoadError(t *testing.T) {
	_, err := NewSession(context.Background(), &memStore{loadErr: errors.New("disk gone")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}

func TestSession_ConcurrentGesturesLeaveOnePending(t *testing.T) {
	ctx := context.Background()
	s, err := NewSession(ctx, &memStore{}, fixedClock(now))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, a := range []Action{QueryAction("door"), TagAction("impact"), ViewAllAction()} {
		wg.Add(1)
		go func(a Action) {
			defer wg.Done()
			_, _ = s.Attempt(ctx, library, a)
		}(a)
	}
	wg.Wait()

	st := s.State()
	require.True(t, st.Awaiting())
	out := s.Decline(library)
	assert.Equal(t, st.Pending.Kind, out.Action.Kind)
	assert.False(t, s.State().Awaiting())
}

func TestSession_DismissDiscardsViewAll(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	s, err := NewSession(ctx, store, fixedClock(now))
	require.NoError(t, err)

	out, err := s.Attempt(ctx, library, ViewAllAction())
	require.NoError(t, err)
	require.True(t, out.Awaiting)

	out = s.Dismiss(library)
	assert.False(t, out.Visible)
	assert.Empty(t, out.Results)
	assert.False(t, s.State().Awaiting())
	assert.Zero(t, store.saves)
}
