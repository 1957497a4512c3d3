package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/memory/internal/game"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	g, err := game.New(game.DefaultConfig(), game.WithSeed(1))
	require.NoError(t, err)
	return NewSession(g, "")
}

func TestSaveGetDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := newSession(t)

	require.NoError(t, st.Save(ctx, s))
	got, err := st.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	require.NoError(t, st.Delete(ctx, s.ID))
	_, err = st.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveRejectsEmptyID(t *testing.T) {
	assert.Error(t, NewMemoryStore().Save(context.Background(), &Session{}))
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := newSession(t)
	require.NoError(t, st.Save(ctx, s))

	boom := errors.New("boom")
	err := st.Update(ctx, s.ID, func(*Session) error { return boom })
	assert.ErrorIs(t, err, boom)

	err = st.Update(ctx, "missing", func(*Session) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	err = st.Update(cancelled, s.ID, func(*Session) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUpdateSerializesClicks(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := newSession(t)
	require.NoError(t, st.Save(ctx, s))

	target := s.Game.Cards()[0].Bounds.Center()
	var wg sync.WaitGroup
	exposed := make(chan int, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = st.Update(ctx, s.ID, func(s *Session) error {
				exposed <- s.Game.Click(target).Exposed
				return nil
			})
		}()
	}
	wg.Wait()
	close(exposed)

	total := 0
	for n := range exposed {
		total += n
	}
	assert.Equal(t, 1, total)
}

func TestSessionReset(t *testing.T) {
	s := newSession(t)
	s.DailyDate = "2026-03-01"
	first := s.DealID()
	s.Recorded = true

	s.Reset()
	assert.NotEqual(t, first, s.DealID())
	assert.Equal(t, 1, s.Deal)
	assert.False(t, s.Recorded)
	assert.Empty(t, s.DailyDate)
}

func deckOf(s *Session) []int {
	out := make([]int, 0, len(s.Game.Cards()))
	for _, c := range s.Game.Cards() {
		out = append(out, c.Pair)
	}
	return out
}

func TestDailySessionResetLeavesSharedSeed(t *testing.T) {
	newDaily := func() *Session {
		g, err := game.New(game.DefaultConfig(), game.WithSeed(20260301))
		require.NoError(t, err)
		return NewSession(g, "2026-03-01")
	}
	a, b := newDaily(), newDaily()
	require.Equal(t, deckOf(a), deckOf(b), "daily deals match")

	a.Reset()
	b.Reset()
	assert.NotEqual(t, deckOf(a), deckOf(b))
	assert.Empty(t, a.DailyDate)
}

func TestSweep(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	old, fresh := newSession(t), newSession(t)
	old.StartedAt = time.Now().Add(-2 * time.Hour)
	require.NoError(t, st.Save(ctx, old))
	require.NoError(t, st.Save(ctx, fresh))

	assert.Equal(t, 1, st.Sweep(ctx, time.Now().Add(-time.Hour)))
	_, err := st.Get(ctx, old.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = st.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}
