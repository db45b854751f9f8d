package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestStore(ttl time.Duration) (*sessionStore, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := newStore(ttl)
	s.now = clock.now
	return s, clock
}

func TestSessionStore_CreateStartsUnconfigured(t *testing.T) {
	s, _ := newTestStore(time.Minute)

	sess := s.create()

	assert.NotEmpty(t, sess.id)
	assert.False(t, sess.state.CredentialConfigured)
	got, ok := s.get(sess.id)
	require.True(t, ok)
	assert.Same(t, sess, got)
}

func TestSessionStore_UniqueIDs(t *testing.T) {
	s, _ := newTestStore(time.Minute)
	assert.NotEqual(t, s.create().id, s.create().id)
	assert.Equal(t, 2, s.len())
}

func TestSessionStore_GetExpired(t *testing.T) {
	s, clock := newTestStore(time.Minute)
	sess := s.create()

	clock.t = clock.t.Add(2 * time.Minute)

	_, ok := s.get(sess.id)
	assert.False(t, ok)
	assert.Equal(t, 0, s.len())
}

func TestSessionStore_GetRefreshes(t *testing.T) {
	s, clock := newTestStore(time.Minute)
	sess := s.create()

	clock.t = clock.t.Add(50 * time.Second)
	_, ok := s.get(sess.id)
	require.True(t, ok)

	clock.t = clock.t.Add(50 * time.Second)
	assert.Equal(t, 0, s.sweep())
	_, ok = s.get(sess.id)
	assert.True(t, ok)
}

func TestSessionStore_Sweep(t *testing.T) {
	s, clock := newTestStore(time.Minute)
	old := s.create()
	clock.t = clock.t.Add(45 * time.Second)
	fresh := s.create()
	clock.t = clock.t.Add(30 * time.Second)

	assert.Equal(t, 1, s.sweep())

	_, ok := s.get(old.id)
	assert.False(t, ok)
	_, ok = s.get(fresh.id)
	assert.True(t, ok)
}

func TestSessionStore_RunStopsOnCancel(t *testing.T) {
	s, _ := newTestStore(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.run(ctx, time.Millisecond, nil)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("run did not return after cancel")
	}
}
