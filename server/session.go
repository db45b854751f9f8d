package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"eco_upcycle_generator/generator"
)

const sessionCookieName = "upcycle_session"

// session 持有一个浏览器会话的凭据状态。mu 保证同一会话的请求串行执行。
type session struct {
	id    string
	mu    sync.Mutex
	state generator.State
}

type sessionEntry struct {
	sess     *session
	lastSeen time.Time
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	ttl      time.Duration
	now      func() time.Time
}

func newStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*sessionEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// create starts a session in the initial (not configured) state.
func (s *sessionStore) create() *session {
	sess := &session{id: uuid.NewString(), state: generator.NewState()}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.id] = &sessionEntry{sess: sess, lastSeen: s.now()}
	return sess
}

func (s *sessionStore) get(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if s.now().Sub(e.lastSeen) > s.ttl {
		delete(s.sessions, id)
		return nil, false
	}
	e.lastSeen = s.now()
	return e.sess, true
}

// sweep drops sessions idle for longer than the TTL and reports how many went.
func (s *sessionStore) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	n := 0
	for id, e := range s.sessions {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// run sweeps on every tick until ctx is done.
func (s *sessionStore) run(ctx context.Context, interval time.Duration, onSweep func(int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.sweep(); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}

// session returns the caller's session, creating one and setting the cookie
// when the request has none or it expired.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *session {
	if c, err := r.Cookie(sessionCookieName); err == nil {
		if sess, ok := s.store.get(c.Value); ok {
			return sess
		}
	}
	sess := s.store.create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sess.id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.log.Debug().Str("session", sess.id).Msg("session created")
	return sess
}
