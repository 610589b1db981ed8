package server

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hirebyte/hr-assistant/internal/engine"
	"github.com/hirebyte/hr-assistant/internal/i18n"
)

// sessionTTL is how long an idle conversation survives before a later
// request evicts it.
const sessionTTL = 30 * time.Minute

// ErrSessionBusy means another request is mid-turn on the same session.
var ErrSessionBusy = errors.New("session is processing another message")

type session struct {
	state    *engine.ConversationState
	lastSeen time.Time
	busy     bool
}

// sessionStore keeps per-conversation state in memory. Expired sessions are
// evicted lazily on access; there is no background sweeper.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// acquire returns the conversation for id, creating a fresh one when the id
// is empty, unknown or expired. The session stays locked to the caller until
// release; a second acquire in that window fails with ErrSessionBusy.
func (st *sessionStore) acquire(id string, locale i18n.Locale) (string, *engine.ConversationState, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	st.evictExpired(now)

	if id != "" {
		if s, ok := st.sessions[id]; ok {
			if s.busy {
				return id, nil, ErrSessionBusy
			}
			s.busy = true
			s.lastSeen = now
			return id, s.state, nil
		}
	}

	id = uuid.NewString()
	s := &session{
		state:    engine.NewConversation(locale),
		lastSeen: now,
		busy:     true,
	}
	st.sessions[id] = s
	return id, s.state, nil
}

func (st *sessionStore) release(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[id]; ok {
		s.busy = false
		s.lastSeen = st.now()
	}
}

func (st *sessionStore) evictExpired(now time.Time) {
	for id, s := range st.sessions {
		if !s.busy && now.Sub(s.lastSeen) > st.ttl {
			delete(st.sessions, id)
		}
	}
}

func (st *sessionStore) len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
