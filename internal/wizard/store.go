package wizard

import (
	"sync"

	"github.com/gofrs/uuid"
)

// Store keeps the live sessions in memory. Sessions exist only for the
// duration of the process.
type Store struct {
	mu        sync.RWMutex
	sessions  map[uuid.UUID]*Session
	submitter Submitter
}

func NewStore(submitter Submitter) *Store {
	return &Store{
		sessions:  map[uuid.UUID]*Session{},
		submitter: submitter,
	}
}

// Create starts a new session and registers it.
func (st *Store) Create() (*Session, error) {
	s, err := NewSession(st.submitter)
	if err != nil {
		return nil, err
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s, nil
}

// Get returns the session with the given id, if it exists.
func (st *Store) Get(id uuid.UUID) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}
