package storage

import (
	"sync"

	"max.ks1230/fx-converter/internal/model/converter"
)

type session struct {
	mu    sync.Mutex
	state *converter.State
}

// InMemStorage keeps one converter state per user for the life of the
// process.
type InMemStorage struct {
	mu       sync.Mutex
	sessions map[int64]*session
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{sessions: make(map[int64]*session)}
}

// Checkout returns the user's state, creating it with init on first use.
// The state stays locked for the caller until release is called.
func (s *InMemStorage) Checkout(id int64, init func() *converter.State) (st *converter.State, release func()) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{state: init()}
		s.sessions[id] = sess
	}
	s.mu.Unlock()

	sess.mu.Lock()
	return sess.state, sess.mu.Unlock
}

// Drop closes and forgets the user's state.
func (s *InMemStorage) Drop(id int64) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if ok {
		sess.mu.Lock()
		sess.state.Close()
		sess.mu.Unlock()
	}
}
