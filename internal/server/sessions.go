package server

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	astar "github.com/pdrpinto/gridastar"
)

var (
	errSessionNotFound = errors.New("session not found")
	errTooManySessions = errors.New("too many sessions")
)

type session struct {
	mu       sync.Mutex
	stepper  *astar.Stepper
	snapshot astar.StepSnapshot
}

// step advances the session and describes it.
func (s *session) step(id string) StepResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = s.stepper.Step()
	return s.describe(id)
}

func (s *session) view(id string) StepResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.describe(id)
}

func (s *session) describe(id string) StepResponse {
	resp := StepResponse{
		ID:      id,
		Step:    s.snapshot.StepIndex,
		Current: s.snapshot.Current.Point(),
		Open:    s.snapshot.OpenCount,
		Status:  s.stepper.Status().String(),
		Done:    s.stepper.Done(),
		Found:   s.stepper.Status() == astar.Succeeded,
		Grid:    s.stepper.Grid(),
	}
	if resp.Found {
		if result, err := s.stepper.Result(); err == nil {
			resp.Cost = result.Cost
			resp.Route = result.Route
		}
	}
	return resp
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	limit    int
}

func newSessionStore(limit int) *sessionStore {
	return &sessionStore{sessions: make(map[string]*session), limit: limit}
}

func (st *sessionStore) create(stepper *astar.Stepper) (string, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if len(st.sessions) >= st.limit {
		return "", errTooManySessions
	}
	id := uuid.NewString()
	st.sessions[id] = &session{stepper: stepper}
	return id, nil
}

func (st *sessionStore) get(id string) (*session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, errSessionNotFound
	}
	return s, nil
}

func (st *sessionStore) remove(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return errSessionNotFound
	}
	delete(st.sessions, id)
	return nil
}

func (st *sessionStore) len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
