package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/kernsim/kernsim/runtime/sim"
	"github.com/kernsim/kernsim/service/dao"
)

// Service implements an in-memory, thread-safe archive for completed
// simulation runs.
type Service struct {
	runs map[string]*sim.Run
	mux  sync.RWMutex
}

var _ dao.Service[string, sim.Run] = (*Service)(nil)

// New creates an empty in-memory run archive.
func New() *Service {
	return &Service{runs: map[string]*sim.Run{}}
}

func (s *Service) Save(_ context.Context, run *sim.Run) error {
	if run == nil {
		return dao.ErrNilEntity
	}
	if run.ID == "" {
		return dao.ErrInvalidID
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	if existing, ok := s.runs[run.ID]; ok && existing != nil {
		existing.CopyFrom(run)
	} else {
		s.runs[run.ID] = run
	}
	return nil
}

func (s *Service) Load(_ context.Context, id string) (*sim.Run, error) {
	if id == "" {
		return nil, dao.ErrInvalidID
	}

	s.mux.RLock()
	run, ok := s.runs[id]
	s.mux.RUnlock()

	if !ok {
		return nil, dao.ErrNotFound
	}
	return run, nil
}

func (s *Service) Delete(_ context.Context, id string) error {
	if id == "" {
		return dao.ErrInvalidID
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	if _, ok := s.runs[id]; !ok {
		return dao.ErrNotFound
	}
	delete(s.runs, id)
	return nil
}

func (s *Service) List(_ context.Context) ([]*sim.Run, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	out := make([]*sim.Run, 0, len(s.runs))
	for _, run := range s.runs {
		out = append(out, run)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.Before(out[j].StartedAt) })
	return out, nil
}
