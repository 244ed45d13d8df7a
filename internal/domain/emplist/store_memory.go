package emplist

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"emppayroll/internal/domain/employee"
)

// MemoryStore keeps records in insertion order for development and tests.
type MemoryStore struct {
	mu    sync.RWMutex
	order []string
	rows  map[string]employee.Employee
	newID func() string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: map[string]employee.Employee{}, newID: uuid.NewString}
}

func (s *MemoryStore) List(_ context.Context) ([]employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]employee.Employee, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.rows[id].Clone())
	}
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	emp, ok := s.rows[id]
	if !ok {
		return employee.Employee{}, ErrNotFound
	}
	return emp.Clone(), nil
}

func (s *MemoryStore) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	emp = emp.Clone()
	emp.ID = s.newID()
	s.mu.Lock()
	s.rows[emp.ID] = emp
	s.order = append(s.order, emp.ID)
	s.mu.Unlock()
	return emp.Clone(), nil
}

func (s *MemoryStore) Update(_ context.Context, id string, emp employee.Employee) (employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return employee.Employee{}, ErrNotFound
	}
	emp = emp.Clone()
	emp.ID = id
	s.rows[id] = emp
	return emp.Clone(), nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return ErrNotFound
	}
	delete(s.rows, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}
