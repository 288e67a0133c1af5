// Package store provides thread-safe in-memory storage of evaluation history.
package store

import (
	"fmt"
	"sync"
	"time"
)

// Evaluation is one recorded run of the expression pipeline.
type Evaluation struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Result     string    `json:"result,omitempty"`
	ErrorKind  string    `json:"errorKind,omitempty"`
	Error      string    `json:"error,omitempty"`
	CreateTime time.Time `json:"createTime"`
}

// OK reports whether the evaluation produced a result.
func (e *Evaluation) OK() bool {
	return e.Error == ""
}

// Store is a thread-safe in-memory history of evaluations.
type Store struct {
	mu      sync.RWMutex
	evals   map[string]*Evaluation
	order   []string // IDs in insertion order
	counter int64
}

// New creates a new empty store.
func New() *Store {
	return &Store{evals: make(map[string]*Evaluation)}
}

// RecordSuccess stores a successful evaluation and returns the record.
func (s *Store) RecordSuccess(expression, result string) *Evaluation {
	return s.record(&Evaluation{Expression: expression, Result: result})
}

// RecordFailure stores a failed evaluation and returns the record.
func (s *Store) RecordFailure(expression, kind, message string) *Evaluation {
	return s.record(&Evaluation{Expression: expression, ErrorKind: kind, Error: message})
}

func (s *Store) record(e *Evaluation) *Evaluation {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	e.ID = fmt.Sprintf("eval-%d", s.counter)
	e.CreateTime = time.Now()
	s.evals[e.ID] = e
	s.order = append(s.order, e.ID)
	return e
}

// Get retrieves an evaluation by ID.
func (s *Store) Get(id string) (*Evaluation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.evals[id]
	if !ok {
		return nil, fmt.Errorf("evaluation '%s' not found", id)
	}
	return e, nil
}

// List returns all evaluations, newest first.
func (s *Store) List() []*Evaluation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Evaluation, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		result = append(result, s.evals[s.order[i]])
	}
	return result
}

// Clear removes all history. ID generation keeps counting so cleared IDs are
// never reused.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evals = make(map[string]*Evaluation)
	s.order = nil
}

// Len returns the number of stored evaluations.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.evals)
}
