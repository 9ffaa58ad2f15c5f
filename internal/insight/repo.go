package insight

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSnapshotNotFound   = errors.New("snapshot not found")
	ErrEvaluationNotFound = errors.New("evaluation not found")
)

// defaultHistoryLimit caps evaluation listings when the caller does
// not ask for a specific page size.
const defaultHistoryLimit = 50

// Store persists student snapshots and their evaluations.
type Store interface {
	PutSnapshot(studentID string, data StudentData) (Snapshot, error)
	LatestSnapshot(studentID string) (Snapshot, error)
	PutEvaluation(e Evaluation) (Evaluation, error)
	LatestEvaluation(studentID string) (Evaluation, error)
	ListEvaluations(studentID string, limit int) ([]Evaluation, error)
}

type memoryStore struct {
	mu          sync.RWMutex
	snapshots   map[string][]Snapshot   // studentID -> append order
	evaluations map[string][]Evaluation // studentID -> append order
}

// NewInMemoryStore is the offline/dev store and the fake used in tests.
func NewInMemoryStore() Store {
	return &memoryStore{
		snapshots:   map[string][]Snapshot{},
		evaluations: map[string][]Evaluation{},
	}
}

func (m *memoryStore) PutSnapshot(studentID string, data StudentData) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := Snapshot{
		ID:        uuid.NewString(),
		StudentID: studentID,
		Data:      data,
		CreatedAt: time.Now().Unix(),
	}
	m.snapshots[studentID] = append(m.snapshots[studentID], snap)
	return snap, nil
}

func (m *memoryStore) LatestSnapshot(studentID string) (Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snaps := m.snapshots[studentID]
	if len(snaps) == 0 {
		return Snapshot{}, ErrSnapshotNotFound
	}
	return snaps[len(snaps)-1], nil
}

func (m *memoryStore) PutEvaluation(e Evaluation) (Evaluation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt == 0 {
		e.CreatedAt = time.Now().Unix()
	}
	m.evaluations[e.StudentID] = append(m.evaluations[e.StudentID], e)
	return e, nil
}

func (m *memoryStore) LatestEvaluation(studentID string) (Evaluation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	evals := m.evaluations[studentID]
	if len(evals) == 0 {
		return Evaluation{}, ErrEvaluationNotFound
	}
	return evals[len(evals)-1], nil
}

func (m *memoryStore) ListEvaluations(studentID string, limit int) ([]Evaluation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	evals := m.evaluations[studentID]
	out := make([]Evaluation, 0, len(evals))
	// newest first
	for i := len(evals) - 1; i >= 0; i-- {
		out = append(out, evals[i])
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
