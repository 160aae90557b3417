package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/VigilAI/VigilGate/pkg/domain/record"
)

// MemoryRepository keeps analysis records in process memory. It is the
// default store when no database is configured; records do not survive a
// restart.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]record.AnalysisRecord
}

func NewMemoryRepository() record.Repository {
	return &MemoryRepository{
		records: make(map[uuid.UUID]record.AnalysisRecord),
	}
}

func (r *MemoryRepository) Save(_ context.Context, rec *record.AnalysisRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	r.records[rec.ID] = *rec
	return nil
}

func (r *MemoryRepository) Get(_ context.Context, id uuid.UUID) (*record.AnalysisRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, record.NewNotFoundError(id)
	}
	return &rec, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]record.AnalysisRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]record.AnalysisRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
