package analyses

import (
	"context"
	"sync"
	"time"
)

type InMemoryRepository struct {
	mu       sync.RWMutex
	analyses []*Analysis
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(ctx context.Context, analysis *Analysis) (*Analysis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	analysis.CreatedAt = time.Now()
	copied := *analysis
	r.analyses = append(r.analyses, &copied)
	return analysis, nil
}
