package reports

import (
	"context"
	"sync"
	"time"
)

type InMemoryRepository struct {
	mu      sync.RWMutex
	reports []*Report
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(ctx context.Context, report *Report) (*Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	report.CreatedAt = time.Now()
	copied := *report
	r.reports = append(r.reports, &copied)
	return report, nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]*Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Report
	for i := len(r.reports) - 1; i >= 0; i-- {
		if r.reports[i].UserID == userID {
			copied := *r.reports[i]
			result = append(result, &copied)
		}
	}
	return result, nil
}
