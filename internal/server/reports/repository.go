package reports

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, report *Report) (*Report, error)
	ListByUser(ctx context.Context, userID string) ([]*Report, error)
}
