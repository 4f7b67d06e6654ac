package analyses

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, analysis *Analysis) (*Analysis, error)
}
