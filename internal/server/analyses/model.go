package analyses

import (
	"time"

	"github.com/truthlens/truthlens/internal/api"
)

type Analysis struct {
	ID         string
	UserID     string
	StorageKey string
	Filename   string
	Verdict    api.Verdict
	Confidence float64
	SHA256     string
	CreatedAt  time.Time
}
