package reports

import (
	"time"

	"github.com/truthlens/truthlens/internal/api"
)

type Report struct {
	ID        string
	UserID    string
	Source    api.ReportSource
	URL       string
	Message   string
	CreatedAt time.Time
}
