package analyses

import (
	"context"
	"database/sql"
	"fmt"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, analysis *Analysis) (*Analysis, error) {

	query :=
		`INSERT INTO analyses (id, user_id, storage_key, filename, verdict, confidence, sha256)
         VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		analysis.ID, analysis.UserID, analysis.StorageKey, analysis.Filename,
		string(analysis.Verdict), analysis.Confidence, analysis.SHA256).Scan(&analysis.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return analysis, nil
}
