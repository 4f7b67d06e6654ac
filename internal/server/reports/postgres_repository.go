package reports

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

func (r *PostgresRepository) Create(ctx context.Context, report *Report) (*Report, error) {

	query :=
		`INSERT INTO reports (id, user_id, source, url, message)
         VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		report.ID, report.UserID, string(report.Source), report.URL, report.Message).Scan(&report.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return report, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*Report, error) {

	query :=
		`SELECT id, user_id, source, url, message, created_at FROM reports
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	var result []*Report
	for rows.Next() {
		report := &Report{}
		if err := rows.Scan(&report.ID, &report.UserID, &report.Source, &report.URL, &report.Message, &report.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %v", err)
		}
		result = append(result, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %v", err)
	}

	return result, nil
}
