package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"pulse/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) Insert(ctx context.Context, rep Report) (*Report, error) {
	content, err := json.Marshal(rep.Content)
	if err != nil {
		return nil, fmt.Errorf("serialize report content: %w", err)
	}

	err = s.DB.QueryRow(ctx, `
		INSERT INTO reports (id, examination_id, name, description, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`, rep.ID, rep.ExaminationID, rep.Name, rep.Description, content).Scan(&rep.CreatedAt, &rep.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (s *Store) Get(ctx context.Context, id string) (*Report, error) {
	var (
		rep     Report
		content []byte
	)
	err := s.DB.QueryRow(ctx, `
		SELECT id, examination_id, name, COALESCE(description, ''), content, created_at, updated_at
		FROM reports WHERE id = $1
	`, id).Scan(&rep.ID, &rep.ExaminationID, &rep.Name, &rep.Description, &content, &rep.CreatedAt, &rep.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(content, &rep.Content); err != nil {
		return nil, fmt.Errorf("corrupt content for report %s: %w", id, err)
	}
	return &rep, nil
}

// List returns report metadata without content.
func (s *Store) List(ctx context.Context, limit, offset int) ([]Report, error) {
	rows, err := s.DB.Query(ctx, `
		SELECT id, examination_id, name, COALESCE(description, ''), created_at, updated_at
		FROM reports ORDER BY created_at DESC LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []Report
	for rows.Next() {
		var rep Report
		if err := rows.Scan(&rep.ID, &rep.ExaminationID, &rep.Name, &rep.Description, &rep.CreatedAt, &rep.UpdatedAt); err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}
