package examination

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

func (s *Store) Insert(ctx context.Context, exam Examination) error {
	headers, err := json.Marshal(exam.Headers)
	if err != nil {
		return err
	}
	rows, err := json.Marshal(exam.Rows)
	if err != nil {
		return err
	}

	_, err = s.DB.Exec(ctx, `
		INSERT INTO examinations (id, name, description, type, status, source_file_name, headers, extracted_data, respondents_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, exam.ID, exam.Name, exam.Description, exam.Type, exam.Status, exam.SourceFileName, headers, rows, exam.RespondentsCount)
	return err
}

func (s *Store) Get(ctx context.Context, id string) (*Examination, error) {
	var (
		exam    Examination
		headers []byte
		rows    []byte
	)
	err := s.DB.QueryRow(ctx, `
		SELECT id, name, COALESCE(description, ''), type, status, COALESCE(source_file_name, ''),
		       headers, extracted_data, respondents_count, created_at, updated_at
		FROM examinations WHERE id = $1
	`, id).Scan(&exam.ID, &exam.Name, &exam.Description, &exam.Type, &exam.Status, &exam.SourceFileName,
		&headers, &rows, &exam.RespondentsCount, &exam.CreatedAt, &exam.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(headers, &exam.Headers); err != nil {
		return nil, fmt.Errorf("corrupt headers for examination %s: %w", id, err)
	}
	if err := json.Unmarshal(rows, &exam.Rows); err != nil {
		return nil, fmt.Errorf("corrupt extracted data for examination %s: %w", id, err)
	}
	return &exam, nil
}

// List returns examination metadata without the raw rows.
func (s *Store) List(ctx context.Context, limit, offset int) ([]Examination, error) {
	rows, err := s.DB.Query(ctx, `
		SELECT id, name, COALESCE(description, ''), type, status, COALESCE(source_file_name, ''),
		       respondents_count, created_at, updated_at
		FROM examinations ORDER BY created_at DESC LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []Examination
	for rows.Next() {
		var exam Examination
		if err := rows.Scan(&exam.ID, &exam.Name, &exam.Description, &exam.Type, &exam.Status,
			&exam.SourceFileName, &exam.RespondentsCount, &exam.CreatedAt, &exam.UpdatedAt); err != nil {
			return nil, err
		}
		exams = append(exams, exam)
	}
	return exams, rows.Err()
}

func (s *Store) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := s.DB.Exec(ctx, "UPDATE examinations SET status = $1, updated_at = now() WHERE id = $2", status, id)
	return err
}
