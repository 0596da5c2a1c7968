package examination

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Upload parses a survey CSV and persists it as a new examination. A file
// that parses but contains no data rows is rejected, since a report over it
// could never have respondents.
func (s *Service) Upload(ctx context.Context, name, description, fileName string, file io.Reader) (*Examination, error) {
	headers, rows, err := ParseCSV(file)
	if err != nil {
		return nil, fmt.Errorf("parse upload: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("upload contains no data rows")
	}

	exam := Examination{
		ID:               uuid.NewString(),
		Name:             name,
		Description:      description,
		Type:             TypeEngagement,
		Status:           StatusProcessed,
		SourceFileName:   fileName,
		Headers:          headers,
		Rows:             rows,
		RespondentsCount: len(rows),
	}
	if err := s.store.Insert(ctx, exam); err != nil {
		return nil, err
	}
	return &exam, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Examination, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]Examination, error) {
	return s.store.List(ctx, limit, offset)
}
