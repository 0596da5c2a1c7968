package report

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"pulse/internal/domain/examination"
	"pulse/internal/domain/knowledge"
	"pulse/internal/domain/stats"
	"pulse/internal/domain/survey"
	"pulse/internal/platform/narrative"
)

type Service struct {
	reports      *Store
	examinations *examination.Store
	kb           *knowledge.Store
	taxonomy     survey.Taxonomy
	mapper       survey.HeaderMapper
	generator    narrative.Generator
	statsOpts    stats.Options
	companyName  string
	now          func() time.Time
}

type ServiceConfig struct {
	Reports      *Store
	Examinations *examination.Store
	KB           *knowledge.Store
	Taxonomy     survey.Taxonomy
	Mapper       survey.HeaderMapper
	Generator    narrative.Generator
	StatsOptions stats.Options
	CompanyName  string
}

func NewService(cfg ServiceConfig) *Service {
	return &Service{
		reports:      cfg.Reports,
		examinations: cfg.Examinations,
		kb:           cfg.KB,
		taxonomy:     cfg.Taxonomy,
		mapper:       cfg.Mapper,
		generator:    cfg.Generator,
		statsOpts:    cfg.StatsOptions,
		companyName:  cfg.CompanyName,
		now:          time.Now,
	}
}

// Create runs the full pipeline for one examination: normalize, aggregate,
// assemble, enrich with narrative where available, persist. A knowledge
// base load failure aborts the report; narrative failures only cost prose.
func (s *Service) Create(ctx context.Context, examinationID, name, description string) (*Report, error) {
	exam, err := s.examinations.Get(ctx, examinationID)
	if err != nil {
		if err == examination.ErrNotFound {
			return nil, ErrExaminationNotFound
		}
		return nil, err
	}

	if err := s.kb.Load(); err != nil {
		return nil, fmt.Errorf("report %s: %w", name, err)
	}

	mapping, err := s.mapper.MapHeaders(exam.Headers, sampleRows(exam.Rows, 5))
	if err != nil {
		return nil, fmt.Errorf("map headers: %w", err)
	}

	respondents := survey.Normalize(exam.Rows, mapping, s.taxonomy)
	if len(respondents) == 0 {
		return nil, ErrNoRespondents
	}

	result := stats.Aggregate(respondents, s.statsOpts)

	skeleton := Assemble(result, s.kb, AssembleOptions{
		CompanyName: s.companyName,
		SurveyName:  exam.Name,
		GeneratedAt: s.now(),
	})
	s.fillNarrative(ctx, &skeleton, result)

	rep := Report{
		ID:            uuid.NewString(),
		ExaminationID: exam.ID,
		Name:          name,
		Description:   description,
		Content:       skeleton,
	}
	stored, err := s.reports.Insert(ctx, rep)
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// fillNarrative is best effort: each call is independent and a failure
// leaves the deterministic skeleton untouched.
func (s *Service) fillNarrative(ctx context.Context, skeleton *Skeleton, result stats.Result) {
	if s.generator == nil {
		return
	}

	insights, err := s.generator.Insights(ctx, result)
	if err != nil {
		log.Printf("narrative insights failed: %v", err)
	} else {
		skeleton.OverallAnalysis.TopScores.Lowest.Insight = insights.LowestInsight
		skeleton.OverallAnalysis.TopScores.Highest.Insight = insights.HighestInsight
	}

	for i := range skeleton.LeaderGuidelines {
		guideline := &skeleton.LeaderGuidelines[i]
		additions, err := s.generator.LeaderAdditions(ctx, guideline.Department, result)
		if err != nil {
			log.Printf("narrative leader additions for %q failed: %v", guideline.Department, err)
			continue
		}
		if len(additions.Stop) > 0 {
			guideline.Stop = additions.Stop
		}
		if len(additions.Welcome) > 0 {
			guideline.Welcome = additions.Welcome
		}
	}
}

func (s *Service) Get(ctx context.Context, id string) (*Report, error) {
	return s.reports.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]Report, error) {
	return s.reports.List(ctx, limit, offset)
}

func sampleRows(rows []survey.ParsedRow, n int) []survey.ParsedRow {
	if len(rows) <= n {
		return rows
	}
	return rows[:n]
}
