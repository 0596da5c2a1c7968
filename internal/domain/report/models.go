package report

import (
	"time"

	"pulse/internal/domain/stats"
)

// Skeleton is the deterministic, pre-narrative report structure. Its field
// names are a cross-component contract with the rendering layer and the
// narrative collaborator; they must stay stable.
type Skeleton struct {
	TitlePage        TitlePage         `json:"title_page"`
	TableOfContents  TableOfContents   `json:"table_of_contents"`
	OverallAnalysis  OverallAnalysis   `json:"overall_analysis"`
	DetailedAreas    []DetailedArea    `json:"detailed_areas"`
	LeaderGuidelines []LeaderGuideline `json:"leader_guidelines"`
	Metadata         Metadata          `json:"metadata"`
}

type TitlePage struct {
	CompanyName string `json:"company_name"`
	ReportTitle string `json:"report_title"`
}

type TableOfContents struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

type Metadata struct {
	ReportType  string `json:"reportType"`
	GeneratedAt string `json:"generatedAt"`
	Version     string `json:"version"`
	SurveyName  string `json:"surveyName"`
}

type OverallAnalysis struct {
	Engagement   HeadlineScore `json:"engagement"`
	Satisfaction HeadlineScore `json:"satisfaction"`
	TopScores    TopScores     `json:"top_scores"`
}

// HeadlineScore combines the composite score with its knowledge base
// interpretation. Missing marks a designated area that had no data; the
// zero score is then a placeholder, not a measurement.
type HeadlineScore struct {
	OverallScore     float64  `json:"overall_score"`
	Title            string   `json:"title"`
	Missing          bool     `json:"missing,omitempty"`
	Level            int      `json:"level,omitempty"`
	Definition       string   `json:"definition,omitempty"`
	Recommendations  []string `json:"recommendations,omitempty"`
	LinkedIndicators string   `json:"linked_indicators,omitempty"`
}

type TopScores struct {
	Lowest  RankedBlock `json:"lowest"`
	Highest RankedBlock `json:"highest"`
}

// RankedBlock leaves Insight empty for the narrative collaborator.
type RankedBlock struct {
	Title   string             `json:"title"`
	Data    []stats.RankedArea `json:"data"`
	Insight string             `json:"insight"`
}

type DetailedArea struct {
	AreaName                      string                `json:"area_name"`
	OverallAverage                float64               `json:"overall_average"`
	FactorScores                  map[string]float64    `json:"factor_scores"`
	TeamScores                    map[string]float64    `json:"team_scores"`
	CompanySummary                CompanySummary        `json:"company_summary"`
	TeamBreakdown                 TeamBreakdown         `json:"team_breakdown"`
	OrganizationalRecommendations RecommendationSection `json:"organizational_recommendations"`
	BusinessImpact                ImpactSection         `json:"business_impact"`
}

type CompanySummary struct {
	Title              string    `json:"title"`
	OverallAverageText string    `json:"overall_average_text"`
	SubAreasBreakdown  []SubArea `json:"sub_areas_breakdown"`
	KeyFindingsHeader  string    `json:"key_findings_header"`
	KeyFindingsPoints  []string  `json:"key_findings_points"`
	SummaryHeader      string    `json:"summary_header"`
	SummaryParagraph   string    `json:"summary_paragraph"`
}

type SubArea struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Score string `json:"score"`
}

type TeamBreakdown struct {
	Title        string    `json:"title"`
	TableHeaders []string  `json:"table_headers"`
	Data         []TeamRow `json:"data"`
}

type TeamRow struct {
	Team            string   `json:"team"`
	Score           float64  `json:"score"`
	Interpretation  string   `json:"interpretation"`
	Recommendations []string `json:"recommendations"`
}

type RecommendationSection struct {
	Title  string                `json:"title"`
	Blocks []RecommendationBlock `json:"recommendation_blocks"`
}

type RecommendationBlock struct {
	Title  string   `json:"title"`
	Points []string `json:"points"`
}

type ImpactSection struct {
	Title  string   `json:"title"`
	Points []string `json:"points"`
}

type LeaderGuideline struct {
	Department string   `json:"department"`
	Start      []string `json:"start"`
	Stop       []string `json:"stop"`
	Continue   []string `json:"continue"`
	Welcome    []string `json:"welcome"`
}

// Report is the persisted entity: skeleton content plus metadata.
type Report struct {
	ID            string    `json:"id"`
	ExaminationID string    `json:"examinationId"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Content       Skeleton  `json:"content"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
