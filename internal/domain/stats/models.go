package stats

// AreaStats carries the aggregate numbers for one area. Only areas with at
// least one observation exist; empty areas are never emitted.
type AreaStats struct {
	AreaName       string             `json:"area_name"`
	OverallAverage float64            `json:"overall_average"`
	FactorScores   map[string]float64 `json:"factor_scores"`
	TeamScores     map[string]float64 `json:"team_scores"`
}

// RankedArea is one row of the lowest/highest ranking tables.
type RankedArea struct {
	Area    string  `json:"area"`
	Average float64 `json:"average"`
	Range   string  `json:"range"`
}

// Result is the full aggregation output. The engagement and satisfaction
// missing flags distinguish "designated area had no data" from a true zero,
// which a 1-5 scale cannot produce anyway.
type Result struct {
	Engagement          float64      `json:"engagement"`
	Satisfaction        float64      `json:"satisfaction"`
	EngagementMissing   bool         `json:"engagement_missing"`
	SatisfactionMissing bool         `json:"satisfaction_missing"`
	Lowest3             []RankedArea `json:"lowest3"`
	Highest3            []RankedArea `json:"highest3"`
	DetailedAreas       []AreaStats  `json:"detailed_areas"`
	Departments         []string     `json:"departments"`
}

// Options names the two areas whose overall averages become the headline
// scores.
type Options struct {
	EngagementArea   string
	SatisfactionArea string
}

// ScaleRange annotates ranked rows for renderers.
const ScaleRange = "1-5"
