package survey

// ParsedRow is one raw upload row: trimmed column header -> cell value.
// Values come from CSV as strings but upstream parsers may deliver numbers
// or booleans, so cells stay loosely typed until normalization.
type ParsedRow map[string]any

// Observation is one respondent's answer to one survey question, resolved
// against the factor taxonomy. Score is always on the 1-5 scale; ScaleMax
// records the scale the raw answer arrived on.
type Observation struct {
	AreaID       string  `json:"area_id"`
	AreaNamePL   string  `json:"area_name_pl"`
	AreaNameEN   string  `json:"area_name_en"`
	FactorID     string  `json:"factor_id"`
	FactorNamePL string  `json:"factor_name_pl"`
	FactorNameEN string  `json:"factor_name_en"`
	Question     string  `json:"question"`
	Score        float64 `json:"score"`
	ScaleMax     int     `json:"scale_max"`
}

// Respondent is one survey participant. Respondents are built once per
// upload and never mutated afterwards.
type Respondent struct {
	ID      string            `json:"id"`
	Details map[string]string `json:"details"`
	Scores  []Observation     `json:"scores"`
}

// Department returns the respondent's department, or "" when unknown.
func (r Respondent) Department() string {
	return r.Details[DetailDepartment]
}

// Detail keys populated by the normalizer.
const (
	DetailDepartment  = "department"
	DetailTenureYears = "tenure_years"
)

// HeaderMapping assigns each raw column header a target: a factor ID, one
// of the detail keys above, or "" for columns to ignore.
type HeaderMapping map[string]string

// HeaderMapper is the collaborator that maps survey columns onto the
// taxonomy. The production mapper may sit on an LLM; the core only depends
// on this interface and tests supply fixed mappings.
type HeaderMapper interface {
	MapHeaders(headers []string, sample []ParsedRow) (HeaderMapping, error)
}
