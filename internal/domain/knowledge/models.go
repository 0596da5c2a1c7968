package knowledge

// Scope distinguishes the two knowledge base variants: the factor table
// (czynniki.csv) and the area-level engagement/satisfaction table.
type Scope string

const (
	ScopeFactor Scope = "factor"
	ScopeArea   Scope = "area"
)

// Canonical names of the two headline entries in the area-scoped table.
const (
	AreaEngagement   = "Zaangażowanie"
	AreaSatisfaction = "Satysfakcja"
)

type Level struct {
	Label           string   `json:"label"`
	Definition      string   `json:"definition"`
	Recommendations []string `json:"recommendations"`
}

type Entry struct {
	Name  string `json:"name"`
	Scope Scope  `json:"scope"`

	// Area is the parent grouping for factor-scoped entries.
	Area       string `json:"area,omitempty"`
	Definition string `json:"definition,omitempty"`

	// GeneralDescription covers the min/max ends of the scale for
	// area-scoped entries.
	GeneralDescription string `json:"general_description,omitempty"`

	// Levels is indexed by level-1.
	Levels [5]Level `json:"levels"`

	BusinessImpact   string `json:"business_impact,omitempty"`
	EmployeeAttitude string `json:"employee_attitude,omitempty"`
	LinkedIndicators string `json:"linked_indicators,omitempty"`

	// Recommendations is the generic free-text block used as a fallback
	// when a level has no dedicated recommendation list.
	Recommendations string `json:"recommendations,omitempty"`
}

// LevelAt returns the level block for a 1-5 level.
func (e *Entry) LevelAt(level int) Level {
	if level < 1 {
		level = 1
	}
	if level > 5 {
		level = 5
	}
	return e.Levels[level-1]
}
