package stats

import (
	"math"
	"sort"

	"pulse/internal/domain/survey"
	"pulse/internal/platform/textnorm"
)

type accumulator struct {
	sum   float64
	count int
}

func (a *accumulator) add(v float64) {
	a.sum += v
	a.count++
}

func (a *accumulator) mean() float64 {
	return a.sum / float64(a.count)
}

type areaAcc struct {
	namePL  string
	nameEN  string
	overall accumulator

	factorOrder []string
	factors     map[string]*accumulator

	teamOrder []string
	teams     map[string]*accumulator
}

// Aggregate computes per-area and per-department statistics from canonical
// respondents. It is a pure function: the same input always produces the
// same output, including ordering (areas, factors and departments keep
// first-seen order).
func Aggregate(respondents []survey.Respondent, opts Options) Result {
	var (
		areaOrder []string
		areas     = make(map[string]*areaAcc)
		deptOrder []string
		deptSeen  = make(map[string]bool)
	)

	for _, respondent := range respondents {
		department := respondent.Department()
		if department != "" && !deptSeen[department] {
			deptSeen[department] = true
			deptOrder = append(deptOrder, department)
		}

		for _, obs := range respondent.Scores {
			name := obs.AreaNamePL
			if name == "" {
				name = obs.AreaNameEN
			}
			if name == "" {
				continue
			}

			area, ok := areas[name]
			if !ok {
				area = &areaAcc{
					namePL:  name,
					nameEN:  obs.AreaNameEN,
					factors: make(map[string]*accumulator),
					teams:   make(map[string]*accumulator),
				}
				areas[name] = area
				areaOrder = append(areaOrder, name)
			}

			area.overall.add(obs.Score)

			factorName := obs.FactorNamePL
			if factorName == "" {
				factorName = obs.FactorNameEN
			}
			factor, ok := area.factors[factorName]
			if !ok {
				factor = &accumulator{}
				area.factors[factorName] = factor
				area.factorOrder = append(area.factorOrder, factorName)
			}
			factor.add(obs.Score)

			// Team score is the mean over all raw observations in the area
			// belonging to the department, not a mean of per-factor means.
			if department != "" {
				team, ok := area.teams[department]
				if !ok {
					team = &accumulator{}
					area.teams[department] = team
					area.teamOrder = append(area.teamOrder, department)
				}
				team.add(obs.Score)
			}
		}
	}

	detailed := make([]AreaStats, 0, len(areaOrder))
	for _, name := range areaOrder {
		area := areas[name]

		factorScores := make(map[string]float64, len(area.factorOrder))
		for _, factorName := range area.factorOrder {
			factorScores[factorName] = round2(area.factors[factorName].mean())
		}

		teamScores := make(map[string]float64, len(area.teamOrder))
		for _, department := range area.teamOrder {
			teamScores[department] = round2(area.teams[department].mean())
		}

		detailed = append(detailed, AreaStats{
			AreaName:       name,
			OverallAverage: round2(area.overall.mean()),
			FactorScores:   factorScores,
			TeamScores:     teamScores,
		})
	}

	lowest, highest := rank(detailed)

	engagement, engagementMissing := headlineScore(areas, areaOrder, opts.EngagementArea)
	satisfaction, satisfactionMissing := headlineScore(areas, areaOrder, opts.SatisfactionArea)

	if deptOrder == nil {
		deptOrder = []string{}
	}

	return Result{
		Engagement:          engagement,
		Satisfaction:        satisfaction,
		EngagementMissing:   engagementMissing,
		SatisfactionMissing: satisfactionMissing,
		Lowest3:             lowest,
		Highest3:            highest,
		DetailedAreas:       detailed,
		Departments:         deptOrder,
	}
}

func rank(detailed []AreaStats) (lowest, highest []RankedArea) {
	ranked := make([]RankedArea, 0, len(detailed))
	for _, area := range detailed {
		ranked = append(ranked, RankedArea{Area: area.AreaName, Average: area.OverallAverage, Range: ScaleRange})
	}

	ascending := make([]RankedArea, len(ranked))
	copy(ascending, ranked)
	sort.SliceStable(ascending, func(i, j int) bool { return ascending[i].Average < ascending[j].Average })

	n := len(ascending)
	if n > 3 {
		n = 3
	}
	lowest = append([]RankedArea{}, ascending[:n]...)

	descending := make([]RankedArea, len(ranked))
	copy(descending, ranked)
	sort.SliceStable(descending, func(i, j int) bool { return descending[i].Average > descending[j].Average })
	highest = append([]RankedArea{}, descending[:n]...)

	return lowest, highest
}

// headlineScore pulls the overall average of the designated area. When the
// area has no data the score is 0 and explicitly flagged missing.
func headlineScore(areas map[string]*areaAcc, order []string, designated string) (float64, bool) {
	if designated == "" {
		return 0, true
	}
	want := textnorm.Fold(designated)
	for _, name := range order {
		area := areas[name]
		if textnorm.Fold(area.namePL) == want || textnorm.Fold(area.nameEN) == want {
			return round2(area.overall.mean()), false
		}
	}
	return 0, true
}

// round2 rounds half up to two decimals. Rounding happens once, at output;
// sums are never rounded mid-flight.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
