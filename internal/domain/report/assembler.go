package report

import (
	"fmt"
	"sort"
	"time"

	"pulse/internal/domain/knowledge"
	"pulse/internal/domain/stats"
)

// Fixed section strings of the generated report. The renderer positions
// itself on these fields, not their values, so the copy can evolve freely.
const (
	tocTitle              = "Spis treści"
	teamBreakdownTitle    = "Wyniki w podziale na zespoły"
	orgRecsTitle          = "Rekomendacje organizacyjne"
	businessImpactTitle   = "Wpływ na biznes"
	keyFindingsHeader     = "Kluczowe obserwacje"
	summaryHeader         = "Podsumowanie"
	lowestTitle           = "Najniżej ocenione obszary"
	highestTitle          = "Najwyżej ocenione obszary"
	engagementTitle       = "Zaangażowanie"
	satisfactionTitle     = "Satysfakcja"
	neutralInterpretation = "Brak wystarczających danych dla tego zespołu w tym obszarze."
)

type AssembleOptions struct {
	CompanyName string
	SurveyName  string
	GeneratedAt time.Time
}

// Assemble builds the deterministic report skeleton from aggregated
// statistics and the knowledge base. Missing knowledge entries degrade to
// empty sections; Assemble never fails.
func Assemble(result stats.Result, kb *knowledge.Store, opts AssembleOptions) Skeleton {
	lookup := knowledge.NewLookup(kb)

	detailed := make([]DetailedArea, 0, len(result.DetailedAreas))
	for _, area := range result.DetailedAreas {
		detailed = append(detailed, assembleArea(area, result.Departments, lookup))
	}

	items := []string{"Analiza ogólna", "Najniżej i najwyżej ocenione obszary"}
	for _, area := range result.DetailedAreas {
		items = append(items, area.AreaName)
	}
	items = append(items, "Wskazówki dla liderów")

	return Skeleton{
		TitlePage: TitlePage{
			CompanyName: opts.CompanyName,
			ReportTitle: fmt.Sprintf("Raport zaangażowania i satysfakcji pracowników — %s", opts.SurveyName),
		},
		TableOfContents: TableOfContents{Title: tocTitle, Items: items},
		OverallAnalysis: OverallAnalysis{
			Engagement:   headline(engagementTitle, knowledge.AreaEngagement, result.Engagement, result.EngagementMissing, lookup),
			Satisfaction: headline(satisfactionTitle, knowledge.AreaSatisfaction, result.Satisfaction, result.SatisfactionMissing, lookup),
			TopScores: TopScores{
				Lowest:  RankedBlock{Title: lowestTitle, Data: result.Lowest3},
				Highest: RankedBlock{Title: highestTitle, Data: result.Highest3},
			},
		},
		DetailedAreas:    detailed,
		LeaderGuidelines: leaderGuidelines(result, lookup),
		Metadata: Metadata{
			ReportType:  "ENGAGEMENT",
			GeneratedAt: opts.GeneratedAt.UTC().Format("2006-01-02"),
			Version:     "1.0",
			SurveyName:  opts.SurveyName,
		},
	}
}

func headline(title, entryName string, score float64, missing bool, lookup *knowledge.Lookup) HeadlineScore {
	h := HeadlineScore{
		OverallScore:    score,
		Title:           title,
		Missing:         missing,
		Recommendations: []string{},
	}
	if missing {
		return h
	}
	entry, ok := lookup.Find(entryName)
	if !ok {
		return h
	}
	analysis := knowledge.Resolve(entry, score)
	h.Level = analysis.Level
	h.Definition = analysis.Definition
	h.Recommendations = analysis.Recommendations
	h.LinkedIndicators = analysis.LinkedIndicators
	return h
}

// factorExtremes returns the weakest and strongest factor of an area. Ties
// break on name so assembly stays deterministic.
func factorExtremes(scores map[string]float64) (weakest, strongest string) {
	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if weakest == "" || scores[name] < scores[weakest] {
			weakest = name
		}
		if strongest == "" || scores[name] > scores[strongest] {
			strongest = name
		}
	}
	return weakest, strongest
}

func assembleArea(area stats.AreaStats, departments []string, lookup *knowledge.Lookup) DetailedArea {
	weakest, strongest := factorExtremes(area.FactorScores)

	var weakestEntry *knowledge.Entry
	if weakest != "" {
		weakestEntry, _ = lookup.Find(weakest)
	}

	summary := CompanySummary{
		Title:              area.AreaName,
		OverallAverageText: fmt.Sprintf("Średnia ogólna: %.2f / 5", area.OverallAverage),
		SubAreasBreakdown:  subAreas(area.FactorScores),
		KeyFindingsHeader:  keyFindingsHeader,
		KeyFindingsPoints:  keyFindings(area, weakest, strongest),
		SummaryHeader:      summaryHeader,
	}

	recommendations := RecommendationSection{Title: orgRecsTitle, Blocks: []RecommendationBlock{}}
	impact := ImpactSection{Title: businessImpactTitle, Points: []string{}}

	if weakestEntry != nil {
		analysis := knowledge.Resolve(weakestEntry, area.FactorScores[weakest])
		summary.SummaryParagraph = analysis.Definition
		if points := dedupe(analysis.Recommendations); len(points) > 0 {
			recommendations.Blocks = append(recommendations.Blocks, RecommendationBlock{Title: weakest, Points: points})
		}
		if points := knowledge.SplitPoints(weakestEntry.BusinessImpact); len(points) > 0 {
			impact.Points = points
		}
	}

	return DetailedArea{
		AreaName:                      area.AreaName,
		OverallAverage:                area.OverallAverage,
		FactorScores:                  area.FactorScores,
		TeamScores:                    area.TeamScores,
		CompanySummary:                summary,
		TeamBreakdown:                 teamBreakdown(area, departments, weakestEntry),
		OrganizationalRecommendations: recommendations,
		BusinessImpact:                impact,
	}
}

func subAreas(scores map[string]float64) []SubArea {
	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	// Highest first; ties alphabetical.
	sort.Slice(names, func(i, j int) bool {
		if scores[names[i]] != scores[names[j]] {
			return scores[names[i]] > scores[names[j]]
		}
		return names[i] < names[j]
	})

	subs := make([]SubArea, 0, len(names))
	for _, name := range names {
		subs = append(subs, SubArea{
			Name:  name,
			Value: fmt.Sprintf("%.2f", scores[name]),
			Score: fmt.Sprintf("%d/5", knowledge.ResolveLevel(scores[name])),
		})
	}
	return subs
}

func keyFindings(area stats.AreaStats, weakest, strongest string) []string {
	if weakest == "" {
		return []string{}
	}
	findings := []string{
		fmt.Sprintf("Najniżej oceniony czynnik: %s (%.2f / 5).", weakest, area.FactorScores[weakest]),
	}
	if strongest != weakest {
		findings = append(findings,
			fmt.Sprintf("Najwyżej oceniony czynnik: %s (%.2f / 5).", strongest, area.FactorScores[strongest]))
	}
	return findings
}

// teamBreakdown emits one row per known department, even without
// observations in the area; downstream tables are fixed-width by the
// department list.
func teamBreakdown(area stats.AreaStats, departments []string, weakestEntry *knowledge.Entry) TeamBreakdown {
	rows := make([]TeamRow, 0, len(departments))
	for _, department := range departments {
		score, scored := area.TeamScores[department]
		row := TeamRow{
			Team:            department,
			Score:           score,
			Interpretation:  neutralInterpretation,
			Recommendations: []string{},
		}
		if scored && weakestEntry != nil {
			analysis := knowledge.Resolve(weakestEntry, score)
			if analysis.Definition != "" {
				row.Interpretation = analysis.Definition
			}
			row.Recommendations = analysis.Recommendations
		}
		rows = append(rows, row)
	}

	return TeamBreakdown{
		Title:        teamBreakdownTitle,
		TableHeaders: []string{"Zespół", "Wynik", "Interpretacja", "Rekomendacje"},
		Data:         rows,
	}
}

// leaderGuidelines builds per-department START/CONTINUE lists from the
// department's two weakest and two strongest areas. STOP and WELCOME stay
// empty for the narrative collaborator.
func leaderGuidelines(result stats.Result, lookup *knowledge.Lookup) []LeaderGuideline {
	guidelines := make([]LeaderGuideline, 0, len(result.Departments))

	for _, department := range result.Departments {
		type scored struct {
			area  stats.AreaStats
			score float64
		}
		var areas []scored
		for _, area := range result.DetailedAreas {
			if score, ok := area.TeamScores[department]; ok {
				areas = append(areas, scored{area: area, score: score})
			}
		}
		sort.SliceStable(areas, func(i, j int) bool { return areas[i].score < areas[j].score })

		guideline := LeaderGuideline{
			Department: department,
			Start:      []string{},
			Stop:       []string{},
			Continue:   []string{},
			Welcome:    []string{},
		}

		for i := 0; i < len(areas) && i < 2; i++ {
			weakest, _ := factorExtremes(areas[i].area.FactorScores)
			if weakest == "" {
				continue
			}
			if entry, ok := lookup.Find(weakest); ok {
				analysis := knowledge.Resolve(entry, areas[i].score)
				guideline.Start = append(guideline.Start, analysis.Recommendations...)
			}
		}
		guideline.Start = dedupe(guideline.Start)

		for i := 0; i < len(areas) && i < 2; i++ {
			area := areas[len(areas)-1-i].area
			guideline.Continue = append(guideline.Continue,
				fmt.Sprintf("Kontynuuj dobre praktyki w obszarze: %s.", area.AreaName))
		}

		guidelines = append(guidelines, guideline)
	}

	return guidelines
}

func dedupe(points []string) []string {
	seen := make(map[string]bool, len(points))
	out := make([]string, 0, len(points))
	for _, point := range points {
		if point == "" || seen[point] {
			continue
		}
		seen[point] = true
		out = append(out, point)
	}
	return out
}
