package stats

import (
	"math/rand"
	"reflect"
	"testing"

	"pulse/internal/domain/survey"
)

func obs(area, factor string, score float64) survey.Observation {
	return survey.Observation{
		AreaID:       area,
		AreaNamePL:   area,
		FactorID:     factor,
		FactorNamePL: factor,
		Score:        score,
		ScaleMax:     5,
	}
}

func respondent(id, department string, scores ...survey.Observation) survey.Respondent {
	details := map[string]string{}
	if department != "" {
		details[survey.DetailDepartment] = department
	}
	return survey.Respondent{ID: id, Details: details, Scores: scores}
}

func TestAggregateScenario(t *testing.T) {
	// Three respondents, two departments; R2 answered on a 0-10 scale and
	// arrives already rescaled by the normalizer.
	respondents := []survey.Respondent{
		respondent("1", "Sales", obs("A", "F1", 4), obs("A", "F2", 2)),
		respondent("2", "Sales", obs("A", "F1", 4.0)),
		respondent("3", "Eng", obs("A", "F1", 2)),
	}

	result := Aggregate(respondents, Options{})

	if len(result.DetailedAreas) != 1 {
		t.Fatalf("expected 1 area, got %d", len(result.DetailedAreas))
	}
	area := result.DetailedAreas[0]
	if area.AreaName != "A" {
		t.Fatalf("unexpected area name: %q", area.AreaName)
	}
	if area.FactorScores["F1"] != 3.33 {
		t.Fatalf("F1 = %v, want 3.33", area.FactorScores["F1"])
	}
	if area.FactorScores["F2"] != 2.0 {
		t.Fatalf("F2 = %v, want 2.0", area.FactorScores["F2"])
	}
	if area.OverallAverage != 3.0 {
		t.Fatalf("overall = %v, want 3.0", area.OverallAverage)
	}
	if area.TeamScores["Sales"] != 3.33 {
		t.Fatalf("Sales = %v, want 3.33", area.TeamScores["Sales"])
	}
	if area.TeamScores["Eng"] != 2.0 {
		t.Fatalf("Eng = %v, want 2.0", area.TeamScores["Eng"])
	}

	if !reflect.DeepEqual(result.Departments, []string{"Sales", "Eng"}) {
		t.Fatalf("departments = %v, want first-seen order", result.Departments)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	result := Aggregate(nil, Options{EngagementArea: "A", SatisfactionArea: "B"})

	if len(result.DetailedAreas) != 0 {
		t.Fatalf("expected no areas, got %v", result.DetailedAreas)
	}
	if len(result.Departments) != 0 {
		t.Fatalf("expected no departments, got %v", result.Departments)
	}
	if len(result.Lowest3) != 0 || len(result.Highest3) != 0 {
		t.Fatalf("expected empty rankings, got %v / %v", result.Lowest3, result.Highest3)
	}
	if result.Engagement != 0 || !result.EngagementMissing {
		t.Fatalf("engagement should be 0 and flagged missing: %v %v", result.Engagement, result.EngagementMissing)
	}
	if result.Satisfaction != 0 || !result.SatisfactionMissing {
		t.Fatalf("satisfaction should be 0 and flagged missing: %v %v", result.Satisfaction, result.SatisfactionMissing)
	}
}

func TestAggregateRanking(t *testing.T) {
	respondents := []survey.Respondent{
		respondent("1", "",
			obs("A", "F", 1), obs("B", "F", 2), obs("C", "F", 3), obs("D", "F", 4), obs("E", "F", 5)),
	}

	result := Aggregate(respondents, Options{})

	if len(result.Lowest3) != 3 || len(result.Highest3) != 3 {
		t.Fatalf("expected 3+3 ranked areas, got %v / %v", result.Lowest3, result.Highest3)
	}
	for i := 1; i < len(result.Lowest3); i++ {
		if result.Lowest3[i-1].Average > result.Lowest3[i].Average {
			t.Fatalf("lowest3 not ascending: %v", result.Lowest3)
		}
	}
	for i := 1; i < len(result.Highest3); i++ {
		if result.Highest3[i-1].Average < result.Highest3[i].Average {
			t.Fatalf("highest3 not descending: %v", result.Highest3)
		}
	}
	if result.Lowest3[0].Area != "A" || result.Highest3[0].Area != "E" {
		t.Fatalf("unexpected ranking endpoints: %v / %v", result.Lowest3, result.Highest3)
	}
	if result.Lowest3[0].Range != ScaleRange {
		t.Fatalf("ranked rows must carry the scale range, got %q", result.Lowest3[0].Range)
	}
}

func TestAggregateFewerThanThreeAreas(t *testing.T) {
	respondents := []survey.Respondent{
		respondent("1", "", obs("A", "F", 2), obs("B", "F", 4)),
	}

	result := Aggregate(respondents, Options{})
	if len(result.Lowest3) != 2 || len(result.Highest3) != 2 {
		t.Fatalf("rankings must not be padded: %v / %v", result.Lowest3, result.Highest3)
	}
}

func TestAggregateHeadlineScores(t *testing.T) {
	respondents := []survey.Respondent{
		respondent("1", "", obs("Uznanie i docenianie", "Uznanie", 4), obs("Komunikacja", "F", 2)),
	}

	result := Aggregate(respondents, Options{
		EngagementArea:   "uznanie  i docenianie", // fuzzy spelling still matches
		SatisfactionArea: "Środowisko pracy i kultura",
	})

	if result.EngagementMissing || result.Engagement != 4.0 {
		t.Fatalf("engagement = %v missing=%v, want 4.0", result.Engagement, result.EngagementMissing)
	}
	if !result.SatisfactionMissing || result.Satisfaction != 0 {
		t.Fatalf("satisfaction should be missing, got %v missing=%v", result.Satisfaction, result.SatisfactionMissing)
	}
}

func TestAggregateRespondentsWithoutDepartment(t *testing.T) {
	respondents := []survey.Respondent{
		respondent("1", "", obs("A", "F1", 5)),
		respondent("2", "Ops", obs("A", "F1", 3)),
	}

	result := Aggregate(respondents, Options{})
	area := result.DetailedAreas[0]
	if area.OverallAverage != 4.0 {
		t.Fatalf("overall must include department-less respondents, got %v", area.OverallAverage)
	}
	if len(area.TeamScores) != 1 || area.TeamScores["Ops"] != 3.0 {
		t.Fatalf("team scores must only cover known departments, got %v", area.TeamScores)
	}
}

func randomRespondents(r *rand.Rand) []survey.Respondent {
	areas := []string{"A", "B", "C", "D"}
	factors := []string{"F1", "F2", "F3"}
	departments := []string{"Sales", "Eng", "Ops", ""}

	respondents := make([]survey.Respondent, r.Intn(40))
	for i := range respondents {
		var scores []survey.Observation
		for j := 0; j < r.Intn(8); j++ {
			scores = append(scores,
				obs(areas[r.Intn(len(areas))], factors[r.Intn(len(factors))], 1+4*r.Float64()))
		}
		respondents[i] = respondent(
			string(rune('a'+i%26)),
			departments[r.Intn(len(departments))],
			scores...)
	}
	return respondents
}

func TestAggregateDeterminism(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	opts := Options{EngagementArea: "A", SatisfactionArea: "B"}

	for round := 0; round < 50; round++ {
		respondents := randomRespondents(r)
		first := Aggregate(respondents, opts)
		second := Aggregate(respondents, opts)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("round %d: repeated aggregation differs", round)
		}
	}
}

func TestAggregateInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for round := 0; round < 50; round++ {
		respondents := randomRespondents(r)
		result := Aggregate(respondents, Options{})

		seen := make(map[string]bool)
		for _, respondent := range respondents {
			for _, o := range respondent.Scores {
				seen[o.AreaNamePL] = true
			}
		}

		for _, area := range result.DetailedAreas {
			if !seen[area.AreaName] {
				t.Fatalf("round %d: fabricated area %q", round, area.AreaName)
			}
			if area.OverallAverage < 1 || area.OverallAverage > 5 {
				t.Fatalf("round %d: overall average out of range: %v", round, area.OverallAverage)
			}
			for factor, score := range area.FactorScores {
				if score < 1 || score > 5 {
					t.Fatalf("round %d: factor %q out of range: %v", round, factor, score)
				}
			}
		}

		if len(result.Lowest3) > 3 || len(result.Lowest3) > len(result.DetailedAreas) {
			t.Fatalf("round %d: lowest3 too long: %v", round, result.Lowest3)
		}
		if len(result.Highest3) > 3 || len(result.Highest3) > len(result.DetailedAreas) {
			t.Fatalf("round %d: highest3 too long: %v", round, result.Highest3)
		}
	}
}
