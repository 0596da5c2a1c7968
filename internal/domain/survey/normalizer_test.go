package survey

import (
	"reflect"
	"testing"
)

func testMapping() HeaderMapping {
	return HeaderMapping{
		"Dział":                    DetailDepartment,
		"Staż pracy":               DetailTenureYears,
		"Jak oceniasz komunikację": "communication",
		"Jak oceniasz szkolenia":   "training",
		"Kolumna pomijana":         "",
	}
}

func TestNormalizeBuildsRespondents(t *testing.T) {
	rows := []ParsedRow{
		{
			"Dział":                    "Sprzedaż",
			"Staż pracy":               "3",
			"Jak oceniasz komunikację": "4",
			"Jak oceniasz szkolenia":   "2",
			"Kolumna pomijana":         "x",
		},
	}

	respondents := Normalize(rows, testMapping(), DefaultTaxonomy())
	if len(respondents) != 1 {
		t.Fatalf("expected 1 respondent, got %d", len(respondents))
	}

	r := respondents[0]
	if r.ID != "1" {
		t.Fatalf("unexpected id: %q", r.ID)
	}
	if r.Department() != "Sprzedaż" {
		t.Fatalf("unexpected department: %q", r.Department())
	}
	if r.Details[DetailTenureYears] != "3" {
		t.Fatalf("unexpected tenure: %q", r.Details[DetailTenureYears])
	}
	if len(r.Scores) != 2 {
		t.Fatalf("expected 2 observations, got %d", len(r.Scores))
	}
	// Headers iterate in sorted order, so komunikacja comes first.
	if r.Scores[0].FactorID != "communication" || r.Scores[0].Score != 4 {
		t.Fatalf("unexpected first observation: %+v", r.Scores[0])
	}
	if r.Scores[0].AreaNamePL != "Komunikacja" {
		t.Fatalf("taxonomy names not resolved: %+v", r.Scores[0])
	}
	if r.Scores[0].ScaleMax != 5 {
		t.Fatalf("expected 1-5 scale, got %d", r.Scores[0].ScaleMax)
	}
}

func TestNormalizeRescalesTenPointValues(t *testing.T) {
	rows := []ParsedRow{
		{"Jak oceniasz komunikację": "8"},
	}

	respondents := Normalize(rows, testMapping(), DefaultTaxonomy())
	if len(respondents) != 1 || len(respondents[0].Scores) != 1 {
		t.Fatalf("unexpected output: %+v", respondents)
	}
	obs := respondents[0].Scores[0]
	if obs.Score != 4.0 {
		t.Fatalf("expected 8 on 0-10 to rescale to 4.0, got %v", obs.Score)
	}
	if obs.ScaleMax != 10 {
		t.Fatalf("expected recorded scale 10, got %d", obs.ScaleMax)
	}
}

func TestNormalizeSkipsBadCellsOnly(t *testing.T) {
	rows := []ParsedRow{
		{
			"Jak oceniasz komunikację": "nie wiem",
			"Jak oceniasz szkolenia":   "3,5",
		},
	}

	respondents := Normalize(rows, testMapping(), DefaultTaxonomy())
	if len(respondents) != 1 {
		t.Fatalf("expected row to survive a bad cell, got %+v", respondents)
	}
	scores := respondents[0].Scores
	if len(scores) != 1 {
		t.Fatalf("expected 1 observation, got %d", len(scores))
	}
	if scores[0].FactorID != "training" || scores[0].Score != 3.5 {
		t.Fatalf("expected comma decimal parsed for training, got %+v", scores[0])
	}
}

func TestNormalizeDropsEmptyRows(t *testing.T) {
	rows := []ParsedRow{
		{"Kolumna pomijana": "tak", "Nieznana kolumna": "5"},
		{"Dział": "   "},
	}

	respondents := Normalize(rows, testMapping(), DefaultTaxonomy())
	if len(respondents) != 0 {
		t.Fatalf("expected rows without mapped content to be dropped, got %+v", respondents)
	}
}

func TestNormalizeDeterministicObservationOrder(t *testing.T) {
	rows := []ParsedRow{
		{
			"Jak oceniasz komunikację": 4,
			"Jak oceniasz szkolenia":   5,
		},
	}
	tax := DefaultTaxonomy()
	mapping := testMapping()

	first := Normalize(rows, mapping, tax)
	for i := 0; i < 20; i++ {
		again := Normalize(rows, mapping, tax)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("normalization not deterministic: %+v vs %+v", first, again)
		}
	}
}

func TestCoerceScore(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  float64
		ok    bool
	}{
		{name: "float", value: 4.5, want: 4.5, ok: true},
		{name: "int", value: 3, want: 3, ok: true},
		{name: "string", value: "2", want: 2, ok: true},
		{name: "comma decimal", value: "3,5", want: 3.5, ok: true},
		{name: "text", value: "wysoko", ok: false},
		{name: "empty", value: "", ok: false},
		{name: "nil", value: nil, ok: false},
		{name: "bool", value: true, ok: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, ok := coerceScore(tc.value)
			if ok != tc.ok {
				t.Fatalf("coerceScore(%v) ok = %v, want %v", tc.value, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("coerceScore(%v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}
