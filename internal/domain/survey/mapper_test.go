package survey

import "testing"

func TestStaticMapper(t *testing.T) {
	mapper := NewStaticMapper(DefaultTaxonomy())

	headers := []string{
		"Komunikacja wewnętrzna",
		"internal communication",
		"Oceń obszar: Komunikacja wewnętrzna",
		"Dział",
		"Staż pracy (lata)",
		"Ulubiony kolor",
	}

	mapping, err := mapper.MapHeaders(headers, nil)
	if err != nil {
		t.Fatalf("map failed: %v", err)
	}

	tests := []struct {
		header string
		want   string
	}{
		{header: "Komunikacja wewnętrzna", want: "communication"},
		{header: "internal communication", want: "communication"},
		{header: "Oceń obszar: Komunikacja wewnętrzna", want: "communication"},
		{header: "Dział", want: DetailDepartment},
		{header: "Staż pracy (lata)", want: DetailTenureYears},
		{header: "Ulubiony kolor", want: ""},
	}
	for _, tc := range tests {
		if got := mapping[tc.header]; got != tc.want {
			t.Fatalf("mapping[%q] = %q, want %q", tc.header, got, tc.want)
		}
	}
}

func TestStaticMapperSynonyms(t *testing.T) {
	mapper := NewStaticMapper(DefaultTaxonomy())
	mapping, err := mapper.MapHeaders([]string{"Docenianie pracy", "FEEDBACK OD PRZEŁOŻONEGO"}, nil)
	if err != nil {
		t.Fatalf("map failed: %v", err)
	}
	if mapping["Docenianie pracy"] != "recognition" {
		t.Fatalf("synonym not mapped: %v", mapping)
	}
	if mapping["FEEDBACK OD PRZEŁOŻONEGO"] != "feedback" {
		t.Fatalf("case-insensitive synonym not mapped: %v", mapping)
	}
}
