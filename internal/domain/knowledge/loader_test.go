package knowledge

import (
	"strings"
	"testing"
)

const factorCSV = `Czynniki ,Większe zbiory czynników,Definicja czynnika,Skala: 1,definicja skali 1. ,Rekomendacje poziom 1.,Skala: 2,definicja skali: 2,Rekomendacje poziom 2.,skala: 3,definicja skali: 3,Rekomendacje poziom 3.,skala: 4,definicja skali 4,Rekomendacje poziom 4. ,skala: 5,definicja skali: 5,Rekomendacje poziom 5. ,Wpływ na biznes,Co to oznacza (postawa pracownika)?,Wskaźniki połączone,rekomendacje
Wynagrodzenie zasadnicze,Wynagrodzenie i benefity,Ocena poziomu płacy zasadniczej,Bardzo nisko,Pracownicy oceniają płace bardzo nisko,1. Przeprowadź przegląd siatki płac 2. Porównaj stawki z rynkiem,Nisko,Płace poniżej oczekiwań,1. Zaplanuj korekty płacowe,Średnio,Płace przeciętne,,Wysoko,Płace konkurencyjne,1. Utrzymaj politykę płacową,Bardzo wysoko,Płace w pełni konkurencyjne,,Wysoka rotacja i koszty rekrutacji,Pracownicy rozważają odejście,eNPS; rotacja,1. Regularnie monitoruj rynek 2. Komunikuj zasady wynagradzania
,,,,,,,,,,,,,,,,,,,,,`

const areaCSV = `Obszar,Definicja zbiorów (kolumny A) ,Ogólny opis min. i max. skali,Skala: 1,definicja skali 1. ,Rekomendacje poziom 1.,Skala: 2,definicja skali: 2,Rekomendacje poziom 2.,skala: 3,definicja skali: 3,Rekomendacje poziom 3.,skala: 4,definicja skali: 4,Rekomendacje poziom 4. ,skala: 5,definicja skali: 5,Rekomendacje poziom 5. ,Wskaźniki połączone
Zaangażowanie,Gotowość do wysiłku na rzecz organizacji,Od wycofania do pełnego zaangażowania,Bardzo niskie,Pracownicy są wycofani,1. Zbadaj przyczyny wycofania,Niskie,Zaangażowanie poniżej przeciętnej,,Umiarkowane,Zaangażowanie przeciętne,,Wysokie,Zaangażowanie ponadprzeciętne,,Bardzo wysokie,Pełne zaangażowanie,,eNPS
Satysfakcja,Zadowolenie z warunków pracy,Od frustracji do pełnej satysfakcji,Bardzo niska,Pracownicy są sfrustrowani,,Niska,Satysfakcja poniżej przeciętnej,,Umiarkowana,Satysfakcja przeciętna,,Wysoka,Satysfakcja ponadprzeciętna,,Bardzo wysoka,Pełna satysfakcja,,rotacja
Notatki,,,,,,,,,,,,,,,,,,`

func TestParseFactorTable(t *testing.T) {
	entries, err := ParseFactorTable(strings.NewReader(factorCSV))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	entry, ok := entries["Wynagrodzenie zasadnicze"]
	if !ok {
		t.Fatal("expected entry for Wynagrodzenie zasadnicze")
	}
	if entry.Scope != ScopeFactor {
		t.Fatalf("expected factor scope, got %s", entry.Scope)
	}
	if entry.Area != "Wynagrodzenie i benefity" {
		t.Fatalf("unexpected area: %q", entry.Area)
	}

	level1 := entry.LevelAt(1)
	if level1.Definition != "Pracownicy oceniają płace bardzo nisko" {
		t.Fatalf("unexpected level 1 definition: %q", level1.Definition)
	}
	want := []string{"Przeprowadź przegląd siatki płac", "Porównaj stawki z rynkiem"}
	if len(level1.Recommendations) != len(want) {
		t.Fatalf("expected %d recommendations, got %v", len(want), level1.Recommendations)
	}
	for i, rec := range want {
		if level1.Recommendations[i] != rec {
			t.Fatalf("recommendation %d = %q, want %q", i, level1.Recommendations[i], rec)
		}
	}

	if entry.LevelAt(3).Recommendations != nil {
		t.Fatalf("expected no level 3 recommendations, got %v", entry.LevelAt(3).Recommendations)
	}
	if entry.BusinessImpact != "Wysoka rotacja i koszty rekrutacji" {
		t.Fatalf("unexpected business impact: %q", entry.BusinessImpact)
	}
}

func TestParseAreaTableKeepsOnlyHeadlineRows(t *testing.T) {
	entries, err := ParseAreaTable(strings.NewReader(areaCSV))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if _, ok := entries[AreaEngagement]; !ok {
		t.Fatal("missing engagement entry")
	}
	if _, ok := entries[AreaSatisfaction]; !ok {
		t.Fatal("missing satisfaction entry")
	}
	if entries[AreaEngagement].Scope != ScopeArea {
		t.Fatalf("expected area scope, got %s", entries[AreaEngagement].Scope)
	}
}

func TestParseFactorTableEmptyInput(t *testing.T) {
	if _, err := ParseFactorTable(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestSplitNumbered(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "two items", in: "1. Zrób A 2. Zrób B", want: 2},
		{name: "no numbering", in: "Zrób A", want: 1},
		{name: "empty", in: "   ", want: 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := splitNumbered(tc.in); len(got) != tc.want {
				t.Fatalf("splitNumbered(%q) = %v, want %d items", tc.in, got, tc.want)
			}
		})
	}
}
