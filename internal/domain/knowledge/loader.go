package knowledge

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	"pulse/internal/platform/textnorm"
)

// Column headers in the source spreadsheets are inconsistent about casing,
// punctuation and trailing whitespace ("Skala: 1" vs "skala: 3",
// "definicja skali 1. " vs "definicja skali: 2"). Headers are therefore
// matched on a folded key with punctuation removed.
var headerPunct = strings.NewReplacer(":", "", ".", "", ",", "", "?", "", "(", "", ")", "")

func headerKey(name string) string {
	return textnorm.Fold(headerPunct.Replace(name))
}

var numberedItem = regexp.MustCompile(`\d\.\s?`)

// splitNumbered breaks an enumerated cell ("1. Do X 2. Do Y") into items.
func splitNumbered(cell string) []string {
	if strings.TrimSpace(cell) == "" {
		return nil
	}
	var items []string
	for _, part := range numberedItem.Split(cell, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}

type table struct {
	columns map[string]int
	rows    [][]string
}

func readTable(r io.Reader) (*table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty table")
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		key := headerKey(name)
		if key == "" {
			continue
		}
		if _, exists := columns[key]; !exists {
			columns[key] = i
		}
	}

	return &table{columns: columns, rows: records[1:]}, nil
}

func (t *table) cell(row []string, header string) string {
	idx, ok := t.columns[headerKey(header)]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// cellContaining finds a column whose folded header contains the fragment.
// The factor name column carries stray characters in some exports, so it
// cannot be matched exactly.
func (t *table) cellContaining(row []string, fragment string) string {
	fragment = headerKey(fragment)
	for key, idx := range t.columns {
		if strings.Contains(key, fragment) && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
	}
	return ""
}

func parseLevels(t *table, row []string) [5]Level {
	var levels [5]Level
	for n := 1; n <= 5; n++ {
		levels[n-1] = Level{
			Label:           t.cell(row, fmt.Sprintf("Skala: %d", n)),
			Definition:      t.cell(row, fmt.Sprintf("definicja skali %d", n)),
			Recommendations: splitNumbered(t.cell(row, fmt.Sprintf("Rekomendacje poziom %d", n))),
		}
	}
	return levels
}

// ParseFactorTable parses the per-factor knowledge base (czynniki.csv).
func ParseFactorTable(r io.Reader) (map[string]*Entry, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]*Entry)
	for _, row := range t.rows {
		factor := t.cellContaining(row, "Czynniki")
		if factor == "" {
			continue
		}
		entries[factor] = &Entry{
			Name:             factor,
			Scope:            ScopeFactor,
			Area:             t.cell(row, "Większe zbiory czynników"),
			Definition:       t.cell(row, "Definicja czynnika"),
			Levels:           parseLevels(t, row),
			BusinessImpact:   t.cell(row, "Wpływ na biznes"),
			EmployeeAttitude: t.cell(row, "Co to oznacza (postawa pracownika)?"),
			LinkedIndicators: t.cell(row, "Wskaźniki połączone"),
			Recommendations:  t.cell(row, "rekomendacje"),
		}
	}
	return entries, nil
}

// ParseAreaTable parses the area-level engagement/satisfaction table. Only
// the two headline rows are meaningful; everything else in the sheet is
// commentary.
func ParseAreaTable(r io.Reader) (map[string]*Entry, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}

	wanted := map[string]string{
		textnorm.Fold(AreaEngagement):   AreaEngagement,
		textnorm.Fold(AreaSatisfaction): AreaSatisfaction,
	}

	entries := make(map[string]*Entry)
	for _, row := range t.rows {
		area := t.cell(row, "Obszar")
		canonical, ok := wanted[textnorm.Fold(area)]
		if !ok {
			continue
		}
		entries[canonical] = &Entry{
			Name:               canonical,
			Scope:              ScopeArea,
			Definition:         t.cell(row, "Definicja zbiorów (kolumny A)"),
			GeneralDescription: t.cell(row, "Ogólny opis min. i max. skali"),
			Levels:             parseLevels(t, row),
			LinkedIndicators:   t.cell(row, "Wskaźniki połączone"),
		}
	}
	return entries, nil
}
