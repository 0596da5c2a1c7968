package survey

import (
	"strings"

	"pulse/internal/platform/textnorm"
)

// StaticMapper maps headers by folded-name comparison against the taxonomy:
// factor names (PL and EN) and declared synonyms, plus the demographic
// columns. It is the deterministic stand-in for the LLM-backed mapper and
// the mapper used by tests.
type StaticMapper struct {
	byName map[string]string
}

func NewStaticMapper(taxonomy Taxonomy) *StaticMapper {
	byName := make(map[string]string)
	for id, factor := range taxonomy {
		for _, name := range append([]string{factor.NamePL, factor.NameEN}, factor.Synonyms...) {
			if name == "" {
				continue
			}
			byName[textnorm.Fold(name)] = id
		}
	}
	return &StaticMapper{byName: byName}
}

func (m *StaticMapper) MapHeaders(headers []string, _ []ParsedRow) (HeaderMapping, error) {
	mapping := make(HeaderMapping, len(headers))
	for _, header := range headers {
		mapping[header] = m.target(header)
	}
	return mapping, nil
}

func (m *StaticMapper) target(header string) string {
	folded := textnorm.Fold(header)
	if folded == "" {
		return ""
	}

	if factorID, ok := m.byName[folded]; ok {
		return factorID
	}

	switch {
	case strings.Contains(folded, "dzial") || strings.Contains(folded, "department") || strings.Contains(folded, "zespol"):
		return DetailDepartment
	case strings.Contains(folded, "staz") || strings.Contains(folded, "tenure"):
		return DetailTenureYears
	}

	// Survey tools often phrase the question around the factor name; accept
	// a header that contains exactly one known name.
	var match string
	for name, factorID := range m.byName {
		if strings.Contains(folded, name) {
			if match != "" && match != factorID {
				return ""
			}
			match = factorID
		}
	}
	return match
}
