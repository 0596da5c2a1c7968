package survey

import (
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Normalize converts raw upload rows into canonical respondents using the
// header mapping. Rows that yield neither details nor scores are dropped.
// Cells that cannot be read as a finite number lose that single
// observation, never the whole row.
func Normalize(rows []ParsedRow, mapping HeaderMapping, taxonomy Taxonomy) []Respondent {
	// Mapping iteration must be stable so respondents carry their
	// observations in the same order on every run.
	headers := make([]string, 0, len(mapping))
	for header, target := range mapping {
		if target == "" {
			continue
		}
		headers = append(headers, header)
	}
	sort.Strings(headers)

	respondents := make([]Respondent, 0, len(rows))
	for i, row := range rows {
		respondent := Respondent{
			ID:      strconv.Itoa(i + 1),
			Details: make(map[string]string),
		}

		for _, header := range headers {
			value, present := row[header]
			if !present {
				continue
			}

			switch target := mapping[header]; target {
			case DetailDepartment, DetailTenureYears:
				if detail := strings.TrimSpace(fmt.Sprint(value)); detail != "" {
					respondent.Details[target] = detail
				}
			default:
				factor, ok := taxonomy[target]
				if !ok {
					log.Printf("normalize: row %d: header %q mapped to unknown factor %q, skipping", i+1, header, target)
					continue
				}
				score, ok := coerceScore(value)
				if !ok {
					log.Printf("normalize: row %d: non-numeric value %v for %q, skipping observation", i+1, value, header)
					continue
				}
				respondent.Scores = append(respondent.Scores, newObservation(factor, header, score))
			}
		}

		if len(respondent.Details) == 0 && len(respondent.Scores) == 0 {
			continue
		}
		respondents = append(respondents, respondent)
	}
	return respondents
}

// newObservation rescales the raw value onto the 1-5 scale. Values above 5
// are assumed to come from a 0-10 question; this is the only place scale
// conversion happens, and the chosen scale is recorded on the observation.
func newObservation(factor Factor, question string, raw float64) Observation {
	score := raw
	scaleMax := 5
	if raw > 5 {
		scaleMax = 10
		score = raw / 10 * 5
	}
	if score < 1 {
		score = 1
	}
	if score > 5 {
		score = 5
	}

	return Observation{
		AreaID:       factor.AreaID,
		AreaNamePL:   factor.AreaNamePL,
		AreaNameEN:   factor.AreaNameEN,
		FactorID:     factor.ID,
		FactorNamePL: factor.NamePL,
		FactorNameEN: factor.NameEN,
		Question:     question,
		Score:        score,
		ScaleMax:     scaleMax,
	}
}

func coerceScore(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, isFinite(v)
	case float32:
		return float64(v), isFinite(float64(v))
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false
		}
		// Polish exports use a decimal comma.
		trimmed = strings.ReplaceAll(trimmed, ",", ".")
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		return parsed, isFinite(parsed)
	default:
		return 0, false
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
