package examination

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"pulse/internal/domain/survey"
)

// ParseCSV reads an uploaded survey export into raw rows keyed by trimmed
// column headers. Cell values stay strings; typing happens during
// normalization. Rows whose cells are all empty are skipped.
func ParseCSV(r io.Reader) ([]string, []survey.ParsedRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("empty file")
	}

	headers := make([]string, 0, len(records[0]))
	for _, header := range records[0] {
		headers = append(headers, strings.TrimSpace(header))
	}

	rows := make([]survey.ParsedRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(survey.ParsedRow, len(headers))
		empty := true
		for i, header := range headers {
			if header == "" || i >= len(record) {
				continue
			}
			value := strings.TrimSpace(record[i])
			if value == "" {
				continue
			}
			row[header] = value
			empty = false
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}

	return headers, rows, nil
}
