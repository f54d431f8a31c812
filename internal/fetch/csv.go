package fetch

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"bitcoin-metrics-lab/internal/domain"
)

// Date layouts accepted in the time column, in trial order.
var dateLayouts = []string{"2006-01-02", "2006-01-02T15:04:05.000000000Z", time.RFC3339}

// ParseCSV reads a "time,<col>,..." CSV document into a raw table.
// Unparseable numeric cells become NaN (logged once per column);
// rows with an unparseable date are dropped. Both are non-fatal: the
// merger and the derive engine tolerate gaps.
func ParseCSV(name string, r io.Reader) (*domain.RawTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("parse %s: read header: %w", name, err)
	}
	if len(header) < 2 || header[0] != "time" {
		return nil, fmt.Errorf("parse %s: first column must be %q, got %q", name, "time", header[0])
	}

	t := domain.NewRawTable(name)
	t.ColumnOrder = append(t.ColumnOrder, header[1:]...)
	for _, c := range t.ColumnOrder {
		t.Columns[c] = nil
	}

	badCells := make(map[string]int)
	badDates := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		date, ok := parseDate(record[0])
		if !ok {
			badDates++
			continue
		}
		t.Dates = append(t.Dates, date)
		for i, col := range t.ColumnOrder {
			v := math.NaN()
			if i+1 < len(record) && record[i+1] != "" {
				parsed, err := strconv.ParseFloat(record[i+1], 64)
				if err != nil {
					badCells[col]++
				} else {
					v = parsed
				}
			}
			t.Columns[col] = append(t.Columns[col], v)
		}
	}

	if badDates > 0 {
		log.Warn().Str("source", name).Int("rows", badDates).Msg("dropped rows with unparseable dates")
	}
	for col, n := range badCells {
		log.Warn().Str("source", name).Str("column", col).Int("cells", n).Msg("unparseable cells treated as missing")
	}
	return t, nil
}

// LoadCSVFile parses a CSV file from disk into a raw table named after
// the given source name.
func LoadCSVFile(name, path string) (*domain.RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	defer f.Close()
	return ParseCSV(name, f)
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return domain.Day(t), true
		}
	}
	return time.Time{}, false
}
