package reporting

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"bitcoin-metrics-lab/internal/cycles"
	"bitcoin-metrics-lab/internal/domain"
)

const dateLayout = "2006-01-02"

// RenderFrameCSV renders the full wide frame as CSV. The first column is
// the date; missing values render as empty cells.
func RenderFrameCSV(f *domain.Frame) string {
	var sb strings.Builder

	columns := f.Columns()
	sb.WriteString("time")
	for _, c := range columns {
		sb.WriteByte(',')
		sb.WriteString(csvEscape(c))
	}
	sb.WriteByte('\n')

	for i := 0; i < f.Len(); i++ {
		sb.WriteString(f.Date(i).Format(dateLayout))
		for _, c := range columns {
			sb.WriteByte(',')
			if v := f.At(c, i); !math.IsNaN(v) {
				sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderCycleCSV renders one long-format cycle table.
func RenderCycleCSV(t *cycles.Table) string {
	var sb strings.Builder
	sb.WriteString(string(t.Family))
	sb.WriteString(",value,era\n")
	for _, p := range t.Points {
		sb.WriteString(fmt.Sprintf("%d,%s,%s\n",
			p.ElapsedDays,
			strconv.FormatFloat(p.Value, 'g', -1, 64),
			csvEscape(p.Era)))
	}
	return sb.String()
}

// RenderColumnList renders the newline-separated column manifest.
func RenderColumnList(f *domain.Frame) string {
	var sb strings.Builder
	for _, c := range f.Columns() {
		sb.WriteString(c)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// csvEscape quotes a field containing commas or quotes. Column names
// like "BRK-A_close" pass through untouched.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
