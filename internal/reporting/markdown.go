package reporting

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"bitcoin-metrics-lab/internal/cycles"
)

// RenderMarkdown renders the run summary as Markdown.
func RenderMarkdown(s *Summary) string {
	var sb strings.Builder

	sb.WriteString("# Bitcoin Metrics Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", s.GeneratedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Frame: %d rows x %d columns (%s to %s)\n\n",
		s.Rows, s.Columns,
		s.FirstDate.Format(dateLayout), s.LastDate.Format(dateLayout)))

	sb.WriteString("## Headline Metrics\n\n")
	if len(s.Highlights) > 0 {
		sb.WriteString("| Metric | Date | Value |\n")
		sb.WriteString("|--------|------|-------|\n")
		for _, h := range s.Highlights {
			sb.WriteString(fmt.Sprintf("| %s | %s | %.4f |\n",
				h.Name, h.Date.Format(dateLayout), h.Value))
		}
	} else {
		sb.WriteString("No headline metrics available.\n")
	}
	sb.WriteString("\n")

	sb.WriteString("## Cycle Segmentation\n\n")
	if len(s.CycleEras) > 0 {
		families := make([]string, 0, len(s.CycleEras))
		for fam := range s.CycleEras {
			families = append(families, string(fam))
		}
		sort.Strings(families)
		sb.WriteString("| Family | Eras |\n")
		sb.WriteString("|--------|------|\n")
		for _, fam := range families {
			sb.WriteString(fmt.Sprintf("| %s | %d |\n", fam, s.CycleEras[cycles.Family(fam)]))
		}
		sb.WriteString("\n")
	} else {
		sb.WriteString("No cycle tables available.\n\n")
	}

	if len(s.SkippedEras) > 0 {
		sb.WriteString("### Skipped Eras\n\n")
		for _, era := range s.SkippedEras {
			sb.WriteString(fmt.Sprintf("- %s\n", era))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
