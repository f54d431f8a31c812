package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// WriteDir writes every artifact in the bundle into dir, creating it if
// needed. Existing artifacts are overwritten; each run fully replaces the
// previous output.
func WriteDir(b *Bundle, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("reporting: create output dir: %w", err)
	}

	files := map[string]string{
		"report_data.csv": b.FrameCSV,
		"columns.txt":     b.ColumnList,
		"summary.md":      b.SummaryMarkdown,
		"charts.json":     string(b.ChartsJSON),
	}
	for fam, csv := range b.CycleCSVs {
		files[fmt.Sprintf("cycles_%s.csv", fam)] = csv
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(files[name]), 0o644); err != nil {
			return fmt.Errorf("reporting: write %s: %w", name, err)
		}
	}
	return nil
}
