package merge

import (
	"math"
	"testing"
	"time"

	"bitcoin-metrics-lab/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func table(name string, dates []time.Time, cols map[string][]float64, order []string) *domain.RawTable {
	t := domain.NewRawTable(name)
	t.Dates = dates
	t.Columns = cols
	t.ColumnOrder = order
	return t
}

func TestMerge_IndexEndsYesterday(t *testing.T) {
	src := table("a", []time.Time{day(2020, 1, 1)}, map[string][]float64{"x": {1}}, []string{"x"})

	res, err := New().WithClock(fixedClock(day(2020, 1, 10))).Merge([]*domain.RawTable{src})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f := res.Frame
	if f.Len() != 9 {
		t.Fatalf("expected 9 rows (Jan 1 through Jan 9), got %d", f.Len())
	}
	if !f.Date(f.Len() - 1).Equal(day(2020, 1, 9)) {
		t.Errorf("expected index to end 2020-01-09, got %s", f.Date(f.Len()-1))
	}
}

func TestMerge_ForwardFillsGaps(t *testing.T) {
	// Weekday-style source: observations on Jan 1 and Jan 4 only.
	src := table("equities",
		[]time.Time{day(2020, 1, 1), day(2020, 1, 4)},
		map[string][]float64{"AAPL_close": {100, 104}},
		[]string{"AAPL_close"})

	res, err := New().WithClock(fixedClock(day(2020, 1, 6))).Merge([]*domain.RawTable{src})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	vals, _ := res.Frame.Column("AAPL_close")
	// Jan 2 and Jan 3 carry the Jan 1 observation forward.
	if vals[1] != 100 || vals[2] != 100 {
		t.Errorf("expected forward-filled 100, got %f %f", vals[1], vals[2])
	}
	if vals[3] != 104 {
		t.Errorf("expected fresh observation 104, got %f", vals[3])
	}
	// Jan 5 carries Jan 4 forward to the index end.
	if vals[4] != 104 {
		t.Errorf("expected trailing forward-fill 104, got %f", vals[4])
	}
}

func TestMerge_LeadingGapsStayNaN(t *testing.T) {
	early := table("onchain", []time.Time{day(2020, 1, 1)}, map[string][]float64{"x": {1}}, []string{"x"})
	late := table("equities", []time.Time{day(2020, 1, 3)}, map[string][]float64{"y": {3}}, []string{"y"})

	res, err := New().WithClock(fixedClock(day(2020, 1, 5))).Merge([]*domain.RawTable{early, late})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	y, _ := res.Frame.Column("y")
	if !math.IsNaN(y[0]) || !math.IsNaN(y[1]) {
		t.Errorf("expected leading NaNs before first observation, got %f %f", y[0], y[1])
	}
	if y[2] != 3 {
		t.Errorf("expected 3 on first observation, got %f", y[2])
	}
}

func TestMerge_DuplicateDatesKeepFirst(t *testing.T) {
	src := table("a",
		[]time.Time{day(2020, 1, 1), day(2020, 1, 1), day(2020, 1, 2)},
		map[string][]float64{"x": {1, 99, 2}},
		[]string{"x"})

	res, err := New().WithClock(fixedClock(day(2020, 1, 3))).Merge([]*domain.RawTable{src})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.DuplicatesDropped != 1 {
		t.Errorf("expected 1 duplicate dropped, got %d", res.DuplicatesDropped)
	}
	vals, _ := res.Frame.Column("x")
	if vals[0] != 1 {
		t.Errorf("expected first occurrence 1 to win, got %f", vals[0])
	}
}

func TestMerge_StartClampDiscardsEarlierRows(t *testing.T) {
	src := table("a",
		[]time.Time{day(2009, 6, 1), day(2010, 1, 1), day(2010, 1, 2)},
		map[string][]float64{"x": {5, 1, 2}},
		[]string{"x"})

	res, err := New().
		WithClock(fixedClock(day(2010, 1, 4))).
		WithStart(day(2010, 1, 1)).
		Merge([]*domain.RawTable{src})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Frame.Date(0).Equal(day(2010, 1, 1)) {
		t.Errorf("expected index to start 2010-01-01, got %s", res.Frame.Date(0))
	}
	vals, _ := res.Frame.Column("x")
	if vals[0] != 1 {
		t.Errorf("expected 2009 observation discarded, got %f", vals[0])
	}
}

func TestMerge_EmptySourceIsReported(t *testing.T) {
	full := table("a", []time.Time{day(2020, 1, 1)}, map[string][]float64{"x": {1}}, []string{"x"})
	empty := domain.NewRawTable("empty")

	res, err := New().WithClock(fixedClock(day(2020, 1, 2))).Merge([]*domain.RawTable{full, empty})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.EmptySources) != 1 || res.EmptySources[0] != "empty" {
		t.Errorf("expected empty source reported, got %v", res.EmptySources)
	}
}

func TestMerge_AllSourcesEmptyFails(t *testing.T) {
	_, err := New().Merge([]*domain.RawTable{domain.NewRawTable("empty")})
	if err == nil {
		t.Fatal("expected error when no source has rows")
	}
}
