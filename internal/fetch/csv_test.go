package fetch

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestParseCSV_BasicDocument(t *testing.T) {
	doc := `time,PriceUSD,TxCnt
2020-01-01,7200.5,300000
2020-01-02,7350.25,310000
`
	tbl, err := ParseCSV("coinmetrics", strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tbl.Dates) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(tbl.Dates))
	}
	if tbl.ColumnOrder[0] != "PriceUSD" || tbl.ColumnOrder[1] != "TxCnt" {
		t.Errorf("unexpected column order: %v", tbl.ColumnOrder)
	}
	if tbl.Columns["PriceUSD"][1] != 7350.25 {
		t.Errorf("expected 7350.25, got %f", tbl.Columns["PriceUSD"][1])
	}
	want := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if !tbl.Dates[0].Equal(want) {
		t.Errorf("expected %s, got %s", want, tbl.Dates[0])
	}
}

func TestParseCSV_BadCellsBecomeNaN(t *testing.T) {
	doc := `time,PriceUSD
2020-01-01,7200
2020-01-02,n/a
2020-01-03,
2020-01-04,7500
`
	tbl, err := ParseCSV("coinmetrics", strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	vals := tbl.Columns["PriceUSD"]
	if len(vals) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(vals))
	}
	if !math.IsNaN(vals[1]) {
		t.Errorf("expected NaN for unparseable cell, got %f", vals[1])
	}
	if !math.IsNaN(vals[2]) {
		t.Errorf("expected NaN for empty cell, got %f", vals[2])
	}
	if vals[3] != 7500 {
		t.Errorf("expected 7500, got %f", vals[3])
	}
}

func TestParseCSV_BadDatesDropRows(t *testing.T) {
	doc := `time,PriceUSD
2020-01-01,7200
not-a-date,9999
2020-01-03,7400
`
	tbl, err := ParseCSV("coinmetrics", strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tbl.Dates) != 2 {
		t.Fatalf("expected bad-date row dropped, got %d rows", len(tbl.Dates))
	}
	if tbl.Columns["PriceUSD"][1] != 7400 {
		t.Errorf("expected 7400 in the surviving row, got %f", tbl.Columns["PriceUSD"][1])
	}
}

func TestParseCSV_TimestampLayouts(t *testing.T) {
	doc := `time,x
2020-01-01T00:00:00.000000000Z,1
2020-01-02T00:00:00Z,2
`
	tbl, err := ParseCSV("src", strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tbl.Dates) != 2 {
		t.Fatalf("expected both timestamp layouts accepted, got %d rows", len(tbl.Dates))
	}
}

func TestParseCSV_ShortRecordsPadWithNaN(t *testing.T) {
	doc := `time,a,b
2020-01-01,1
`
	tbl, err := ParseCSV("src", strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tbl.Columns["a"][0] != 1 {
		t.Errorf("expected 1, got %f", tbl.Columns["a"][0])
	}
	if !math.IsNaN(tbl.Columns["b"][0]) {
		t.Errorf("expected NaN for the missing trailing cell, got %f", tbl.Columns["b"][0])
	}
}

func TestParseCSV_RejectsWrongHeader(t *testing.T) {
	if _, err := ParseCSV("src", strings.NewReader("date,x\n2020-01-01,1\n")); err == nil {
		t.Fatal("expected error for a header not starting with time")
	}
}
