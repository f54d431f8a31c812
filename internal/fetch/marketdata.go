package fetch

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"bitcoin-metrics-lab/internal/dataset"
	"bitcoin-metrics-lab/internal/domain"
)

// SourceMarketData names the TradFi closes raw table; SourceMarketCaps
// names the static market-cap snapshot table.
const (
	SourceMarketData = "marketdata"
	SourceMarketCaps = "marketcaps"
)

// RawResult pairs a parsed table with fetch diagnostics.
type RawResult struct {
	Table *domain.RawTable
	Bytes int
	// Failed lists tickers that could not be fetched; a failed ticker
	// loses its column but never aborts the batch.
	Failed []string
}

// CloseURL builds a daily-close CSV URL for one ticker. The default
// endpoint serves "time,close" documents.
type CloseURL func(ticker string, start time.Time) string

// DefaultCloseURL targets the stooq daily CSV endpoint.
func DefaultCloseURL(ticker string, start time.Time) string {
	return fmt.Sprintf("https://stooq.com/q/d/l/?s=%s&d1=%s&i=d",
		url.QueryEscape(ticker), start.Format("20060102"))
}

// FetchDailyCloses downloads the daily close series for every configured
// ticker and merges them into one raw table with <TICKER>_close columns.
// A failed or empty ticker is skipped with a warning; the fetch
// collaborator owns the retry policy, the core never refetches.
func (c *Client) FetchDailyCloses(ctx context.Context, cfg *dataset.Config, closeURL CloseURL) (*RawResult, error) {
	if closeURL == nil {
		closeURL = DefaultCloseURL
	}
	res := &RawResult{Table: domain.NewRawTable(SourceMarketData)}

	// Collect per-ticker series keyed by date, then align on the union of
	// observed dates. TradFi sources are weekday-only; the merger
	// forward-fills the gaps later.
	type series struct {
		column string
		values map[time.Time]float64
	}
	var all []series
	dateSet := make(map[time.Time]bool)

	for _, category := range sortedKeys(cfg.Tickers) {
		for _, ticker := range cfg.Tickers[category] {
			body, err := c.GetBody(ctx, closeURL(ticker, cfg.StartDate.Time))
			if err != nil {
				log.Warn().Str("ticker", ticker).Str("category", category).Err(err).Msg("could not fetch ticker")
				res.Failed = append(res.Failed, ticker)
				continue
			}
			res.Bytes += len(body)
			t, err := ParseCSV(ticker, bytes.NewReader(body))
			if err != nil || len(t.ColumnOrder) == 0 || len(t.Dates) == 0 {
				log.Warn().Str("ticker", ticker).Err(err).Msg("could not parse ticker CSV")
				res.Failed = append(res.Failed, ticker)
				continue
			}
			// First data column is the close.
			closes := t.Columns[t.ColumnOrder[0]]
			s := series{column: domain.CloseCol(ticker), values: make(map[time.Time]float64, len(t.Dates))}
			for i, d := range t.Dates {
				s.values[d] = closes[i]
				dateSet[d] = true
			}
			all = append(all, s)
		}
	}

	dates := sortedDates(dateSet)
	res.Table.Dates = dates
	for _, s := range all {
		vals := domain.NaNs(len(dates))
		for i, d := range dates {
			if v, ok := s.values[d]; ok {
				vals[i] = v
			}
		}
		res.Table.Columns[s.column] = vals
		res.Table.ColumnOrder = append(res.Table.ColumnOrder, s.column)
	}
	return res, nil
}

// MarketCapTable builds the static market-cap snapshot table from config:
// one row dated at the run's start date, forward-filled across the whole
// index by the merger.
func MarketCapTable(cfg *dataset.Config, asOf time.Time) *domain.RawTable {
	t := domain.NewRawTable(SourceMarketCaps)
	t.Dates = []time.Time{domain.Day(asOf)}
	for _, c := range cfg.StockMarketCaps {
		name := domain.MarketCapCol(c.Ticker)
		t.Columns[name] = []float64{c.USD}
		t.ColumnOrder = append(t.ColumnOrder, name)
	}
	return t
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedDates(set map[time.Time]bool) []time.Time {
	dates := make([]time.Time, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
