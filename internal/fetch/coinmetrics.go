package fetch

import (
	"bytes"
	"context"
	"fmt"
)

// DefaultCoinMetricsURL is the community CSV endpoint for Bitcoin.
const DefaultCoinMetricsURL = "https://coinmetrics.io/newdata/btc.csv"

// SourceCoinMetrics names the on-chain raw table.
const SourceCoinMetrics = "coinmetrics"

// FetchCoinMetrics downloads the community on-chain CSV. The returned
// table carries every CoinMetrics column; the derive engine validates
// the subset it needs.
func (c *Client) FetchCoinMetrics(ctx context.Context, url string) (*RawResult, error) {
	if url == "" {
		url = DefaultCoinMetricsURL
	}
	body, err := c.GetBody(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("coinmetrics: %w", err)
	}
	t, err := ParseCSV(SourceCoinMetrics, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("coinmetrics: %w", err)
	}
	return &RawResult{Table: t, Bytes: len(body)}, nil
}
