// Package dataset holds the versioned reference configuration for a
// pipeline run: metric lists, ticker universe, static market-size tables,
// era boundaries and model constants. Defaults are embedded; a YAML file
// can override any section so that new eras or tickers are additive data,
// not code changes.
package dataset

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Date is a calendar day that unmarshals from "2006-01-02" YAML strings.
type Date struct {
	time.Time
}

// UnmarshalYAML parses "YYYY-MM-DD".
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// MarshalYAML renders "YYYY-MM-DD".
func (d Date) MarshalYAML() (interface{}, error) {
	return d.Format("2006-01-02"), nil
}

// MustDate parses a "YYYY-MM-DD" literal, panicking on malformed input.
// Only used for the embedded defaults.
func MustDate(s string) Date {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return Date{t}
}

// Era is one hand-curated, date-bounded segment of calendar time.
// Open marks the current era whose end tracks the report date.
type Era struct {
	Label string `yaml:"label"`
	Start Date   `yaml:"start"`
	End   Date   `yaml:"end"`
	Open  bool   `yaml:"open"`
}

// FiatSupply is one country's M0 money supply in trillions of USD.
type FiatSupply struct {
	Country     string  `yaml:"country"`
	USDTrillion float64 `yaml:"usd_trillion"`
}

// MetalSupply is a precious metal's above-ground supply in troy ounces.
type MetalSupply struct {
	Metal       string  `yaml:"metal"`
	TroyOunces  float64 `yaml:"troy_ounces"`
	PriceTicker string  `yaml:"price_ticker"` // futures ticker carrying $/oz
}

// SupplyBreakdown is one category's share of a market, in percent.
type SupplyBreakdown struct {
	Category string  `yaml:"category"`
	Percent  float64 `yaml:"percent"`
}

// StockMarketCap is a static market-cap snapshot for one equity, in USD.
// Snapshots are forward-filled across the whole index by the merger.
type StockMarketCap struct {
	Ticker string  `yaml:"ticker"`
	USD    float64 `yaml:"usd"`
}

// EnergyModel holds the electricity / production-cost model assumptions.
type EnergyModel struct {
	// ElectricityUSDPerKWh is the assumed global average miner rate.
	ElectricityUSDPerKWh float64 `yaml:"electricity_usd_per_kwh"`
	// EfficiencyJPerGH is the assumed fleet efficiency in Joules per GH.
	EfficiencyJPerGH float64 `yaml:"efficiency_j_per_gh"`
	// EfficiencyLagDays lags the efficiency assumption for the lagged
	// energy-value variant (hardware deployed today was bought earlier).
	EfficiencyLagDays int `yaml:"efficiency_lag_days"`
	// ElectricityShare is electricity's assumed share of total production
	// cost; the remainder covers capex, cooling and overhead.
	ElectricityShare float64 `yaml:"electricity_share"`
	// RefMinerHashTH / RefMinerWatts describe the reference rig for the
	// Hayes break-even model.
	RefMinerHashTH float64 `yaml:"ref_miner_hash_th"`
	RefMinerWatts  float64 `yaml:"ref_miner_watts"`
	// FiatFactor converts growth-normalized Watts to USD for the
	// energy-value model. Externally calibrated, not fit here.
	FiatFactor float64 `yaml:"fiat_factor"`
}

// StockToFlow holds the published power-law regression constants.
// They are externally calibrated and deliberately not re-fit.
type StockToFlow struct {
	Intercept float64 `yaml:"intercept"`
	Power     float64 `yaml:"power"`
}

// Config is the full reference configuration for one pipeline run.
type Config struct {
	// StartDate bounds TradFi fetches; on-chain data starts earlier.
	StartDate Date `yaml:"start_date"`
	// StatsStartDate opens the fixed window for percentile/z-score stats.
	StatsStartDate Date `yaml:"stats_start_date"`

	// MovingAvgMetrics get {7,30,365}-day moving averages for smoothing.
	MovingAvgMetrics []string `yaml:"moving_avg_metrics"`
	// ChangeMetrics get the percentage-change, CAGR and stats families.
	ChangeMetrics []string `yaml:"change_metrics"`
	// VolatilityWindows are the rolling windows for annualized volatility.
	VolatilityWindows []int `yaml:"volatility_windows"`

	// Tickers is the TradFi universe by category (stocks, etfs, indices,
	// commodities, forex). Every ticker contributes a <TICKER>_close column.
	Tickers map[string][]string `yaml:"tickers"`
	// StockMarketCaps are static snapshots used for implied-BTC-price
	// columns; only tickers listed here get a <TICKER>_mc_btc_price.
	StockMarketCaps []StockMarketCap `yaml:"stock_market_caps"`

	FiatSupplies  []FiatSupply      `yaml:"fiat_supplies"`
	Metals        []MetalSupply     `yaml:"metals"`
	GoldBreakdown []SupplyBreakdown `yaml:"gold_breakdown"`

	Energy      EnergyModel `yaml:"energy"`
	StockToFlow StockToFlow `yaml:"stock_to_flow"`

	// Era families, independently curated; families may disagree on era
	// edges because they answer different questions.
	DrawdownEras []Era `yaml:"drawdown_eras"`
	CycleLowEras []Era `yaml:"cycle_low_eras"`
	HalvingEras  []Era `yaml:"halving_eras"`
}

// Load reads a YAML config file over the embedded defaults: any section
// present in the file replaces the default section wholesale.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse dataset config: %w", err)
	}
	return cfg, nil
}
