package derive

import (
	"fmt"
	"math"

	"bitcoin-metrics-lab/internal/dataset"
	"bitcoin-metrics-lab/internal/domain"
)

// comparativeSteps derives implied-BTC-price columns against fiat M0
// supplies, gold/silver market caps and stock market caps. All divide by
// the 10-year-forward supply projection: the question they answer is the
// saturation price once issuance has largely finished, not today's parity.
func comparativeSteps(cfg *dataset.Config) []Step {
	steps := []Step{fiatSupplyStep(cfg.FiatSupplies)}
	steps = append(steps, metalSteps(cfg)...)
	steps = append(steps, stockMarketCapStep(cfg.StockMarketCaps))
	return steps
}

func fiatSupplyStep(supplies []dataset.FiatSupply) Step {
	produces := make([]string, 0, len(supplies))
	for _, s := range supplies {
		produces = append(produces, domain.CountryBTCPriceCol(s.Country))
	}
	return Step{
		Name:     "fiat_supply_btc_price",
		Requires: []string{domain.ColSplyExpFut10yr},
		Produces: produces,
		Apply: func(f *domain.Frame) error {
			fut := col(f, domain.ColSplyExpFut10yr)
			for _, s := range supplies {
				usd := make([]float64, len(fut))
				for i := range usd {
					usd[i] = s.USDTrillion * 1e12
				}
				if err := setDivided(f, domain.CountryBTCPriceCol(s.Country), usd, fut); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func metalSteps(cfg *dataset.Config) []Step {
	steps := make([]Step, 0, len(cfg.Metals)+1)

	for _, m := range cfg.Metals {
		m := m
		mcapCol := metalMarketcapCol(m.Metal)
		btcCol := metalBTCPriceCol(m.Metal)
		priceCol := domain.CloseCol(m.PriceTicker)
		steps = append(steps, Step{
			Name:     fmt.Sprintf("metal_marketcap_%s", slugLower(m.Metal)),
			Requires: []string{priceCol, domain.ColSplyExpFut10yr},
			Produces: []string{mcapCol, btcCol},
			Apply: func(f *domain.Frame) error {
				price := col(f, priceCol)
				mcap := make([]float64, len(price))
				for i, p := range price {
					mcap[i] = m.TroyOunces * p
				}
				if err := f.Set(mcapCol, mcap); err != nil {
					return err
				}
				return setDivided(f, btcCol, mcap, col(f, domain.ColSplyExpFut10yr))
			},
		})
	}

	if len(cfg.GoldBreakdown) > 0 {
		breakdown := cfg.GoldBreakdown
		produces := make([]string, 0, len(breakdown)*2)
		for _, b := range breakdown {
			produces = append(produces, domain.GoldCategoryMarketcapCol(b.Category), domain.GoldCategoryBTCPriceCol(b.Category))
		}
		steps = append(steps, Step{
			Name:     "gold_supply_breakdown",
			Requires: []string{domain.ColGoldMarketcapBillionUSD, domain.ColSplyExpFut10yr},
			Produces: produces,
			Apply: func(f *domain.Frame) error {
				gold := col(f, domain.ColGoldMarketcapBillionUSD)
				latest := lastValid(gold)
				fut := col(f, domain.ColSplyExpFut10yr)
				for _, b := range breakdown {
					catMC := latest * b.Percent / 100
					mc := make([]float64, len(gold))
					for i := range mc {
						mc[i] = catMC
					}
					if err := f.Set(domain.GoldCategoryMarketcapCol(b.Category), mc); err != nil {
						return err
					}
					if err := setDivided(f, domain.GoldCategoryBTCPriceCol(b.Category), mc, fut); err != nil {
						return err
					}
				}
				return nil
			},
		})
	}
	return steps
}

func stockMarketCapStep(caps []dataset.StockMarketCap) Step {
	requires := []string{domain.ColSplyExpFut10yr}
	produces := make([]string, 0, len(caps))
	for _, c := range caps {
		requires = append(requires, domain.MarketCapCol(c.Ticker))
		produces = append(produces, domain.TickerBTCPriceCol(c.Ticker))
	}
	return Step{
		Name:     "stock_marketcap_btc_price",
		Requires: requires,
		Produces: produces,
		Apply: func(f *domain.Frame) error {
			fut := col(f, domain.ColSplyExpFut10yr)
			for _, c := range caps {
				mcap := col(f, domain.MarketCapCol(c.Ticker))
				if err := setDivided(f, domain.TickerBTCPriceCol(c.Ticker), mcap, fut); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// metalMarketcapCol keeps the historical "_billion_usd" suffix even though
// the value is plain USD; the chart catalog depends on these names.
func metalMarketcapCol(metal string) string {
	return slugLower(metal) + "_marketcap_billion_usd"
}

func metalBTCPriceCol(metal string) string {
	return slugLower(metal) + "_marketcap_btc_price"
}

func slugLower(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == ' ' {
			out = append(out, '_')
		} else if r >= 'A' && r <= 'Z' {
			out = append(out, r+('a'-'A'))
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}

// lastValid returns the last non-NaN value, NaN if none.
func lastValid(vals []float64) float64 {
	for i := len(vals) - 1; i >= 0; i-- {
		if !math.IsNaN(vals[i]) {
			return vals[i]
		}
	}
	return math.NaN()
}
