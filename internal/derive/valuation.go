package derive

import (
	"bitcoin-metrics-lab/internal/domain"
)

// nvtMedianWindow is the smoothing window for the NVT ratio. A long
// rolling median suppresses transaction-value noise far better than the
// raw 90-day ratio.
const nvtMedianWindow = 365

// valuationSteps computes the on-chain valuation ratio family.
func valuationSteps() []Step {
	return []Step{
		{
			Name:     "valuation_ratios",
			Requires: []string{domain.ColCapMrktCurUSD, domain.ColCapRealUSD, domain.ColSplyCur, domain.ColPriceUSD},
			Produces: []string{domain.ColMVRVRatio, domain.ColRealisedPrice, domain.ColNUPL, domain.ColSatPerDollar},
			Apply: func(f *domain.Frame) error {
				mcap := col(f, domain.ColCapMrktCurUSD)
				rcap := col(f, domain.ColCapRealUSD)
				sply := col(f, domain.ColSplyCur)
				price := col(f, domain.ColPriceUSD)

				if err := setDivided(f, domain.ColMVRVRatio, mcap, rcap); err != nil {
					return err
				}
				if err := setDivided(f, domain.ColRealisedPrice, rcap, sply); err != nil {
					return err
				}

				// nupl = (mcap - rcap) / mcap
				diff := make([]float64, len(mcap))
				for i := range mcap {
					diff[i] = mcap[i] - rcap[i]
				}
				if err := setDivided(f, domain.ColNUPL, diff, mcap); err != nil {
					return err
				}

				sats := nans(len(price))
				for i, p := range price {
					if p != 0 {
						sats[i] = 1e8 / p
					}
				}
				return f.Set(domain.ColSatPerDollar, sats)
			},
		},
		{
			Name:     "nvt_price",
			Requires: []string{domain.ColNVTAdj90, domain.ColNVTAdjFF90, domain.ColTxTfrValAdjUSD, domain.ColSplyCur},
			Produces: []string{domain.ColNVTPrice, domain.ColNVTPriceAdj},
			Apply: func(f *domain.Frame) error {
				tfr := col(f, domain.ColTxTfrValAdjUSD)
				sply := col(f, domain.ColSplyCur)

				for _, p := range []struct{ ratio, out string }{
					{domain.ColNVTAdj90, domain.ColNVTPrice},
					{domain.ColNVTAdjFF90, domain.ColNVTPriceAdj},
				} {
					smoothed := rollingMedian(col(f, p.ratio), nvtMedianWindow)
					num := make([]float64, len(smoothed))
					for i := range smoothed {
						num[i] = smoothed[i] * tfr[i]
					}
					if err := setDivided(f, p.out, num, sply); err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
}

// priceMultipleStep computes price / 200-day MA. Runs after the price
// moving averages exist.
func priceMultipleStep() Step {
	ma200 := domain.MovingAvgCol(200, domain.ColPriceUSD)
	return Step{
		Name:     "price_multiple_200d",
		Requires: []string{domain.ColPriceUSD, ma200},
		Produces: []string{domain.Col200DayMultiple},
		Apply: func(f *domain.Frame) error {
			return setDivided(f, domain.Col200DayMultiple, col(f, domain.ColPriceUSD), col(f, ma200))
		},
	}
}
