package derive

import "bitcoin-metrics-lab/internal/domain"

var (
	thermocapFactors   = []int{4, 8, 16, 32}
	realizedcapFactors = []int{3, 5, 7}
)

// thermocapSteps computes the thermocap family. Two distinct framings are
// kept on purpose: thermocap_multiple is market cap over cumulative miner
// revenue, while thermocap_price_multiple_N is the N-scaled cost-basis
// price. Conflating them breaks the valuation charts.
func thermocapSteps() []Step {
	produces := []string{domain.ColThermocapPrice, domain.ColThermocapMultiple}
	for _, k := range thermocapFactors {
		produces = append(produces, domain.ThermocapPriceMultipleCol(k))
	}
	return []Step{
		{
			Name:     "thermocap",
			Requires: []string{domain.ColRevAllTimeUSD, domain.ColSplyCur, domain.ColCapMrktCurUSD},
			Produces: produces,
			Apply: func(f *domain.Frame) error {
				rev := col(f, domain.ColRevAllTimeUSD)
				sply := col(f, domain.ColSplyCur)
				mcap := col(f, domain.ColCapMrktCurUSD)

				if err := setDivided(f, domain.ColThermocapPrice, rev, sply); err != nil {
					return err
				}
				if err := setDivided(f, domain.ColThermocapMultiple, mcap, rev); err != nil {
					return err
				}
				for _, k := range thermocapFactors {
					if err := setDivided(f, domain.ThermocapPriceMultipleCol(k), scale(rev, float64(k)), sply); err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
}

// realizedcapMultipleStep scales realized price by fixed factors.
func realizedcapMultipleStep() Step {
	produces := make([]string, 0, len(realizedcapFactors))
	for _, k := range realizedcapFactors {
		produces = append(produces, domain.RealizedcapMultipleCol(k))
	}
	return Step{
		Name:     "realizedcap_multiples",
		Requires: []string{domain.ColCapRealUSD, domain.ColSplyCur},
		Produces: produces,
		Apply: func(f *domain.Frame) error {
			rcap := col(f, domain.ColCapRealUSD)
			sply := col(f, domain.ColSplyCur)
			for _, k := range realizedcapFactors {
				if err := setDivided(f, domain.RealizedcapMultipleCol(k), scale(rcap, float64(k)), sply); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// supplyAgeStep derives the 1yr+ dormant supply split. The active-supply
// percentage from upstream is authoritative; nothing here re-classifies
// coins, so dormancy is never double-counted.
func supplyAgeStep() Step {
	return Step{
		Name:     "supply_age",
		Requires: []string{domain.ColSplyActPct1yr, domain.ColSplyCur},
		Produces: []string{domain.ColSupplyPct1YearPlus, domain.ColIlliquidSupply, domain.ColLiquidSupply},
		Apply: func(f *domain.Frame) error {
			actPct := col(f, domain.ColSplyActPct1yr)
			sply := col(f, domain.ColSplyCur)

			pct := make([]float64, len(actPct))
			illiquid := make([]float64, len(actPct))
			liquid := make([]float64, len(actPct))
			for i := range actPct {
				pct[i] = 100 - actPct[i]
				illiquid[i] = pct[i] / 100 * sply[i]
				liquid[i] = sply[i] - illiquid[i]
			}
			if err := f.Set(domain.ColSupplyPct1YearPlus, pct); err != nil {
				return err
			}
			if err := f.Set(domain.ColIlliquidSupply, illiquid); err != nil {
				return err
			}
			return f.Set(domain.ColLiquidSupply, liquid)
		},
	}
}
