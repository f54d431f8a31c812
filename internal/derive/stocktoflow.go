package derive

import (
	"math"

	"bitcoin-metrics-lab/internal/dataset"
	"bitcoin-metrics-lab/internal/domain"
)

// flowLagDays defines annual flow as the supply minted over the trailing
// 365 days.
const flowLagDays = 365

// stockToFlowStep computes the scarcity model: SF ratio, the power-law
// predicted price using the published regression constants, and the
// actual/predicted multiple. The constants are externally calibrated and
// never re-fit here.
func stockToFlowStep(sf dataset.StockToFlow) Step {
	return Step{
		Name:     "stock_to_flow",
		Requires: []string{domain.ColSplyCur, domain.ColPriceUSD},
		Produces: []string{domain.ColSF, domain.ColSFPredictedPrice, domain.ColSFMultiple, domain.ColSFPredictedPriceMA},
		Apply: func(f *domain.Frame) error {
			sply := col(f, domain.ColSplyCur)
			price := col(f, domain.ColPriceUSD)
			n := len(sply)

			flow := nans(n)
			for i := flowLagDays; i < n; i++ {
				flow[i] = sply[i] - sply[i-flowLagDays]
			}
			ratio, _ := divide(sply, flow)
			if err := f.Set(domain.ColSF, ratio); err != nil {
				return err
			}

			// Predicted market value exp(intercept) * SF^power, expressed
			// as a per-coin price.
			predicted := nans(n)
			for i, r := range ratio {
				if math.IsNaN(r) || r <= 0 || sply[i] == 0 {
					continue
				}
				predicted[i] = math.Exp(sf.Intercept) * math.Pow(r, sf.Power) / sply[i]
			}
			if err := f.Set(domain.ColSFPredictedPrice, predicted); err != nil {
				return err
			}
			if err := setDivided(f, domain.ColSFMultiple, price, predicted); err != nil {
				return err
			}
			return f.Set(domain.ColSFPredictedPriceMA, rollingMean(predicted, 365))
		},
	}
}
