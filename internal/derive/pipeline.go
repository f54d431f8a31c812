package derive

import (
	"bitcoin-metrics-lab/internal/dataset"
	"bitcoin-metrics-lab/internal/domain"
)

// DefaultEngine assembles the full derivation pipeline in dependency
// order. The ordering is load-bearing: moving averages of nvt_price need
// the valuation step first, the 200-day multiple needs the price MAs, and
// the energy model needs the smoothed issuance column.
func DefaultEngine(cfg *dataset.Config) *Engine {
	var steps []Step
	steps = append(steps, valuationSteps()...)
	steps = append(steps, movingAverageSteps(cfg.MovingAvgMetrics)...)
	steps = append(steps, priceMultipleStep())
	steps = append(steps, nvtMultipleStep())
	steps = append(steps, thermocapSteps()...)
	steps = append(steps, realizedcapMultipleStep())
	steps = append(steps, supplyAgeStep())
	steps = append(steps, comparativeSteps(cfg)...)
	steps = append(steps, stockToFlowStep(cfg.StockToFlow))
	steps = append(steps, energySteps(cfg.Energy)...)
	steps = append(steps, changeSteps(cfg.ChangeMetrics)...)
	return NewEngine(steps)
}

// nvtMultipleStep relates price to the NVT fair-value price, raw and
// 30-day smoothed.
func nvtMultipleStep() Step {
	ma30 := domain.MovingAvgCol(30, domain.ColNVTPrice)
	return Step{
		Name:     "nvt_price_multiple",
		Requires: []string{domain.ColPriceUSD, domain.ColNVTPrice, ma30},
		Produces: []string{"nvt_price_multiple", "nvt_price_multiple_ma"},
		Apply: func(f *domain.Frame) error {
			price := col(f, domain.ColPriceUSD)
			if err := setDivided(f, "nvt_price_multiple", price, col(f, domain.ColNVTPrice)); err != nil {
				return err
			}
			return setDivided(f, "nvt_price_multiple_ma", price, col(f, ma30))
		},
	}
}
