package derive

import (
	"fmt"

	"bitcoin-metrics-lab/internal/domain"
)

// Price gets a wider window set than the smoothing metrics, plus the
// 200-week line watched by long-cycle charts.
var (
	priceMAWindows  = []int{7, 50, 100, 200}
	metricMAWindows = []int{7, 30, 365}
)

const weeksLong = 200 // 200-week MA, 1400 days

// movingAverageSteps builds one step per (metric, window set). The first
// window-1 rows of every output are NaN; that is expected, not an error.
func movingAverageSteps(metrics []string) []Step {
	steps := make([]Step, 0, len(metrics)+1)

	priceProduces := make([]string, 0, len(priceMAWindows)+1)
	for _, w := range priceMAWindows {
		priceProduces = append(priceProduces, domain.MovingAvgCol(w, domain.ColPriceUSD))
	}
	priceProduces = append(priceProduces, domain.WeekMovingAvgCol(weeksLong, domain.ColPriceUSD))
	steps = append(steps, Step{
		Name:     "price_moving_averages",
		Requires: []string{domain.ColPriceUSD},
		Produces: priceProduces,
		Apply: func(f *domain.Frame) error {
			price := col(f, domain.ColPriceUSD)
			for _, w := range priceMAWindows {
				if err := f.Set(domain.MovingAvgCol(w, domain.ColPriceUSD), rollingMean(price, w)); err != nil {
					return err
				}
			}
			return f.Set(domain.WeekMovingAvgCol(weeksLong, domain.ColPriceUSD), rollingMean(price, weeksLong*7))
		},
	})

	for _, metric := range metrics {
		metric := metric
		produces := make([]string, 0, len(metricMAWindows))
		for _, w := range metricMAWindows {
			produces = append(produces, domain.MovingAvgCol(w, metric))
		}
		steps = append(steps, Step{
			Name:     fmt.Sprintf("moving_averages_%s", metric),
			Requires: []string{metric},
			Produces: produces,
			Apply: func(f *domain.Frame) error {
				vals := col(f, metric)
				for _, w := range metricMAWindows {
					if err := f.Set(domain.MovingAvgCol(w, metric), rollingMean(vals, w)); err != nil {
						return err
					}
				}
				return nil
			},
		})
	}
	return steps
}
