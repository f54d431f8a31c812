package derive

import (
	"math"

	"bitcoin-metrics-lab/internal/dataset"
	"bitcoin-metrics-lab/internal/domain"
)

// energySteps computes the electricity and production-cost model family.
// All formulas are vectorized column operations over same-row inputs.
//
// Unit conventions: HashRate arrives in TH/s, efficiency in J/GH, so
// network draw in Watts = HashRate * 1000 * J/GH. Daily energy in kWh
// divides Watt-days by 1000/24.
//
// The expected-BTC-per-day denominator is the 7-day smoothed issuance;
// a zero there yields NaN for the row, never a crash.
func energySteps(em dataset.EnergyModel) []Step {
	btcPerDayCol := domain.MovingAvgCol(7, domain.ColIssContNtv)
	return []Step{
		{
			Name:     "energy_consumption",
			Requires: []string{domain.ColHashRate, btcPerDayCol},
			Produces: []string{
				domain.ColEnergyConsumptionKWh,
				domain.ColElectricityCost,
				domain.ColProductionCost,
				domain.ColHayesNetworkPrice,
			},
			Apply: func(f *domain.Frame) error {
				hash := col(f, domain.ColHashRate)
				btcPerDay := col(f, btcPerDayCol)
				n := len(hash)

				kwh := make([]float64, n)
				for i, h := range hash {
					watts := h * 1000 * em.EfficiencyJPerGH
					kwh[i] = watts * 24 / 1000
				}
				if err := f.Set(domain.ColEnergyConsumptionKWh, kwh); err != nil {
					return err
				}

				// Electricity cost per BTC mined.
				spend := make([]float64, n)
				for i := range kwh {
					spend[i] = kwh[i] * em.ElectricityUSDPerKWh
				}
				if err := setDivided(f, domain.ColElectricityCost, spend, btcPerDay); err != nil {
					return err
				}

				// Full production cost: electricity is only a share of it.
				elec := col(f, domain.ColElectricityCost)
				prod := nans(n)
				if em.ElectricityShare > 0 {
					for i, v := range elec {
						prod[i] = v / em.ElectricityShare
					}
				}
				if err := f.Set(domain.ColProductionCost, prod); err != nil {
					return err
				}

				// Hayes break-even: daily electricity bill of one reference
				// rig over the BTC that rig expects to mine in a day.
				hayes := nans(n)
				rigCost := em.RefMinerWatts / 1000 * 24 * em.ElectricityUSDPerKWh
				for i := range hash {
					if hash[i] == 0 || math.IsNaN(btcPerDay[i]) {
						continue
					}
					rigBTC := em.RefMinerHashTH / hash[i] * btcPerDay[i]
					if rigBTC == 0 {
						continue
					}
					hayes[i] = rigCost / rigBTC
				}
				return f.Set(domain.ColHayesNetworkPrice, hayes)
			},
		},
		{
			Name:     "energy_value",
			Requires: []string{domain.ColHashRate, domain.ColSplyCur, domain.ColPriceUSD},
			Produces: []string{domain.ColCMEnergyValue, domain.ColLaggedEnergyValue, domain.ColEnergyValueMultiple},
			Apply: func(f *domain.Frame) error {
				hash := col(f, domain.ColHashRate)
				sply := col(f, domain.ColSplyCur)
				n := len(hash)

				// Growth-rate-normalized energy input: Watts over annual
				// supply growth, scaled by the calibrated fiat factor.
				value := nans(n)
				for i := flowLagDays; i < n; i++ {
					prev := sply[i-flowLagDays]
					if prev == 0 {
						continue
					}
					growth := sply[i]/prev - 1
					if growth <= 0 {
						continue
					}
					watts := hash[i] * 1000 * em.EfficiencyJPerGH
					value[i] = watts / growth * em.FiatFactor
				}
				if err := f.Set(domain.ColCMEnergyValue, value); err != nil {
					return err
				}

				// Lagged variant: hardware running today was specified when
				// it was bought, so the efficiency assumption is applied to
				// the hashrate of EfficiencyLagDays ago.
				lagged := nans(n)
				lag := em.EfficiencyLagDays
				for i := lag; i < n; i++ {
					lagged[i] = value[i-lag]
				}
				if err := f.Set(domain.ColLaggedEnergyValue, lagged); err != nil {
					return err
				}
				return setDivided(f, domain.ColEnergyValueMultiple, col(f, domain.ColPriceUSD), lagged)
			},
		},
	}
}
