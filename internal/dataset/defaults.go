package dataset

// Default returns the embedded reference configuration. Values mirror the
// curated dashboard constants: the M0 table, metal supplies and market-cap
// snapshots are periodically refreshed by hand.
func Default() *Config {
	return &Config{
		StartDate:      MustDate("2010-01-01"),
		StatsStartDate: MustDate("2012-11-28"), // first halving

		MovingAvgMetrics: []string{
			"HashRate",
			"AdrActCnt",
			"TxCnt",
			"TxTfrValAdjUSD",
			"TxTfrValMeanUSD",
			"TxTfrValMedUSD",
			"FeeMeanUSD",
			"FeeMeanNtv",
			"IssContNtv",
			"RevUSD",
			"nvt_price",
			"nvt_price_adj",
		},
		ChangeMetrics: []string{
			"PriceUSD",
			"^IXIC_close",
			"^GSPC_close",
			"XLF_close",
			"XLE_close",
			"FANG.AX_close",
			"BITQ_close",
			"GC=F_close",
			"DX=F_close",
			"TLT_close",
		},
		VolatilityWindows: []int{30, 90, 180, 365},

		Tickers: map[string][]string{
			"stocks": {
				"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "TSLA", "META",
				"BRK-A", "BRK-B", "TSM", "V", "JPM", "PYPL", "GS",
				"COIN", "SQ", "MSTR", "MARA", "RIOT",
			},
			"etfs": {
				"BITQ", "CLOU", "ARKK", "XLK", "QQQ", "VTI", "TLT", "LQD",
				"JNK", "GLD", "XLF", "XLRE", "SHY", "XLE", "FANG.AX", "SPY",
				"IEMG", "AGG", "WGMI", "VXUS",
			},
			"indices":     {"^GSPC", "^VIX", "^IXIC", "^TNX", "^TYX", "^FVX", "^IRX", "^BCOM"},
			"commodities": {"GC=F", "CL=F", "SI=F"},
			"forex": {
				"DX=F", "AUDUSD=X", "CHFUSD=X", "CNYUSD=X", "EURUSD=X",
				"GBPUSD=X", "HKDUSD=X", "INRUSD=X", "JPYUSD=X", "RUBUSD=X",
			},
		},

		StockMarketCaps: []StockMarketCap{
			{Ticker: "AAPL", USD: 2.95e12},
			{Ticker: "MSFT", USD: 3.10e12},
			{Ticker: "GOOGL", USD: 2.05e12},
			{Ticker: "AMZN", USD: 1.90e12},
			{Ticker: "NVDA", USD: 2.20e12},
			{Ticker: "TSLA", USD: 0.72e12},
			{Ticker: "META", USD: 1.25e12},
			{Ticker: "BRK-A", USD: 0.88e12},
			{Ticker: "BRK-B", USD: 0.88e12},
			{Ticker: "TSM", USD: 0.75e12},
			{Ticker: "V", USD: 0.56e12},
			{Ticker: "JPM", USD: 0.58e12},
			{Ticker: "PYPL", USD: 0.07e12},
			{Ticker: "GS", USD: 0.14e12},
		},

		FiatSupplies: []FiatSupply{
			{Country: "United States", USDTrillion: 5.73},
			{Country: "China", USDTrillion: 5.11},
			{Country: "Eurozone", USDTrillion: 5.19},
			{Country: "Japan", USDTrillion: 4.20},
			{Country: "United Kingdom", USDTrillion: 1.09},
			{Country: "Switzerland", USDTrillion: 0.58},
			{Country: "India", USDTrillion: 0.56},
			{Country: "Australia", USDTrillion: 0.24},
			{Country: "Russia", USDTrillion: 0.30},
			{Country: "Hong Kong", USDTrillion: 0.25},
			{Country: "Global Fiat Supply", USDTrillion: 26.1},
		},

		Metals: []MetalSupply{
			{Metal: "Gold", TroyOunces: 6.1e9, PriceTicker: "GC=F"},
			{Metal: "Silver", TroyOunces: 30.9e9, PriceTicker: "SI=F"},
		},
		GoldBreakdown: []SupplyBreakdown{
			{Category: "Jewellery", Percent: 47},
			{Category: "Private Investment", Percent: 22},
			{Category: "Official Country Holdings", Percent: 17},
			{Category: "Other", Percent: 14},
		},

		Energy: EnergyModel{
			ElectricityUSDPerKWh: 0.05,
			EfficiencyJPerGH:     0.05, // modern fleet, ~50 J/TH
			EfficiencyLagDays:    365,
			ElectricityShare:     0.6,
			RefMinerHashTH:       110,  // S19-class rig
			RefMinerWatts:        3250,
			FiatFactor:           2.0e-5,
		},
		StockToFlow: StockToFlow{
			Intercept: 14.6,
			Power:     3.3,
		},

		DrawdownEras: []Era{
			{Label: "drawdown_cycle_1", Start: MustDate("2011-06-08"), End: MustDate("2013-12-19")},
			{Label: "drawdown_cycle_2", Start: MustDate("2013-12-04"), End: MustDate("2017-01-03")},
			{Label: "drawdown_cycle_3", Start: MustDate("2017-12-16"), End: MustDate("2020-12-03")},
			{Label: "drawdown_cycle_4", Start: MustDate("2021-11-08"), Open: true},
		},
		CycleLowEras: []Era{
			{Label: "return_since_cycle_low_1", Start: MustDate("2010-07-18"), End: MustDate("2013-12-19")},
			{Label: "return_since_cycle_low_2", Start: MustDate("2013-12-19"), End: MustDate("2017-12-16")},
			{Label: "return_since_cycle_low_3", Start: MustDate("2017-12-16"), End: MustDate("2021-11-08")},
			{Label: "return_since_cycle_low_4", Start: MustDate("2021-11-08"), Open: true},
		},
		HalvingEras: []Era{
			{Label: "Genesis Era", Start: MustDate("2009-01-03"), End: MustDate("2012-11-28")},
			{Label: "2nd Era", Start: MustDate("2012-11-28"), End: MustDate("2016-07-09")},
			{Label: "3rd Era", Start: MustDate("2016-07-09"), End: MustDate("2020-05-11")},
			{Label: "4th Era", Start: MustDate("2020-05-11"), Open: true},
		},
	}
}
