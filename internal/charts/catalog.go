package charts

import (
	"bitcoin-metrics-lab/internal/cycles"
	"bitcoin-metrics-lab/internal/domain"
)

// Shared annotation sets. The history list marks the market-structure
// events drawn on most long-range charts.
var (
	halvingEvents = Event{Name: "Halving", Dates: []string{"2012-11-28", "2016-07-09", "2020-05-11", "2024-04-19"}}

	historyEvents = []Event{
		halvingEvents,
		{Name: "MtGox Launch", Dates: []string{"2010-07-01"}},
		{Name: "MtGox Hack", Dates: []string{"2011-06-11"}},
		{Name: "MtGox Bankrupt", Dates: []string{"2014-02-01"}},
		{Name: "BitLicense", Dates: []string{"2015-08-08"}},
		{Name: "CME Futures", Dates: []string{"2017-12-17"}},
		{Name: "Bitcoin Winter", Dates: []string{"2018-12-15"}},
		{Name: "Coinbase IPO", Dates: []string{"2021-04-14"}},
		{Name: "FTX Bankrupt", Dates: []string{"2022-11-11"}},
	}
)

const (
	srcCoinMetrics = "Data Source: CoinMetrics"
	srcMixed       = "Data Source: CoinMetrics, Market Data"
)

func priceSeries() Series {
	return Series{Name: "Bitcoin Price", Column: domain.ColPriceUSD, Axis: AxisPrimary}
}

// Catalog returns the full fixed chart template set consumed by the
// dashboard. Column references are the contract with the derive engine;
// Validate enforces it before rendering.
func Catalog() []Spec {
	return []Spec{
		{
			ID: "Bitcoin_Supply", Title: "Bitcoin Supply & Daily Issuance",
			XLabel: "Date", Y1Label: "Bitcoin Supply", Y2Label: "New Bitcoins Created Each Day",
			LogY: true, DataSource: srcCoinMetrics,
			Series: []Series{
				{Name: "Bitcoin Supply", Column: domain.ColSplyCur, Axis: AxisPrimary},
				{Name: "Daily Issuance", Column: domain.ColIssContNtv, Axis: AxisSecondary},
				{Name: "Issuance 7 Day MA", Column: domain.MovingAvgCol(7, domain.ColIssContNtv), Axis: AxisSecondary},
				{Name: "Issuance 365 Day MA", Column: domain.MovingAvgCol(365, domain.ColIssContNtv), Axis: AxisSecondary},
			},
			Events: []Event{halvingEvents},
		},
		{
			ID: "Bitcoin_Price", Title: "Bitcoin Price",
			XLabel: "Date", Y1Label: "Bitcoin Price", LogY: true, DataSource: srcCoinMetrics,
			Series: []Series{
				priceSeries(),
				{Name: "Price 7 Day MA", Column: domain.MovingAvgCol(7, domain.ColPriceUSD), Axis: AxisPrimary},
			},
			Events: historyEvents,
		},
		{
			ID: "Bitcoin_Price_Chart_MA", Title: "Bitcoin Price Moving Averages",
			XLabel: "Date", Y1Label: "Bitcoin Price", LogY: true, DataSource: srcCoinMetrics,
			Series: []Series{
				priceSeries(),
				{Name: "50 Day MA", Column: domain.MovingAvgCol(50, domain.ColPriceUSD), Axis: AxisPrimary},
				{Name: "100 Day MA", Column: domain.MovingAvgCol(100, domain.ColPriceUSD), Axis: AxisPrimary},
				{Name: "200 Day MA", Column: domain.MovingAvgCol(200, domain.ColPriceUSD), Axis: AxisPrimary},
				{Name: "200 Week MA", Column: domain.WeekMovingAvgCol(200, domain.ColPriceUSD), Axis: AxisPrimary},
				{Name: "200 Day Multiple", Column: domain.Col200DayMultiple, Axis: AxisSecondary},
			},
			Events: []Event{halvingEvents},
		},
		{
			ID: "Bitcoin_Transactions", Title: "Bitcoin Transactions",
			XLabel: "Date", Y1Label: "Bitcoin Price", Y2Label: "Daily Transactions",
			LogY: true, DataSource: srcCoinMetrics,
			Series: []Series{
				priceSeries(),
				{Name: "Transaction Count", Column: domain.ColTxCnt, Axis: AxisSecondary},
				{Name: "Tx Count 30 Day MA", Column: domain.MovingAvgCol(30, domain.ColTxCnt), Axis: AxisSecondary},
				{Name: "Tx Count 365 Day MA", Column: domain.MovingAvgCol(365, domain.ColTxCnt), Axis: AxisSecondary},
			},
			Events: historyEvents,
		},
		{
			ID: "Bitcoin_Hashrate", Title: "Bitcoin Hashrate",
			XLabel: "Date", Y1Label: "Bitcoin Price", Y2Label: "Network Hashrate",
			LogY: true, DataSource: srcCoinMetrics,
			Series: []Series{
				priceSeries(),
				{Name: "Hash Rate", Column: domain.ColHashRate, Axis: AxisSecondary},
				{Name: "Hash Rate 30 Day MA", Column: domain.MovingAvgCol(30, domain.ColHashRate), Axis: AxisSecondary},
				{Name: "Hash Rate 365 Day MA", Column: domain.MovingAvgCol(365, domain.ColHashRate), Axis: AxisSecondary},
			},
			Events: historyEvents,
		},
		{
			ID: "Bitcoin_Transaction_Value", Title: "Bitcoin Transferred Value",
			XLabel: "Date", Y1Label: "Bitcoin Price", Y2Label: "Daily Transferred Value (USD)",
			LogY: true, DataSource: srcCoinMetrics,
			Series: []Series{
				priceSeries(),
				{Name: "Adjusted Transfer Value", Column: domain.ColTxTfrValAdjUSD, Axis: AxisSecondary},
				{Name: "Transfer Value 30 Day MA", Column: domain.MovingAvgCol(30, domain.ColTxTfrValAdjUSD), Axis: AxisSecondary},
				{Name: "Transfer Value 365 Day MA", Column: domain.MovingAvgCol(365, domain.ColTxTfrValAdjUSD), Axis: AxisSecondary},
			},
			Events: historyEvents,
		},
		{
			ID: "Bitcoin_Miner_Revenue", Title: "Bitcoin Miner Revenue",
			XLabel: "Date", Y1Label: "Bitcoin Price", Y2Label: "Daily Miner Revenue (USD)",
			LogY: true, DataSource: srcCoinMetrics,
			Series: []Series{
				priceSeries(),
				{Name: "Miner Revenue", Column: domain.ColRevUSD, Axis: AxisSecondary},
				{Name: "Revenue 30 Day MA", Column: domain.MovingAvgCol(30, domain.ColRevUSD), Axis: AxisSecondary},
				{Name: "Revenue 365 Day MA", Column: domain.MovingAvgCol(365, domain.ColRevUSD), Axis: AxisSecondary},
			},
			Events: historyEvents,
		},
		{
			ID: "Bitcoin_Active_Addresses", Title: "Bitcoin Active Addresses",
			XLabel: "Date", Y1Label: "Bitcoin Price", Y2Label: "Daily Active Addresses",
			LogY: true, DataSource: srcCoinMetrics,
			Series: []Series{
				priceSeries(),
				{Name: "Active Addresses", Column: "AdrActCnt", Axis: AxisSecondary},
				{Name: "Active Addresses 30 Day MA", Column: domain.MovingAvgCol(30, "AdrActCnt"), Axis: AxisSecondary},
				{Name: "Active Addresses 365 Day MA", Column: domain.MovingAvgCol(365, "AdrActCnt"), Axis: AxisSecondary},
			},
			Events: historyEvents,
		},
		{
			ID: "Bitcoin_Transaction_Fee", Title: "Bitcoin Transaction Fees",
			XLabel: "Date", Y1Label: "Bitcoin Price", Y2Label: "Mean Fee (USD)",
			LogY: true, DataSource: srcCoinMetrics,
			Series: []Series{
				priceSeries(),
				{Name: "Mean Fee", Column: "FeeMeanUSD", Axis: AxisSecondary},
				{Name: "Mean Fee 30 Day MA", Column: domain.MovingAvgCol(30, "FeeMeanUSD"), Axis: AxisSecondary},
				{Name: "Mean Fee 365 Day MA", Column: domain.MovingAvgCol(365, "FeeMeanUSD"), Axis: AxisSecondary},
			},
			Events: historyEvents,
		},
		{
			ID: "Bitcoin_Transaction_Size", Title: "Bitcoin Mean Transfer Size",
			XLabel: "Date", Y1Label: "Bitcoin Price", Y2Label: "Mean Transfer Value (USD)",
			LogY: true, DataSource: srcCoinMetrics,
			Series: []Series{
				priceSeries(),
				{Name: "Mean Transfer Value", Column: "TxTfrValMeanUSD", Axis: AxisSecondary},
				{Name: "Mean Transfer 7 Day MA", Column: domain.MovingAvgCol(7, "TxTfrValMeanUSD"), Axis: AxisSecondary},
				{Name: "Median Transfer 30 Day MA", Column: domain.MovingAvgCol(30, "TxTfrValMedUSD"), Axis: AxisSecondary},
			},
			Events: historyEvents,
		},
		{
			ID: "Bitcoin_1_Year_Supply", Title: "Bitcoin 1+ Year Dormant Supply",
			XLabel: "Date", Y1Label: "Bitcoin Price", Y2Label: "% of Supply Dormant 1yr+",
			LogY: true, DataSource: srcCoinMetrics,
			Series: []Series{
				priceSeries(),
				{Name: "1yr+ Dormant Supply %", Column: domain.ColSupplyPct1YearPlus, Axis: AxisSecondary},
			},
			Events: []Event{halvingEvents},
		},
		{
			ID: "Bitcoin_Supply_Age", Title: "Bitcoin Liquid vs Illiquid Supply",
			XLabel: "Date", Y1Label: "Bitcoin Supply", Y2Label: "Bitcoin Price",
			LogY: true, DataSource: srcCoinMetrics,
			Series: []Series{
				{Name: "Circulating Supply", Column: domain.ColSplyCur, Axis: AxisPrimary},
				{Name: "Illiquid Supply", Column: domain.ColIlliquidSupply, Axis: AxisPrimary},
				{Name: "Liquid Supply", Column: domain.ColLiquidSupply, Axis: AxisPrimary},
				{Name: "Bitcoin Price", Column: domain.ColPriceUSD, Axis: AxisSecondary},
			},
			Events: []Event{halvingEvents},
		},
		{
			ID: "Bitcoin_Thermocap_Multiples", Title: "Bitcoin Thermocap Multiples",
			XLabel: "Date", Y1Label: "Bitcoin Price", Y2Label: "Thermocap Multiple",
			LogY: true, DataSource: srcCoinMetrics,
			Series: []Series{
				priceSeries(),
				{Name: "Thermocap Price", Column: domain.ColThermocapPrice, Axis: AxisPrimary},
				{Name: "Thermocap Price x4", Column: domain.ThermocapPriceMultipleCol(4), Axis: AxisPrimary},
				{Name: "Thermocap Price x8", Column: domain.ThermocapPriceMultipleCol(8), Axis: AxisPrimary},
				{Name: "Thermocap Price x16", Column: domain.ThermocapPriceMultipleCol(16), Axis: AxisPrimary},
				{Name: "Thermocap Price x32", Column: domain.ThermocapPriceMultipleCol(32), Axis: AxisPrimary},
				{Name: "Thermocap Multiple", Column: domain.ColThermocapMultiple, Axis: AxisSecondary},
			},
			Events: []Event{halvingEvents},
		},
		{
			ID: "Bitcoin_Realized_Price", Title: "Bitcoin Realized Price Multiples",
			XLabel: "Date", Y1Label: "Bitcoin Price", LogY: true, DataSource: srcCoinMetrics,
			Series: []Series{
				priceSeries(),
				{Name: "Realized Price", Column: domain.ColRealisedPrice, Axis: AxisPrimary},
				{Name: "Realized Price x3", Column: domain.RealizedcapMultipleCol(3), Axis: AxisPrimary},
				{Name: "Realized Price x5", Column: domain.RealizedcapMultipleCol(5), Axis: AxisPrimary},
				{Name: "Realized Price x7", Column: domain.RealizedcapMultipleCol(7), Axis: AxisPrimary},
			},
			Events: []Event{halvingEvents},
		},
		{
			ID: "Bitcoin_NVT_Price", Title: "Bitcoin NVT Price",
			XLabel: "Date", Y1Label: "Bitcoin Price", Y2Label: "NVT Multiple",
			LogY: true, DataSource: srcCoinMetrics,
			Series: []Series{
				priceSeries(),
				{Name: "NVT Price", Column: domain.ColNVTPrice, Axis: AxisPrimary},
				{Name: "NVT Price 30 Day MA", Column: domain.MovingAvgCol(30, domain.ColNVTPrice), Axis: AxisPrimary},
				{Name: "NVT Price Free Float", Column: domain.ColNVTPriceAdj, Axis: AxisPrimary},
				{Name: "NVT Multiple", Column: "nvt_price_multiple", Axis: AxisSecondary},
			},
			Events: []Event{halvingEvents},
		},
		{
			ID: "Bitcoin_NUPL", Title: "Bitcoin Net Unrealized Profit/Loss",
			XLabel: "Date", Y1Label: "Bitcoin Price", Y2Label: "NUPL",
			LogY: true, DataSource: srcCoinMetrics,
			Series: []Series{
				priceSeries(),
				{Name: "NUPL", Column: domain.ColNUPL, Axis: AxisSecondary},
				{Name: "MVRV Ratio", Column: domain.ColMVRVRatio, Axis: AxisSecondary},
			},
			Events: []Event{halvingEvents},
		},
		{
			ID: "Bitcoin_Production_Price", Title: "Bitcoin Production Price",
			XLabel: "Date", Y1Label: "Bitcoin Price", Y2Label: "Energy Value Multiple",
			LogY: true, DataSource: srcCoinMetrics,
			Series: []Series{
				priceSeries(),
				{Name: "Energy Value", Column: domain.ColLaggedEnergyValue, Axis: AxisPrimary},
				{Name: "Bitcoin Production Cost", Column: domain.ColProductionCost, Axis: AxisPrimary},
				{Name: "Electricity Cost", Column: domain.ColElectricityCost, Axis: AxisPrimary},
				{Name: "Energy Value Multiple", Column: domain.ColEnergyValueMultiple, Axis: AxisSecondary},
			},
			Events: []Event{halvingEvents},
		},
		{
			ID: "Bitcoin_S2F_Price", Title: "Bitcoin Stock-To-Flow Price",
			XLabel: "Date", Y1Label: "Bitcoin Price", Y2Label: "Stock-To-Flow Multiple",
			LogY: true, DataSource: srcCoinMetrics,
			Series: []Series{
				priceSeries(),
				{Name: "Stock-To-Flow Price", Column: domain.ColSFPredictedPrice, Axis: AxisPrimary},
				{Name: "Stock-To-Flow Price 365 Day MA", Column: domain.ColSFPredictedPriceMA, Axis: AxisPrimary},
				{Name: "Stock-To-Flow Multiple", Column: domain.ColSFMultiple, Axis: AxisSecondary},
			},
			Events: []Event{halvingEvents},
		},
		{
			ID: "Bitcoin_Hashrate_Price", Title: "Bitcoin Hashrate-Implied Price",
			XLabel: "Date", Y1Label: "Bitcoin Price", Y2Label: "Hayes Network Price",
			LogY: true, DataSource: srcCoinMetrics,
			Series: []Series{
				priceSeries(),
				{Name: "Hayes Network Price", Column: domain.ColHayesNetworkPrice, Axis: AxisPrimary},
				{Name: "Daily Energy Use (kWh)", Column: domain.ColEnergyConsumptionKWh, Axis: AxisSecondary},
			},
			Events: []Event{halvingEvents},
		},
		{
			ID: "Bitcoin_Sats_Per_Dollar", Title: "Satoshis Per Dollar",
			XLabel: "Date", Y1Label: "Sats Per Dollar", LogY: true, DataSource: srcCoinMetrics,
			Series: []Series{
				{Name: "Sats Per Dollar", Column: domain.ColSatPerDollar, Axis: AxisPrimary},
			},
			Events: historyEvents,
		},
		{
			ID: "Bitcoin_Macro_Supply", Title: "Bitcoin vs Fiat M0 Supply",
			XLabel: "Date", Y1Label: "Implied Bitcoin Price", LogY: true, DataSource: srcMixed,
			Series: []Series{
				priceSeries(),
				{Name: "US M0", Column: domain.CountryBTCPriceCol("United States"), Axis: AxisPrimary},
				{Name: "China M0", Column: domain.CountryBTCPriceCol("China"), Axis: AxisPrimary},
				{Name: "Eurozone M0", Column: domain.CountryBTCPriceCol("Eurozone"), Axis: AxisPrimary},
				{Name: "Japan M0", Column: domain.CountryBTCPriceCol("Japan"), Axis: AxisPrimary},
				{Name: "Global Fiat Supply", Column: domain.CountryBTCPriceCol("Global Fiat Supply"), Axis: AxisPrimary},
			},
			Events: []Event{halvingEvents},
		},
		{
			ID: "Bitcoin_M0", Title: "Bitcoin Price For Fiat M0 Parity",
			XLabel: "Date", Y1Label: "Implied Bitcoin Price", LogY: true, DataSource: srcMixed,
			Series: []Series{
				priceSeries(),
				{Name: "United Kingdom M0", Column: domain.CountryBTCPriceCol("United Kingdom"), Axis: AxisPrimary},
				{Name: "Switzerland M0", Column: domain.CountryBTCPriceCol("Switzerland"), Axis: AxisPrimary},
				{Name: "India M0", Column: domain.CountryBTCPriceCol("India"), Axis: AxisPrimary},
				{Name: "Australia M0", Column: domain.CountryBTCPriceCol("Australia"), Axis: AxisPrimary},
				{Name: "Russia M0", Column: domain.CountryBTCPriceCol("Russia"), Axis: AxisPrimary},
				{Name: "Hong Kong M0", Column: domain.CountryBTCPriceCol("Hong Kong"), Axis: AxisPrimary},
			},
			Events: []Event{halvingEvents},
		},
		{
			ID: "Bitcoin_Gold", Title: "Bitcoin Price For Gold Market Parity",
			XLabel: "Date", Y1Label: "Implied Bitcoin Price", LogY: true, DataSource: srcMixed,
			Series: []Series{
				priceSeries(),
				{Name: "Gold Market Cap", Column: domain.ColGoldMarketcapBTCPrice, Axis: AxisPrimary},
				{Name: "Silver Market Cap", Column: domain.ColSilverMarketcapBTCPrice, Axis: AxisPrimary},
				{Name: "Gold Jewellery", Column: domain.GoldCategoryBTCPriceCol("Jewellery"), Axis: AxisPrimary},
				{Name: "Gold Private Investment", Column: domain.GoldCategoryBTCPriceCol("Private Investment"), Axis: AxisPrimary},
				{Name: "Gold Country Holdings", Column: domain.GoldCategoryBTCPriceCol("Official Country Holdings"), Axis: AxisPrimary},
			},
			Events: []Event{halvingEvents},
		},
		{
			ID: "Bitcoin_Equities", Title: "Bitcoin Price For Equity Market Cap Parity",
			XLabel: "Date", Y1Label: "Implied Bitcoin Price", LogY: true, DataSource: srcMixed,
			Series: []Series{
				priceSeries(),
				{Name: "Apple", Column: domain.TickerBTCPriceCol("AAPL"), Axis: AxisPrimary},
				{Name: "Microsoft", Column: domain.TickerBTCPriceCol("MSFT"), Axis: AxisPrimary},
				{Name: "Alphabet", Column: domain.TickerBTCPriceCol("GOOGL"), Axis: AxisPrimary},
				{Name: "Amazon", Column: domain.TickerBTCPriceCol("AMZN"), Axis: AxisPrimary},
				{Name: "NVIDIA", Column: domain.TickerBTCPriceCol("NVDA"), Axis: AxisPrimary},
				{Name: "Tesla", Column: domain.TickerBTCPriceCol("TSLA"), Axis: AxisPrimary},
				{Name: "Meta", Column: domain.TickerBTCPriceCol("META"), Axis: AxisPrimary},
			},
			Events: []Event{halvingEvents},
		},
		{
			ID: "Bitcoin_YOY_Return", Title: "Bitcoin Year Over Year Return",
			XLabel: "Date", Y1Label: "YOY Return (%)", Y2Label: "Bitcoin Price",
			DataSource: srcCoinMetrics,
			Series: []Series{
				{Name: "Bitcoin YOY Return", Column: domain.YOYChangeCol(domain.ColPriceUSD), Axis: AxisPrimary},
				{Name: "Bitcoin Price", Column: domain.ColPriceUSD, Axis: AxisSecondary},
			},
			Events: []Event{halvingEvents},
		},
		{
			ID: "Bitcoin_CAGR", Title: "Bitcoin Compound Annual Growth Rate",
			XLabel: "Date", Y1Label: "CAGR (%)", Y2Label: "Bitcoin Price",
			DataSource: srcCoinMetrics,
			Series: []Series{
				{Name: "Bitcoin 2 Year CAGR", Column: domain.CAGRCol(domain.ColPriceUSD, 2), Axis: AxisPrimary},
				{Name: "Bitcoin 4 Year CAGR", Column: domain.CAGRCol(domain.ColPriceUSD, 4), Axis: AxisPrimary},
				{Name: "Bitcoin Price", Column: domain.ColPriceUSD, Axis: AxisSecondary},
			},
			Events: []Event{halvingEvents},
		},
		{
			ID: "Bitcoin_CAGR_Comparison", Title: "4 Year CAGR Comparison",
			XLabel: "Date", Y1Label: "CAGR (%)", DataSource: srcMixed,
			Series: []Series{
				{Name: "Bitcoin", Column: domain.CAGRCol(domain.ColPriceUSD, 4), Axis: AxisPrimary},
				{Name: "Nasdaq", Column: domain.CAGRCol(domain.CloseCol("^IXIC"), 4), Axis: AxisPrimary},
				{Name: "S&P500", Column: domain.CAGRCol(domain.CloseCol("^GSPC"), 4), Axis: AxisPrimary},
				{Name: "Gold Futures", Column: domain.CAGRCol(domain.CloseCol("GC=F"), 4), Axis: AxisPrimary},
				{Name: "TLT Treasury Bond ETF", Column: domain.CAGRCol(domain.CloseCol("TLT"), 4), Axis: AxisPrimary},
			},
		},
		{
			ID: "Bitcoin_YTD_Return_Comparison", Title: "YTD Return Comparison",
			XLabel: "Date", Y1Label: "YTD Return (%)", DataSource: srcMixed,
			Series: []Series{
				{Name: "Bitcoin", Column: domain.YTDChangeCol(domain.ColPriceUSD), Axis: AxisPrimary},
				{Name: "Nasdaq", Column: domain.YTDChangeCol(domain.CloseCol("^IXIC")), Axis: AxisPrimary},
				{Name: "S&P500", Column: domain.YTDChangeCol(domain.CloseCol("^GSPC")), Axis: AxisPrimary},
				{Name: "XLF Financials ETF", Column: domain.YTDChangeCol(domain.CloseCol("XLF")), Axis: AxisPrimary},
				{Name: "XLE Energy ETF", Column: domain.YTDChangeCol(domain.CloseCol("XLE")), Axis: AxisPrimary},
				{Name: "FANG+ ETF", Column: domain.YTDChangeCol(domain.CloseCol("FANG.AX")), Axis: AxisPrimary},
				{Name: "BITQ Crypto Industry ETF", Column: domain.YTDChangeCol(domain.CloseCol("BITQ")), Axis: AxisPrimary},
				{Name: "Gold Futures", Column: domain.YTDChangeCol(domain.CloseCol("GC=F")), Axis: AxisPrimary},
				{Name: "US Dollar Futures", Column: domain.YTDChangeCol(domain.CloseCol("DX=F")), Axis: AxisPrimary},
				{Name: "TLT Treasury Bond ETF", Column: domain.YTDChangeCol(domain.CloseCol("TLT")), Axis: AxisPrimary},
			},
		},
		{
			ID: "Bitcoin_MTD_Return_Comparison", Title: "MTD Return Comparison",
			XLabel: "Date", Y1Label: "MTD Return (%)", DataSource: srcMixed,
			Series: []Series{
				{Name: "Bitcoin", Column: domain.MTDChangeCol(domain.ColPriceUSD), Axis: AxisPrimary},
				{Name: "Nasdaq", Column: domain.MTDChangeCol(domain.CloseCol("^IXIC")), Axis: AxisPrimary},
				{Name: "S&P500", Column: domain.MTDChangeCol(domain.CloseCol("^GSPC")), Axis: AxisPrimary},
				{Name: "XLF Financials ETF", Column: domain.MTDChangeCol(domain.CloseCol("XLF")), Axis: AxisPrimary},
				{Name: "XLE Energy ETF", Column: domain.MTDChangeCol(domain.CloseCol("XLE")), Axis: AxisPrimary},
				{Name: "FANG+ ETF", Column: domain.MTDChangeCol(domain.CloseCol("FANG.AX")), Axis: AxisPrimary},
				{Name: "BITQ Crypto Industry ETF", Column: domain.MTDChangeCol(domain.CloseCol("BITQ")), Axis: AxisPrimary},
				{Name: "Gold Futures", Column: domain.MTDChangeCol(domain.CloseCol("GC=F")), Axis: AxisPrimary},
				{Name: "US Dollar Futures", Column: domain.MTDChangeCol(domain.CloseCol("DX=F")), Axis: AxisPrimary},
				{Name: "TLT Treasury Bond ETF", Column: domain.MTDChangeCol(domain.CloseCol("TLT")), Axis: AxisPrimary},
			},
		},
		{
			ID: "Bitcoin_Volatility", Title: "Bitcoin Realized Volatility",
			XLabel: "Date", Y1Label: "Annualized Volatility (%)", Y2Label: "Bitcoin Price",
			DataSource: srcCoinMetrics,
			Series: []Series{
				{Name: "30 Day Volatility", Column: domain.VolatilityCol(domain.ColPriceUSD, 30), Axis: AxisPrimary},
				{Name: "90 Day Volatility", Column: domain.VolatilityCol(domain.ColPriceUSD, 90), Axis: AxisPrimary},
				{Name: "365 Day Volatility", Column: domain.VolatilityCol(domain.ColPriceUSD, 365), Axis: AxisPrimary},
				{Name: "Bitcoin Price", Column: domain.ColPriceUSD, Axis: AxisSecondary},
			},
		},
		{
			ID: "Bitcoin_ATH_Drawdown", Title: "Bitcoin Drawdown From All-Time High",
			XLabel: "Days Since Cycle High", Y1Label: "Drawdown (%)",
			DataSource: srcCoinMetrics, Family: cycles.FamilyDrawdown,
		},
		{
			ID: "Bitcoin_Cycle_Low", Title: "Bitcoin Return Since Cycle Low",
			XLabel: "Days Since Cycle Low", Y1Label: "Return (%)", LogY: true,
			DataSource: srcCoinMetrics, Family: cycles.FamilyCycleLow,
		},
		{
			ID: "Bitcoin_Halving_Cycle", Title: "Bitcoin Return Since Halving",
			XLabel: "Days Since Halving", Y1Label: "Return (%)", LogY: true,
			DataSource: srcCoinMetrics, Family: cycles.FamilyHalving,
		},
	}
}
