package domain

import (
	"fmt"
	"strings"
)

// Raw CoinMetrics input columns the pipeline depends on. These names are
// the CoinMetrics community CSV header names and arrive via the frame
// merger; the derive engine validates their presence before running.
const (
	ColPriceUSD       = "PriceUSD"
	ColCapMrktCurUSD  = "CapMrktCurUSD"
	ColCapRealUSD     = "CapRealUSD"
	ColSplyCur        = "SplyCur"
	ColSplyExpFut10yr = "SplyExpFut10yr"
	ColSplyActPct1yr  = "SplyActPct1yr"
	ColHashRate       = "HashRate"
	ColTxCnt          = "TxCnt"
	ColTxTfrValAdjUSD = "TxTfrValAdjUSD"
	ColRevUSD         = "RevUSD"
	ColRevAllTimeUSD  = "RevAllTimeUSD"
	ColIssContNtv     = "IssContNtv"
	ColNVTAdj90       = "NVTAdj90"
	ColNVTAdjFF90     = "NVTAdjFF90"
)

// Derived valuation columns. The exact strings are a stable contract with
// the chart template catalog; renaming one is a breaking change.
const (
	ColMVRVRatio      = "mvrv_ratio"
	ColRealisedPrice  = "realised_price"
	ColNUPL           = "nupl"
	ColNVTPrice       = "nvt_price"
	ColNVTPriceAdj    = "nvt_price_adj"
	Col200DayMultiple = "200_day_multiple"
	ColSatPerDollar   = "sat_per_dollar"
)

// Thermocap family. thermocap_multiple is market cap over cumulative miner
// revenue; the thermocap_price_multiple_N columns are price-denominated
// scalings of thermocap_price. Related but not inverses of each other,
// both are kept as separate outputs.
const (
	ColThermocapPrice    = "thermocap_price"
	ColThermocapMultiple = "thermocap_multiple"
)

// Supply-age columns.
const (
	ColSupplyPct1YearPlus = "supply_pct_1_year_plus"
	ColIlliquidSupply     = "illiquid_supply"
	ColLiquidSupply       = "liquid_supply"
)

// Stock-to-flow columns.
const (
	ColSF                 = "SF"
	ColSFPredictedPrice   = "SF_Predicted_Price"
	ColSFMultiple         = "SF_Multiple"
	ColSFPredictedPriceMA = "SF_Predicted_Price_MA365"
)

// Energy / production-cost columns.
const (
	ColEnergyConsumptionKWh = "Energy_Consumption_kWh"
	ColElectricityCost      = "Electricity_Cost"
	ColProductionCost       = "Bitcoin_Production_Cost"
	ColHayesNetworkPrice    = "Hayes_Network_Price_Per_BTC"
	ColCMEnergyValue        = "CM_Energy_Value"
	ColLaggedEnergyValue    = "Lagged_Energy_Value"
	ColEnergyValueMultiple  = "Energy_Value_Multiple"
)

// Comparative market-size columns.
const (
	ColGoldMarketcapBillionUSD   = "gold_marketcap_billion_usd"
	ColSilverMarketcapBillionUSD = "silver_marketcap_billion_usd"
	ColGoldMarketcapBTCPrice     = "gold_marketcap_btc_price"
	ColSilverMarketcapBTCPrice   = "silver_marketcap_btc_price"
)

// MovingAvgCol names a trailing simple-moving-average column, e.g.
// MovingAvgCol(30, "HashRate") == "30_day_ma_HashRate". Price uses the
// lowercase historical spelling "priceUSD" ("200_day_ma_priceUSD").
func MovingAvgCol(window int, metric string) string {
	if metric == ColPriceUSD {
		metric = "priceUSD"
	}
	return fmt.Sprintf("%d_day_ma_%s", window, metric)
}

// WeekMovingAvgCol names a week-denominated price moving average,
// e.g. "200_week_ma_priceUSD" for the 1400-day window.
func WeekMovingAvgCol(weeks int, metric string) string {
	if metric == ColPriceUSD {
		metric = "priceUSD"
	}
	return fmt.Sprintf("%d_week_ma_%s", weeks, metric)
}

// ThermocapPriceMultipleCol names a fixed-factor thermocap price multiple,
// e.g. "thermocap_price_multiple_8".
func ThermocapPriceMultipleCol(factor int) string {
	return fmt.Sprintf("thermocap_price_multiple_%d", factor)
}

// RealizedcapMultipleCol names a fixed-factor realized-price multiple,
// e.g. "realizedcap_multiple_3".
func RealizedcapMultipleCol(factor int) string {
	return fmt.Sprintf("realizedcap_multiple_%d", factor)
}

// DayChangeCol names a fixed-lag percentage-change column,
// e.g. "PriceUSD_365_day_change".
func DayChangeCol(metric string, days int) string {
	return fmt.Sprintf("%s_%d_day_change", metric, days)
}

// YTDChangeCol names the year-to-date change column, e.g. "PriceUSD_YTD_change".
func YTDChangeCol(metric string) string { return metric + "_YTD_change" }

// MTDChangeCol names the month-to-date change column.
func MTDChangeCol(metric string) string { return metric + "_MTD_change" }

// YOYChangeCol names the year-over-year (365-day) change column.
func YOYChangeCol(metric string) string { return metric + "_YOY_change" }

// CAGRCol names a rolling CAGR column, e.g. "PriceUSD_4_Year_CAGR".
func CAGRCol(metric string, years int) string {
	return fmt.Sprintf("%s_%d_Year_CAGR", metric, years)
}

// PercentileCol names the fixed-window percentile-rank column.
func PercentileCol(metric string) string { return metric + "_percentile" }

// ZScoreCol names the fixed-window z-score column.
func ZScoreCol(metric string) string { return metric + "_zscore" }

// VolatilityCol names a rolling annualized-volatility column,
// e.g. "PriceUSD_volatility_90".
func VolatilityCol(metric string, window int) string {
	return fmt.Sprintf("%s_volatility_%d", metric, window)
}

// CloseCol names the daily-close column for a traded ticker,
// e.g. "AAPL_close", "GC=F_close".
func CloseCol(ticker string) string { return ticker + "_close" }

// MarketCapCol names the market-capitalization column for a stock ticker.
func MarketCapCol(ticker string) string { return ticker + "_MarketCap" }

// TickerBTCPriceCol names the implied-BTC-price column for a stock,
// e.g. "AAPL_mc_btc_price".
func TickerBTCPriceCol(ticker string) string { return ticker + "_mc_btc_price" }

// CountryBTCPriceCol names the implied-BTC-price column for a country's
// M0 supply, e.g. "United_States_btc_price".
func CountryBTCPriceCol(country string) string {
	return strings.ReplaceAll(country, " ", "_") + "_btc_price"
}

// GoldCategoryMarketcapCol names a gold supply-breakdown market cap column,
// e.g. "gold_marketcap_private_investment_billion_usd".
func GoldCategoryMarketcapCol(category string) string {
	return "gold_marketcap_" + slug(category) + "_billion_usd"
}

// GoldCategoryBTCPriceCol names the implied-BTC-price column for a gold
// supply-breakdown category, e.g. "gold_jewellery_marketcap_btc_price".
func GoldCategoryBTCPriceCol(category string) string {
	return "gold_" + slug(category) + "_marketcap_btc_price"
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "_")
}
