package types

import (
	"time"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
)

// Recommendation is the trading action the insight rules resolve to.
type Recommendation string

const (
	RecommendationBuy  Recommendation = "buy"
	RecommendationSell Recommendation = "sell"
	RecommendationHold Recommendation = "hold"
)

// RiskLevel rates the instrument's volatility relative to its own price scale.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// PriceTargets are the derived price levels referenced by the strategy text.
// They are money amounts, so they are computed and carried as decimals.
type PriceTargets struct {
	// AccumulateBelow is the long-term pullback accumulation level.
	AccumulateBelow decimal.Decimal
	// EntryNear is the short-term entry level.
	EntryNear decimal.Decimal
	// StopLoss is the protective stop, anchored at the period low.
	StopLoss decimal.Decimal
	// BreakoutAbove is the period high; a close above it signals a breakout.
	BreakoutAbove decimal.Decimal
	// RallyTarget is the projected level if the breakout plays out.
	RallyTarget decimal.Decimal
}

// InsightSummary is the structured result of one analysis run. It is built
// once per run and not mutated afterwards.
type InsightSummary struct {
	// ID is the unique identifier for this analysis run.
	ID string
	// Ticker is the analyzed instrument symbol.
	Ticker string
	// Timeframe is the historical window the series covers.
	Timeframe Timeframe
	// GeneratedAt is when this summary was built.
	GeneratedAt time.Time

	// CurrentPrice is the close of the last point.
	CurrentPrice float64
	// PeriodHigh and PeriodLow are the series extremes and their dates.
	PeriodHigh PricePeak
	PeriodLow  PricePeak
	// ChangeFromLowPct is the percent change of the current price from the
	// period low. Zero for single-point series.
	ChangeFromLowPct float64
	// MomentumDelta is the last close minus the prior close. Zero for
	// single-point series.
	MomentumDelta float64

	// SMAWindow and RSIWindow are the windows the indicators were computed
	// with, carried so report labels match a configured run.
	SMAWindow int
	RSIWindow int
	// LatestSMA and LatestRSI are the indicator values at the last point.
	LatestSMA optional.Option[float64]
	LatestRSI optional.Option[float64]
	// Volatility is the per-period standard deviation of simple returns.
	Volatility optional.Option[float64]
	// AnnualizedVolatilityPct is the volatility scaled by sqrt(252) trading
	// days, as a percentage.
	AnnualizedVolatilityPct optional.Option[float64]

	// LongTermStrategy and ShortTermStrategy are deterministic guidance texts
	// derived from the trend/risk and RSI/momentum decision tables.
	LongTermStrategy  string
	ShortTermStrategy string
	// RiskLevel rates volatility as a fraction of the current price.
	RiskLevel RiskLevel
	// Recommendation is the first matching rule of the ordered rule table.
	Recommendation Recommendation
	// RecommendationReason names the rule that fired.
	RecommendationReason string
	// Targets are the price levels the strategy text references.
	Targets PriceTargets
}
