package insight

import (
	"fmt"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"

	"github.com/rxtech-lab/stock-insight/internal/types"
)

const (
	// RSIOverboughtThreshold and RSIOversoldThreshold are the RSI extremes the
	// recommendation rules fire on.
	RSIOverboughtThreshold = 70.0
	RSIOversoldThreshold   = 30.0

	// LowRiskVolatilityRatio and HighRiskVolatilityRatio band the per-period
	// volatility, expressed as a fraction of the instrument's own price scale:
	// below 1% is low risk, 1%-3% medium, above 3% high.
	LowRiskVolatilityRatio  = 0.01
	HighRiskVolatilityRatio = 0.03
)

// MsgInsufficientTrendData is the documented degradation message used when the
// series is too short for any trend indicator.
const MsgInsufficientTrendData = "insufficient data for trend analysis"

// Pullback and breakout ratios for the derived price targets.
var (
	accumulatePullbackRatio = decimal.NewFromFloat(0.90)
	entryPullbackRatio      = decimal.NewFromFloat(0.95)
	breakoutRallyRatio      = decimal.NewFromFloat(1.10)
)

// ruleInput is everything the recommendation rules may inspect. The
// recommendation is a pure function of these three values.
type ruleInput struct {
	latestRSI    optional.Option[float64]
	latestSMA    optional.Option[float64]
	currentPrice float64
}

// recommendationRule is one row of the ordered rule table.
type recommendationRule struct {
	name    string
	matches func(in ruleInput) bool
	action  types.Recommendation
	reason  func(in ruleInput) string
}

// recommendationRules is the ordered rule table; the first matching row wins.
// RSI extremes are checked before the SMA trend so that an overbought reading
// forces SELL even in an uptrend.
var recommendationRules = []recommendationRule{
	{
		name: "rsi_overbought",
		matches: func(in ruleInput) bool {
			return in.latestRSI.IsSome() && in.latestRSI.Unwrap() >= RSIOverboughtThreshold
		},
		action: types.RecommendationSell,
		reason: func(in ruleInput) string {
			return fmt.Sprintf("RSI overbought (value=%.2f)", in.latestRSI.Unwrap())
		},
	},
	{
		name: "rsi_oversold",
		matches: func(in ruleInput) bool {
			return in.latestRSI.IsSome() && in.latestRSI.Unwrap() <= RSIOversoldThreshold
		},
		action: types.RecommendationBuy,
		reason: func(in ruleInput) string {
			return fmt.Sprintf("RSI oversold (value=%.2f)", in.latestRSI.Unwrap())
		},
	},
	{
		name: "uptrend",
		matches: func(in ruleInput) bool {
			return in.latestSMA.IsSome() && in.currentPrice > in.latestSMA.Unwrap()
		},
		action: types.RecommendationBuy,
		reason: func(in ruleInput) string {
			return fmt.Sprintf("price %.2f above SMA %.2f", in.currentPrice, in.latestSMA.Unwrap())
		},
	},
	{
		name: "downtrend",
		matches: func(in ruleInput) bool {
			return in.latestSMA.IsSome() && in.currentPrice < in.latestSMA.Unwrap()
		},
		action: types.RecommendationSell,
		reason: func(in ruleInput) string {
			return fmt.Sprintf("price %.2f below SMA %.2f", in.currentPrice, in.latestSMA.Unwrap())
		},
	},
}

// evaluateRecommendation walks the rule table in order and returns the first
// matching action. It always resolves: the fallback is HOLD.
func evaluateRecommendation(in ruleInput) (types.Recommendation, string) {
	for _, rule := range recommendationRules {
		if rule.matches(in) {
			return rule.action, rule.reason(in)
		}
	}

	return types.RecommendationHold, "insufficient signal"
}

// evaluateRisk bands the volatility. Return-based volatility is already a
// fraction of the price scale, so it is compared against the ratio constants
// directly. Undefined volatility is rated medium as a neutral default.
func evaluateRisk(volatility optional.Option[float64]) types.RiskLevel {
	if volatility.IsNone() {
		return types.RiskLevelMedium
	}

	ratio := volatility.Unwrap()

	switch {
	case ratio < LowRiskVolatilityRatio:
		return types.RiskLevelLow
	case ratio <= HighRiskVolatilityRatio:
		return types.RiskLevelMedium
	default:
		return types.RiskLevelHigh
	}
}

// computeTargets derives the price levels the strategy text references.
func computeTargets(currentPrice float64, low, high types.PricePeak) types.PriceTargets {
	price := decimal.NewFromFloat(currentPrice)

	return types.PriceTargets{
		AccumulateBelow: price.Mul(accumulatePullbackRatio).Round(2),
		EntryNear:       price.Mul(entryPullbackRatio).Round(2),
		StopLoss:        decimal.NewFromFloat(low.Price).Round(2),
		BreakoutAbove:   decimal.NewFromFloat(high.Price).Round(2),
		RallyTarget:     price.Mul(breakoutRallyRatio).Round(2),
	}
}

// trendDirection is the current price's position relative to the SMA.
type trendDirection int

const (
	trendUnknown trendDirection = iota
	trendAbove
	trendBelow
	trendFlat
)

func evaluateTrend(in ruleInput) trendDirection {
	if in.latestSMA.IsNone() {
		return trendUnknown
	}

	switch sma := in.latestSMA.Unwrap(); {
	case in.currentPrice > sma:
		return trendAbove
	case in.currentPrice < sma:
		return trendBelow
	default:
		return trendFlat
	}
}

// rsiCondition is the latest RSI bucketed by the extreme thresholds.
type rsiCondition int

const (
	rsiUnknown rsiCondition = iota
	rsiOverbought
	rsiOversold
	rsiNeutral
)

func evaluateRSICondition(latestRSI optional.Option[float64]) rsiCondition {
	if latestRSI.IsNone() {
		return rsiUnknown
	}

	switch value := latestRSI.Unwrap(); {
	case value >= RSIOverboughtThreshold:
		return rsiOverbought
	case value <= RSIOversoldThreshold:
		return rsiOversold
	default:
		return rsiNeutral
	}
}

// momentumDirection is the sign of the last-point close delta.
type momentumDirection int

const (
	momentumUnknown momentumDirection = iota
	momentumUp
	momentumDown
	momentumFlat
)

func evaluateMomentum(series types.Series) momentumDirection {
	if len(series) < 2 {
		return momentumUnknown
	}

	delta := series[len(series)-1].Close - series[len(series)-2].Close

	switch {
	case delta > 0:
		return momentumUp
	case delta < 0:
		return momentumDown
	default:
		return momentumFlat
	}
}

// longTermGuidance is the trend x risk decision table for the long-term
// strategy text.
var longTermGuidance = map[trendDirection]map[types.RiskLevel]string{
	trendAbove: {
		types.RiskLevelLow:    "Price holds above its moving average with low volatility; stay invested and add on dips.",
		types.RiskLevelMedium: "Price holds above its moving average; accumulate gradually and size for moderate swings.",
		types.RiskLevelHigh:   "Price holds above its moving average but volatility is elevated; add only on deep pullbacks.",
	},
	trendBelow: {
		types.RiskLevelLow:    "Price sits below its moving average in a quiet tape; wait for a reclaim before committing.",
		types.RiskLevelMedium: "Price sits below its moving average; reduce exposure until the trend repairs.",
		types.RiskLevelHigh:   "Price sits below its moving average with high volatility; stand aside until the trend stabilizes.",
	},
	trendFlat: {
		types.RiskLevelLow:    "Price is pinned to its moving average with low volatility; hold and wait for direction.",
		types.RiskLevelMedium: "Price is pinned to its moving average; hold existing positions and avoid new entries.",
		types.RiskLevelHigh:   "Price is pinned to its moving average amid high volatility; keep position sizes small.",
	},
}

// shortTermGuidance is the RSI condition x momentum decision table for the
// short-term strategy text.
var shortTermGuidance = map[rsiCondition]map[momentumDirection]string{
	rsiOverbought: {
		momentumUp:   "Overbought with rising momentum; caution, chasing here risks a sharp pullback.",
		momentumDown: "Overbought and momentum is already fading; take profits into strength.",
		momentumFlat: "Overbought with stalling momentum; tighten stops.",
	},
	rsiOversold: {
		momentumUp:   "Oversold and momentum is turning up; a relief bounce is developing.",
		momentumDown: "Oversold but still falling; wait for momentum to turn before entering.",
		momentumFlat: "Oversold and basing; watch for a momentum turn as an entry trigger.",
	},
	rsiNeutral: {
		momentumUp:   "Neutral momentum with a positive last session; trade the range until a breakout confirms.",
		momentumDown: "Neutral momentum with a negative last session; no edge, keep entries small.",
		momentumFlat: "Neutral momentum and a flat last session; wait for a decisive move.",
	},
}

// longTermText composes the long-term strategy from the decision table plus
// the accumulation target. Unknown trend degrades to the documented message.
func longTermText(trend trendDirection, risk types.RiskLevel, targets types.PriceTargets) string {
	if trend == trendUnknown {
		return fmt.Sprintf("Long-term: %s.", MsgInsufficientTrendData)
	}

	return fmt.Sprintf("%s Accumulate on pullbacks to %s and monitor macro conditions.",
		longTermGuidance[trend][risk], targets.AccumulateBelow.StringFixed(2))
}

// shortTermText composes the short-term strategy from the decision table plus
// entry, stop and breakout levels. Unknown RSI or momentum degrades to the
// documented message.
func shortTermText(condition rsiCondition, momentum momentumDirection, targets types.PriceTargets) string {
	if condition == rsiUnknown || momentum == momentumUnknown {
		return fmt.Sprintf("Short-term: %s.", MsgInsufficientTrendData)
	}

	return fmt.Sprintf("%s Target entries near %s with a stop at %s; a breakout above %s opens %s.",
		shortTermGuidance[condition][momentum],
		targets.EntryNear.StringFixed(2),
		targets.StopLoss.StringFixed(2),
		targets.BreakoutAbove.StringFixed(2),
		targets.RallyTarget.StringFixed(2))
}
