// Package insight maps the latest indicator values of an analyzed series to a
// strategy/risk/recommendation summary through deterministic, ordered rules.
// The rule table, risk bands and guidance texts live in rules.go so that rule
// precedence is a reviewable artifact rather than implicit branch order.
package insight

import (
	"time"

	"github.com/google/uuid"
	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/stock-insight/internal/indicator"
	"github.com/rxtech-lab/stock-insight/internal/types"
	"github.com/rxtech-lab/stock-insight/pkg/errors"
)

// Engine builds insight summaries. It is stateless; a fresh summary is built
// per analysis run and never mutated afterwards.
type Engine struct{}

// NewEngine creates a new insight engine.
func NewEngine() *Engine {
	return &Engine{}
}

// BuildSummary derives the full insight summary for a series and its computed
// indicator set. It fails only for an empty series or a misaligned indicator
// set; a short series produces a complete summary with degraded content.
func (e *Engine) BuildSummary(ticker string, timeframe types.Timeframe, series types.Series, set *types.IndicatorSet) (*types.InsightSummary, error) {
	if len(series) == 0 {
		return nil, errors.NewInsufficientDataError(1, 0, ticker, "cannot build summary from an empty series")
	}

	if set == nil || set.Length() != len(series) {
		return nil, errors.Newf(errors.ErrCodeIndicatorAlignment,
			"indicator set does not cover the series (series=%d)", len(series))
	}

	currentPrice := series.Last().Close
	periodHigh := series.PeriodHigh()
	periodLow := series.PeriodLow()
	targets := computeTargets(currentPrice, periodLow, periodHigh)

	in := ruleInput{
		latestRSI:    set.LatestRSI(),
		latestSMA:    set.LatestSMA(),
		currentPrice: currentPrice,
	}

	recommendation, reason := evaluateRecommendation(in)
	risk := evaluateRisk(set.Volatility)
	trend := evaluateTrend(in)
	condition := evaluateRSICondition(set.LatestRSI())
	momentum := evaluateMomentum(series)

	changeFromLow := 0.0
	momentumDelta := 0.0

	if len(series) > 1 {
		changeFromLow = (currentPrice - periodLow.Price) / periodLow.Price * 100
		momentumDelta = currentPrice - series[len(series)-2].Close
	}

	annualized := optional.None[float64]()
	if set.Volatility.IsSome() {
		annualized = optional.Some(indicator.Annualize(set.Volatility.Unwrap()))
	}

	return &types.InsightSummary{
		ID:                      uuid.NewString(),
		Ticker:                  ticker,
		Timeframe:               timeframe,
		GeneratedAt:             time.Now().UTC(),
		CurrentPrice:            currentPrice,
		PeriodHigh:              periodHigh,
		PeriodLow:               periodLow,
		ChangeFromLowPct:        changeFromLow,
		MomentumDelta:           momentumDelta,
		SMAWindow:               set.SMAWindow,
		RSIWindow:               set.RSIWindow,
		LatestSMA:               set.LatestSMA(),
		LatestRSI:               set.LatestRSI(),
		Volatility:              set.Volatility,
		AnnualizedVolatilityPct: annualized,
		LongTermStrategy:        longTermText(trend, risk, targets),
		ShortTermStrategy:       shortTermText(condition, momentum, targets),
		RiskLevel:               risk,
		Recommendation:          recommendation,
		RecommendationReason:    reason,
		Targets:                 targets,
	}, nil
}
