package insight

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/stock-insight/internal/indicator"
	"github.com/rxtech-lab/stock-insight/internal/types"
	"github.com/rxtech-lab/stock-insight/pkg/errors"
)

type InsightEngineTestSuite struct {
	suite.Suite

	indicators *indicator.Engine
	engine     *Engine
}

func TestInsightEngineSuite(t *testing.T) {
	suite.Run(t, new(InsightEngineTestSuite))
}

func (suite *InsightEngineTestSuite) SetupTest() {
	engine, err := indicator.NewEngine()
	suite.Require().NoError(err)
	suite.indicators = engine
	suite.engine = NewEngine()
}

func seriesOf(closes ...float64) types.Series {
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	series := make(types.Series, len(closes))

	for i, c := range closes {
		series[i] = types.PricePoint{
			Time:   base.AddDate(0, 0, i),
			Open:   c,
			High:   c * 1.01,
			Low:    c * 0.99,
			Close:  c,
			Volume: 5000,
		}
	}

	return series
}

func (suite *InsightEngineTestSuite) buildSummary(series types.Series) *types.InsightSummary {
	set, err := suite.indicators.Compute(series)
	suite.Require().NoError(err)

	summary, err := suite.engine.BuildSummary("AAPL", types.TimeframeThreeMonth, series, set)
	suite.Require().NoError(err)

	return summary
}

// A monotonically rising 25-point series pins the RSI at 100, so the
// overbought rule must fire before the uptrend rule: SELL despite the trend.
func (suite *InsightEngineTestSuite) TestRisingSeriesSellsOnOverbought() {
	closes := make([]float64, 25)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}

	summary := suite.buildSummary(seriesOf(closes...))

	suite.Require().True(summary.LatestSMA.IsSome())
	suite.InDelta(114.5, summary.LatestSMA.Unwrap(), 1e-9)
	suite.Require().True(summary.LatestRSI.IsSome())
	suite.InDelta(100.0, summary.LatestRSI.Unwrap(), 1e-9)
	suite.Equal(types.RecommendationSell, summary.Recommendation)
	suite.Contains(summary.RecommendationReason, "overbought")
}

// A single-point series produces a complete summary with degraded content.
func (suite *InsightEngineTestSuite) TestSinglePointDegrades() {
	summary := suite.buildSummary(seriesOf(42))

	suite.Equal(42.0, summary.CurrentPrice)
	suite.True(summary.LatestSMA.IsNone())
	suite.True(summary.LatestRSI.IsNone())
	suite.True(summary.Volatility.IsNone())
	suite.True(summary.AnnualizedVolatilityPct.IsNone())
	suite.Equal(types.RecommendationHold, summary.Recommendation)
	suite.Equal(types.RiskLevelMedium, summary.RiskLevel)
	suite.Contains(summary.LongTermStrategy, MsgInsufficientTrendData)
	suite.Contains(summary.ShortTermStrategy, MsgInsufficientTrendData)
	suite.Equal(0.0, summary.ChangeFromLowPct)
	suite.Equal(0.0, summary.MomentumDelta)
}

// The two-point volatility fallback must stay on the fraction-of-price scale
// the risk bands expect: a 2% move over two days is a quiet tape, not
// dollar-scale high risk.
func (suite *InsightEngineTestSuite) TestTwoPointMoveRatesLowRisk() {
	summary := suite.buildSummary(seriesOf(100, 102))

	suite.Require().True(summary.Volatility.IsSome())
	suite.InDelta(1.0/101.0, summary.Volatility.Unwrap(), 1e-9)
	suite.Equal(types.RiskLevelLow, summary.RiskLevel)

	suite.Require().True(summary.AnnualizedVolatilityPct.IsSome())
	suite.InDelta(1.0/101.0*math.Sqrt(252)*100, summary.AnnualizedVolatilityPct.Unwrap(), 1e-9)
}

// A flat series has RSI 50 everywhere, zero volatility and no SMA crossing.
func (suite *InsightEngineTestSuite) TestFlatSeriesHolds() {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100
	}

	summary := suite.buildSummary(seriesOf(closes...))

	suite.Require().True(summary.LatestRSI.IsSome())
	suite.InDelta(50.0, summary.LatestRSI.Unwrap(), 1e-9)
	suite.Require().True(summary.Volatility.IsSome())
	suite.InDelta(0.0, summary.Volatility.Unwrap(), 1e-12)
	suite.Equal(types.RecommendationHold, summary.Recommendation)
	suite.Equal(types.RiskLevelLow, summary.RiskLevel)
}

// When the close lands exactly on the SMA neither trend rule strictly matches,
// so the recommendation falls through to HOLD.
func (suite *InsightEngineTestSuite) TestCloseEqualToSMAHolds() {
	// 19 flat points then one at the same level: SMA of the last 20 equals
	// the close, and the flat tape keeps the RSI at 50.
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100
	}

	summary := suite.buildSummary(seriesOf(closes...))

	suite.Require().True(summary.LatestSMA.IsSome())
	suite.InDelta(summary.CurrentPrice, summary.LatestSMA.Unwrap(), 1e-9)
	suite.Equal(types.RecommendationHold, summary.Recommendation)
}

func (suite *InsightEngineTestSuite) TestUptrendBuysWhenRSINeutral() {
	// Mostly flat series with a late drift up: RSI stays between the
	// extremes while the price finishes above the 20-day mean.
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100
	}

	closes[27] = 100.4
	closes[28] = 100.0
	closes[29] = 100.3

	summary := suite.buildSummary(seriesOf(closes...))

	suite.Require().True(summary.LatestRSI.IsSome())
	rsi := summary.LatestRSI.Unwrap()
	suite.Greater(rsi, RSIOversoldThreshold)
	suite.Less(rsi, RSIOverboughtThreshold)
	suite.Require().True(summary.LatestSMA.IsSome())
	suite.Greater(summary.CurrentPrice, summary.LatestSMA.Unwrap())
	suite.Equal(types.RecommendationBuy, summary.Recommendation)
}

func (suite *InsightEngineTestSuite) TestDowntrendSellsWhenRSINeutral() {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100
	}

	closes[27] = 99.6
	closes[28] = 100.0
	closes[29] = 99.7

	summary := suite.buildSummary(seriesOf(closes...))

	suite.Require().True(summary.LatestRSI.IsSome())
	rsi := summary.LatestRSI.Unwrap()
	suite.Greater(rsi, RSIOversoldThreshold)
	suite.Less(rsi, RSIOverboughtThreshold)
	suite.Require().True(summary.LatestSMA.IsSome())
	suite.Less(summary.CurrentPrice, summary.LatestSMA.Unwrap())
	suite.Equal(types.RecommendationSell, summary.Recommendation)
}

func (suite *InsightEngineTestSuite) TestSummaryFields() {
	series := seriesOf(100, 102, 101, 105, 104)
	summary := suite.buildSummary(series)

	suite.NotEmpty(summary.ID)
	suite.Equal("AAPL", summary.Ticker)
	suite.Equal(types.TimeframeThreeMonth, summary.Timeframe)
	suite.False(summary.GeneratedAt.IsZero())
	suite.Equal(104.0, summary.CurrentPrice)
	suite.InDelta(105*1.01, summary.PeriodHigh.Price, 1e-9)
	suite.InDelta(100*0.99, summary.PeriodLow.Price, 1e-9)
	suite.InDelta(-1.0, summary.MomentumDelta, 1e-9)
	suite.Greater(summary.ChangeFromLowPct, 0.0)
	suite.Equal(indicator.DefaultSMAWindow, summary.SMAWindow)
	suite.Equal(indicator.DefaultRSIWindow, summary.RSIWindow)
	suite.True(summary.Volatility.IsSome())
	suite.True(summary.AnnualizedVolatilityPct.IsSome())
	suite.False(summary.Targets.StopLoss.IsZero())
}

func (suite *InsightEngineTestSuite) TestEmptySeriesFails() {
	_, err := suite.engine.BuildSummary("AAPL", types.TimeframeOneDay, types.Series{}, &types.IndicatorSet{})
	suite.Error(err)
	suite.True(errors.IsInsufficientDataError(err))
}

func (suite *InsightEngineTestSuite) TestMisalignedIndicatorsFail() {
	series := seriesOf(100, 101, 102)

	_, err := suite.engine.BuildSummary("AAPL", types.TimeframeOneDay, series, &types.IndicatorSet{})
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeIndicatorAlignment))

	_, err = suite.engine.BuildSummary("AAPL", types.TimeframeOneDay, series, nil)
	suite.Error(err)
}
