package indicator

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/stock-insight/internal/types"
	"github.com/rxtech-lab/stock-insight/pkg/errors"
)

type EngineTestSuite struct {
	suite.Suite
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (suite *EngineTestSuite) TestNewEngineDefaults() {
	engine, err := NewEngine()
	suite.Require().NoError(err)
	suite.Equal(DefaultSMAWindow, engine.smaWindow)
	suite.Equal(DefaultRSIWindow, engine.rsiWindow)
	suite.Equal(DefaultRSIOverbought, engine.rsiOverbought)
	suite.Equal(DefaultRSIOversold, engine.rsiOversold)
}

func (suite *EngineTestSuite) TestNewEngineInvalidOptions() {
	_, err := NewEngine(WithSMAWindow(0))
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))

	_, err = NewEngine(WithRSIWindow(-3))
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))

	_, err = NewEngine(WithRSIThresholds(70, 30))
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidThreshold))
}

func (suite *EngineTestSuite) TestComputeEmptySeries() {
	engine, err := NewEngine()
	suite.Require().NoError(err)

	_, err = engine.Compute(types.Series{})
	suite.Error(err)
	suite.True(errors.IsInsufficientDataError(err))
}

func (suite *EngineTestSuite) TestComputeFullSet() {
	engine, err := NewEngine()
	suite.Require().NoError(err)

	series := increasingSeries(25, 100, 1)
	set, err := engine.Compute(series)
	suite.Require().NoError(err)

	suite.Equal(25, set.Length())
	suite.Len(set.RSI, 25)
	suite.Len(set.Movement, 25)
	suite.Equal(DefaultSMAWindow, set.SMAWindow)
	suite.Equal(DefaultRSIWindow, set.RSIWindow)

	// Monotonically increasing closes: latest SMA is the mean of the last 20
	// closes (105..124) and the RSI pins at 100.
	suite.Require().True(set.LatestSMA().IsSome())
	suite.InDelta(114.5, set.LatestSMA().Unwrap(), 1e-9)
	suite.Require().True(set.LatestRSI().IsSome())
	suite.InDelta(100.0, set.LatestRSI().Unwrap(), 1e-9)
	suite.True(set.Volatility.IsSome())
}

func (suite *EngineTestSuite) TestComputeSinglePointDegrades() {
	engine, err := NewEngine()
	suite.Require().NoError(err)

	set, err := engine.Compute(flatSeries(1, 100))
	suite.Require().NoError(err)

	suite.True(set.LatestSMA().IsNone())
	suite.True(set.LatestRSI().IsNone())
	suite.True(set.Volatility.IsNone())
	suite.Equal(types.MovementUndefined, set.Movement[0])
	suite.Equal(0, set.DefinedMovementCount())
}

func (suite *EngineTestSuite) TestComputeMovementPrecedence() {
	engine, err := NewEngine()
	suite.Require().NoError(err)

	// Strongly trending series: once RSI is defined it is pinned at 100,
	// so overbought must win over plain SMA position at every defined index.
	series := increasingSeries(30, 100, 2)
	set, err := engine.Compute(series)
	suite.Require().NoError(err)

	for i := DefaultRSIWindow; i < set.Length(); i++ {
		suite.Equal(types.MovementRSIOverbought, set.Movement[i], "index %d", i)
	}

	// Warm-up indices with neither indicator defined stay undefined.
	for i := 0; i < DefaultRSIWindow; i++ {
		suite.Equal(types.MovementUndefined, set.Movement[i], "index %d", i)
	}
}

func (suite *EngineTestSuite) TestComputeNeverBothSMACategories() {
	engine, err := NewEngine()
	suite.Require().NoError(err)

	closes := []float64{100}
	for i := 1; i < 60; i++ {
		if i%2 == 0 {
			closes = append(closes, closes[i-1]*1.01)
		} else {
			closes = append(closes, closes[i-1]*0.99)
		}
	}

	set, err := engine.Compute(seriesOf(closes...))
	suite.Require().NoError(err)

	// Exactly one category per point by construction; spot-check that every
	// point got exactly one defined value from the enum.
	for i, m := range set.Movement {
		suite.Contains([]types.MovementCategory{
			types.MovementAboveSMA,
			types.MovementBelowSMA,
			types.MovementRSIOverbought,
			types.MovementRSIOversold,
			types.MovementRSINeutral,
			types.MovementUndefined,
		}, m, "index %d", i)
	}
}
