// Package analyzer orchestrates one analysis run: validate the input series,
// compute the indicator set, build the insight summary and shape the chart
// views. Every run creates fresh objects and keeps no state, so concurrent
// analyses of different tickers need no coordination.
package analyzer

import (
	"go.uber.org/zap"

	"github.com/rxtech-lab/stock-insight/internal/chart"
	"github.com/rxtech-lab/stock-insight/internal/indicator"
	"github.com/rxtech-lab/stock-insight/internal/insight"
	"github.com/rxtech-lab/stock-insight/internal/logger"
	"github.com/rxtech-lab/stock-insight/internal/types"
)

// Analysis is the complete result of one run.
type Analysis struct {
	// Summary is the structured trading insight.
	Summary *types.InsightSummary
	// Indicators is the per-point indicator set the summary was built from.
	Indicators *types.IndicatorSet
	// Views is the read-only chart data for presentation adapters.
	Views *chart.Views
	// Series is the validated input series the run analyzed.
	Series types.Series
}

// Analyzer runs the analysis pipeline.
type Analyzer struct {
	config     Config
	indicators *indicator.Engine
	insights   *insight.Engine
	logger     *logger.Logger
}

// NewAnalyzer creates an analyzer for the given config.
func NewAnalyzer(config Config, log *logger.Logger) (*Analyzer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	engine, err := indicator.NewEngine(
		indicator.WithSMAWindow(config.SMAWindow),
		indicator.WithRSIWindow(config.RSIWindow),
		indicator.WithRSIThresholds(config.RSIOversold, config.RSIOverbought),
	)
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		config:     config,
		indicators: engine,
		insights:   insight.NewEngine(),
		logger:     log,
	}, nil
}

// Analyze validates the series and runs the full pipeline. Validation
// failures abort the run before any indicator is computed; short series
// degrade inside the pipeline instead of failing.
func (a *Analyzer) Analyze(ticker string, timeframe types.Timeframe, series types.Series) (*Analysis, error) {
	if err := series.Validate(); err != nil {
		a.logger.Error("series validation failed",
			zap.String("ticker", ticker),
			zap.String("timeframe", string(timeframe)),
			zap.Error(err))

		return nil, err
	}

	set, err := a.indicators.Compute(series)
	if err != nil {
		return nil, err
	}

	summary, err := a.insights.BuildSummary(ticker, timeframe, series, set)
	if err != nil {
		return nil, err
	}

	views, err := chart.BuildViews(series, set, a.config.RSIOverbought, a.config.RSIOversold)
	if err != nil {
		return nil, err
	}

	a.logger.Info("analysis complete",
		zap.String("id", summary.ID),
		zap.String("ticker", ticker),
		zap.String("timeframe", string(timeframe)),
		zap.Int("points", len(series)),
		zap.String("recommendation", string(summary.Recommendation)),
		zap.String("risk", string(summary.RiskLevel)))

	return &Analysis{
		Summary:    summary,
		Indicators: set,
		Views:      views,
		Series:     series,
	}, nil
}
