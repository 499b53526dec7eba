// Package indicator computes derived technical indicator series from a
// validated OHLCV price series. All computations are pure: the input series is
// never mutated and no state survives across invocations. Warm-up indices and
// short series produce None values rather than errors; only a zero-point
// series is an error.
package indicator

import (
	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/stock-insight/internal/types"
	"github.com/rxtech-lab/stock-insight/pkg/errors"
)

const (
	// DefaultSMAWindow is the default simple moving average window.
	DefaultSMAWindow = 20
	// DefaultRSIWindow is the default relative strength index window.
	DefaultRSIWindow = 14
	// DefaultRSIOverbought and DefaultRSIOversold are the conventional RSI
	// extreme thresholds used for movement classification.
	DefaultRSIOverbought = 70.0
	DefaultRSIOversold   = 30.0
)

// Engine computes the full indicator set for a series.
type Engine struct {
	smaWindow     int
	rsiWindow     int
	rsiOverbought float64
	rsiOversold   float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithSMAWindow overrides the SMA window.
func WithSMAWindow(window int) Option {
	return func(e *Engine) {
		e.smaWindow = window
	}
}

// WithRSIWindow overrides the RSI window.
func WithRSIWindow(window int) Option {
	return func(e *Engine) {
		e.rsiWindow = window
	}
}

// WithRSIThresholds overrides the overbought/oversold thresholds used for
// movement classification.
func WithRSIThresholds(oversold, overbought float64) Option {
	return func(e *Engine) {
		e.rsiOversold = oversold
		e.rsiOverbought = overbought
	}
}

// NewEngine creates an Engine with default windows and thresholds.
func NewEngine(opts ...Option) (*Engine, error) {
	engine := &Engine{
		smaWindow:     DefaultSMAWindow,
		rsiWindow:     DefaultRSIWindow,
		rsiOverbought: DefaultRSIOverbought,
		rsiOversold:   DefaultRSIOversold,
	}

	for _, opt := range opts {
		opt(engine)
	}

	if engine.smaWindow <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "sma window must be positive, got %d", engine.smaWindow)
	}

	if engine.rsiWindow <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "rsi window must be positive, got %d", engine.rsiWindow)
	}

	if engine.rsiOversold >= engine.rsiOverbought {
		return nil, errors.Newf(errors.ErrCodeInvalidThreshold,
			"oversold threshold %g must be below overbought threshold %g",
			engine.rsiOversold, engine.rsiOverbought)
	}

	return engine, nil
}

// Compute derives the full indicator set for the series: SMA, RSI, volatility
// and per-point movement classification. It fails only when the series has no
// points at all.
func (e *Engine) Compute(series types.Series) (*types.IndicatorSet, error) {
	if len(series) == 0 {
		return nil, errors.NewInsufficientDataError(1, 0, "", "cannot compute indicators on an empty series")
	}

	sma := e.sma(series)
	rsi := e.rsi(series)

	return &types.IndicatorSet{
		SMA:        sma,
		RSI:        rsi,
		Movement:   e.classify(series, sma, rsi),
		Volatility: volatility(series),
		SMAWindow:  e.smaWindow,
		RSIWindow:  e.rsiWindow,
	}, nil
}

// SMA computes the trailing simple moving average per point. Indices before a
// full window are None; a window longer than the series yields all None.
func (e *Engine) SMA(series types.Series) ([]optional.Option[float64], error) {
	if len(series) == 0 {
		return nil, errors.NewInsufficientDataError(1, 0, "", "cannot compute sma on an empty series")
	}

	return e.sma(series), nil
}

// RSI computes the smoothed relative strength index per point. Indices before
// a full delta window are None.
func (e *Engine) RSI(series types.Series) ([]optional.Option[float64], error) {
	if len(series) == 0 {
		return nil, errors.NewInsufficientDataError(1, 0, "", "cannot compute rsi on an empty series")
	}

	return e.rsi(series), nil
}

// Volatility computes the standard deviation of closing-price returns for the
// whole series. It is None for a single-point series.
func (e *Engine) Volatility(series types.Series) (optional.Option[float64], error) {
	if len(series) == 0 {
		return optional.None[float64](), errors.NewInsufficientDataError(1, 0, "", "cannot compute volatility on an empty series")
	}

	return volatility(series), nil
}

// ClassifyMovement classifies each point using the given aligned SMA and RSI
// series. RSI extremes take precedence over the SMA-relative category.
func (e *Engine) ClassifyMovement(series types.Series, sma, rsi []optional.Option[float64]) ([]types.MovementCategory, error) {
	if len(series) == 0 {
		return nil, errors.NewInsufficientDataError(1, 0, "", "cannot classify movement on an empty series")
	}

	if len(sma) != len(series) || len(rsi) != len(series) {
		return nil, errors.Newf(errors.ErrCodeIndicatorAlignment,
			"indicator series are not aligned: series=%d sma=%d rsi=%d",
			len(series), len(sma), len(rsi))
	}

	return e.classify(series, sma, rsi), nil
}
