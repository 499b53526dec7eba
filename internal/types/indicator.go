package types

import (
	"github.com/moznion/go-optional"
)

// MovementCategory classifies a single point's price movement. Categories are
// mutually exclusive per point: RSI extremes take precedence over plain SMA
// position because they signal a stronger condition.
type MovementCategory string

const (
	// MovementAboveSMA means the close is above the moving average.
	MovementAboveSMA MovementCategory = "above_sma"
	// MovementBelowSMA means the close is at or below the moving average.
	MovementBelowSMA MovementCategory = "below_sma"
	// MovementRSIOverbought means the RSI is at or above the overbought threshold.
	MovementRSIOverbought MovementCategory = "rsi_overbought"
	// MovementRSIOversold means the RSI is at or below the oversold threshold.
	MovementRSIOversold MovementCategory = "rsi_oversold"
	// MovementRSINeutral means only the RSI is defined and it is between the thresholds.
	MovementRSINeutral MovementCategory = "rsi_neutral"
	// MovementUndefined means no underlying indicator is defined at the point.
	MovementUndefined MovementCategory = "undefined"
)

// Defined reports whether the category reflects a defined indicator value.
func (m MovementCategory) Defined() bool {
	return m != MovementUndefined
}

// Label returns a human-readable label for chart legends.
func (m MovementCategory) Label() string {
	switch m {
	case MovementAboveSMA:
		return "Above SMA"
	case MovementBelowSMA:
		return "Below SMA"
	case MovementRSIOverbought:
		return "Overbought"
	case MovementRSIOversold:
		return "Oversold"
	case MovementRSINeutral:
		return "Neutral RSI"
	case MovementUndefined:
		return "Undefined"
	default:
		return string(m)
	}
}

// IndicatorSet holds per-point derived series aligned by index to the source
// series, plus the whole-series volatility. Values that cannot be computed at
// an index (warm-up periods, short series) are None, never zero.
type IndicatorSet struct {
	// SMA is the trailing simple moving average per point, None for the first
	// SMAWindow-1 points.
	SMA []optional.Option[float64]
	// RSI is the smoothed relative strength index per point in [0, 100], None
	// until a full delta window has accumulated.
	RSI []optional.Option[float64]
	// Movement is the per-point movement classification.
	Movement []MovementCategory
	// Volatility is the standard deviation of closing-price returns for the
	// whole series, None when the series has fewer than 2 points.
	Volatility optional.Option[float64]
	// SMAWindow and RSIWindow record the windows the series were computed with.
	SMAWindow int
	RSIWindow int
}

// Length returns the number of points the per-point series cover.
func (s *IndicatorSet) Length() int {
	return len(s.SMA)
}

// LatestSMA returns the SMA at the last point, or None.
func (s *IndicatorSet) LatestSMA() optional.Option[float64] {
	if len(s.SMA) == 0 {
		return optional.None[float64]()
	}

	return s.SMA[len(s.SMA)-1]
}

// LatestRSI returns the RSI at the last point, or None.
func (s *IndicatorSet) LatestRSI() optional.Option[float64] {
	if len(s.RSI) == 0 {
		return optional.None[float64]()
	}

	return s.RSI[len(s.RSI)-1]
}

// DefinedMovementCount returns how many points carry a defined movement
// category. Presentation adapters use it to decide whether a category
// distribution chart is worth drawing.
func (s *IndicatorSet) DefinedMovementCount() int {
	count := 0

	for _, m := range s.Movement {
		if m.Defined() {
			count++
		}
	}

	return count
}
