package indicator

import (
	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/stock-insight/internal/types"
)

// rsi computes the relative strength index per point. The first average gain
// and loss are simple means over the first full delta window; subsequent
// points use Wilder's smoothing. An index is None until the series has
// accumulated a full window of day-over-day deltas.
func (e *Engine) rsi(series types.Series) []optional.Option[float64] {
	window := e.rsiWindow
	out := make([]optional.Option[float64], len(series))

	for i := range out {
		out[i] = optional.None[float64]()
	}

	if len(series) <= window {
		return out
	}

	closes := series.Closes()

	// Deltas: gains[j] / losses[j] correspond to the move into closes[j+1].
	gains := make([]float64, len(closes)-1)
	losses := make([]float64, len(closes)-1)

	for j := 1; j < len(closes); j++ {
		change := closes[j] - closes[j-1]
		if change > 0 {
			gains[j-1] = change
		} else {
			losses[j-1] = -change
		}
	}

	avgGain := 0.0
	avgLoss := 0.0

	for j := 0; j < window; j++ {
		avgGain += gains[j]
		avgLoss += losses[j]
	}

	avgGain /= float64(window)
	avgLoss /= float64(window)
	out[window] = optional.Some(rsiValue(avgGain, avgLoss))

	for i := window + 1; i < len(closes); i++ {
		avgGain = (avgGain*float64(window-1) + gains[i-1]) / float64(window)
		avgLoss = (avgLoss*float64(window-1) + losses[i-1]) / float64(window)
		out[i] = optional.Some(rsiValue(avgGain, avgLoss))
	}

	return out
}

// rsiValue maps smoothed average gain/loss to the bounded [0, 100] oscillator.
// A zero average loss with positive gain is a perfect uptrend (100). When both
// averages are zero no movement occurred in the window, which is neutral (50)
// and avoids a 0/0 division.
func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgGain == 0 {
			return 50
		}

		return 100
	}

	rs := avgGain / avgLoss

	return 100 - 100/(1+rs)
}
