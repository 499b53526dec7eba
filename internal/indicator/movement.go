package indicator

import (
	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/stock-insight/internal/types"
)

// classify assigns one movement category per point. Precedence per point:
// RSI extremes first, then SMA position, then neutral RSI when only the RSI
// is defined, and undefined when neither indicator is.
func (e *Engine) classify(series types.Series, sma, rsi []optional.Option[float64]) []types.MovementCategory {
	out := make([]types.MovementCategory, len(series))

	for i, p := range series {
		out[i] = e.classifyPoint(p.Close, sma[i], rsi[i])
	}

	return out
}

func (e *Engine) classifyPoint(close float64, sma, rsi optional.Option[float64]) types.MovementCategory {
	if rsi.IsSome() {
		value := rsi.Unwrap()

		if value >= e.rsiOverbought {
			return types.MovementRSIOverbought
		}

		if value <= e.rsiOversold {
			return types.MovementRSIOversold
		}
	}

	if sma.IsSome() {
		if close > sma.Unwrap() {
			return types.MovementAboveSMA
		}

		return types.MovementBelowSMA
	}

	if rsi.IsSome() {
		return types.MovementRSINeutral
	}

	return types.MovementUndefined
}
