package indicator

import (
	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/stock-insight/internal/types"
)

// sma computes the trailing arithmetic mean of closes over the configured
// window. A running sum keeps it single-pass.
func (e *Engine) sma(series types.Series) []optional.Option[float64] {
	window := e.smaWindow
	out := make([]optional.Option[float64], len(series))

	sum := 0.0

	for i, p := range series {
		sum += p.Close
		if i >= window {
			sum -= series[i-window].Close
		}

		if i+1 < window {
			out[i] = optional.None[float64]()

			continue
		}

		out[i] = optional.Some(sum / float64(window))
	}

	return out
}
