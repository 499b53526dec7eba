package indicator

import (
	"math"

	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/stock-insight/internal/types"
)

// TradingDaysPerYear is the conventional factor for annualizing daily
// volatility.
const TradingDaysPerYear = 252

// volatility returns the sample standard deviation of simple day-over-day
// returns. With fewer than 2 points it is None. With a single return point a
// sample deviation is undefined, so the fallback is the population deviation
// of the raw closes divided by their mean, keeping minimal-data windows on
// the same fraction-of-price scale as the returns path.
func volatility(series types.Series) optional.Option[float64] {
	if len(series) < 2 {
		return optional.None[float64]()
	}

	closes := series.Closes()

	returns := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		returns[i-1] = closes[i]/closes[i-1] - 1
	}

	if len(returns) > 1 {
		return optional.Some(sampleStdDev(returns))
	}

	return optional.Some(populationStdDev(closes) / mean(closes))
}

// Annualize scales a per-day volatility by sqrt(252) and expresses it as a
// percentage.
func Annualize(volatility float64) float64 {
	return volatility * math.Sqrt(TradingDaysPerYear) * 100
}

func sampleStdDev(values []float64) float64 {
	mean := mean(values)

	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}

	return math.Sqrt(sum / float64(len(values)-1))
}

func populationStdDev(values []float64) float64 {
	mean := mean(values)

	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}

	return math.Sqrt(sum / float64(len(values)))
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
