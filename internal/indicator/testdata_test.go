package indicator

import (
	"time"

	"github.com/rxtech-lab/stock-insight/internal/types"
)

func testDay(n int) time.Time {
	return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func pointAt(n int, close float64) types.PricePoint {
	return types.PricePoint{
		Time:   testDay(n),
		Open:   close,
		High:   close * 1.01,
		Low:    close * 0.99,
		Close:  close,
		Volume: 10000,
	}
}

// flatSeries builds n points with identical closes.
func flatSeries(n int, close float64) types.Series {
	series := make(types.Series, n)
	for i := range series {
		series[i] = pointAt(i, close)
	}

	return series
}

// increasingSeries builds n points with closes starting at base and growing by
// step per point.
func increasingSeries(n int, base, step float64) types.Series {
	series := make(types.Series, n)
	for i := range series {
		series[i] = pointAt(i, base+float64(i)*step)
	}

	return series
}

// seriesOf builds a series from explicit closes.
func seriesOf(closes ...float64) types.Series {
	series := make(types.Series, len(closes))
	for i, c := range closes {
		series[i] = pointAt(i, c)
	}

	return series
}
