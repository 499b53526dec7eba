package types

import (
	"time"

	"github.com/rxtech-lab/stock-insight/pkg/errors"
)

// PricePoint is a single OHLCV bar for one trading day.
type PricePoint struct {
	Time   time.Time `csv:"time"`
	Open   float64   `csv:"open"`
	High   float64   `csv:"high"`
	Low    float64   `csv:"low"`
	Close  float64   `csv:"close"`
	Volume float64   `csv:"volume"`
}

// Series is a date-ordered sequence of price points for one ticker over one
// timeframe. Dates are strictly increasing and all prices are positive;
// Validate enforces both before any indicator is computed.
type Series []PricePoint

// Validate checks the structural invariants of the series. It returns an
// *errors.InvalidSeriesError describing the first violation found, or nil.
func (s Series) Validate() error {
	if len(s) == 0 {
		return errors.NewInvalidSeriesError(errors.ErrCodeEmptySeries, -1, "series is empty")
	}

	for i, p := range s {
		if p.Open <= 0 || p.High <= 0 || p.Low <= 0 || p.Close <= 0 {
			return errors.NewInvalidSeriesErrorf(errors.ErrCodeNonPositivePrice, i,
				"non-positive price at index %d (open=%g high=%g low=%g close=%g)",
				i, p.Open, p.High, p.Low, p.Close)
		}

		if p.Volume < 0 {
			return errors.NewInvalidSeriesErrorf(errors.ErrCodeNegativeVolume, i,
				"negative volume at index %d (volume=%g)", i, p.Volume)
		}

		if i == 0 {
			continue
		}

		prev := s[i-1].Time
		if p.Time.Equal(prev) {
			return errors.NewInvalidSeriesErrorf(errors.ErrCodeDuplicateDate, i,
				"duplicate date %s at index %d", p.Time.Format(time.DateOnly), i)
		}

		if p.Time.Before(prev) {
			return errors.NewInvalidSeriesErrorf(errors.ErrCodeUnorderedSeries, i,
				"date %s at index %d is before its predecessor %s",
				p.Time.Format(time.DateOnly), i, prev.Format(time.DateOnly))
		}
	}

	return nil
}

// Closes returns the closing prices of the series in order.
func (s Series) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, p := range s {
		closes[i] = p.Close
	}

	return closes
}

// Last returns the most recent price point. The series must not be empty.
func (s Series) Last() PricePoint {
	return s[len(s)-1]
}

// PricePeak is an extreme price together with the date it occurred on.
type PricePeak struct {
	Price float64   `yaml:"price"`
	Time  time.Time `yaml:"time"`
}

// PeriodHigh returns the highest high of the series and its date.
// The series must not be empty.
func (s Series) PeriodHigh() PricePeak {
	peak := PricePeak{Price: s[0].High, Time: s[0].Time}
	for _, p := range s[1:] {
		if p.High > peak.Price {
			peak = PricePeak{Price: p.High, Time: p.Time}
		}
	}

	return peak
}

// PeriodLow returns the lowest low of the series and its date.
// The series must not be empty.
func (s Series) PeriodLow() PricePeak {
	peak := PricePeak{Price: s[0].Low, Time: s[0].Time}
	for _, p := range s[1:] {
		if p.Low < peak.Price {
			peak = PricePeak{Price: p.Low, Time: p.Time}
		}
	}

	return peak
}
