// Package chart exposes read-only view data for presentation adapters. It
// shapes a series and its indicator set into the panels a renderer needs
// (price with SMA overlay, volume, RSI with thresholds, per-point price range
// and the movement category distribution) without doing any drawing itself.
package chart

import (
	"time"

	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/stock-insight/internal/types"
	"github.com/rxtech-lab/stock-insight/pkg/errors"
)

// minDistributionPoints is the minimum number of defined movement categories
// for a category distribution chart to be meaningful.
const minDistributionPoints = 2

// PriceOverlay is the closing price line with its SMA overlay.
type PriceOverlay struct {
	Times     []time.Time
	Closes    []float64
	SMA       []optional.Option[float64]
	SMAWindow int
}

// VolumePanel is the per-point trading volume.
type VolumePanel struct {
	Times   []time.Time
	Volumes []float64
}

// RSIPanel is the RSI line together with the threshold lines a renderer
// should draw.
type RSIPanel struct {
	Times      []time.Time
	Values     []optional.Option[float64]
	Window     int
	Overbought float64
	Oversold   float64
}

// RangeBar is one point's OHLC range. Up reports whether the close is at or
// above the open, which decides the bar's direction color.
type RangeBar struct {
	Time  time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64
	Up    bool
}

// Distribution counts defined movement categories across the series.
type Distribution struct {
	// Counts holds the number of points per defined category. Categories with
	// a zero count are omitted.
	Counts map[types.MovementCategory]int
	// DefinedCount is the total number of points with a defined category.
	DefinedCount int
}

// Available reports whether enough defined categories exist for a
// distribution chart; adapters may omit the chart otherwise.
func (d Distribution) Available() bool {
	return d.DefinedCount >= minDistributionPoints
}

// Views bundles every panel for one analysis run.
type Views struct {
	Price        PriceOverlay
	Volume       VolumePanel
	RSI          RSIPanel
	Range        []RangeBar
	Distribution Distribution
}

// BuildViews shapes the series and indicator set into renderable panels. The
// inputs are only read, never retained or mutated.
func BuildViews(series types.Series, set *types.IndicatorSet, overbought, oversold float64) (*Views, error) {
	if len(series) == 0 {
		return nil, errors.NewInsufficientDataError(1, 0, "", "cannot build chart views from an empty series")
	}

	if set == nil || set.Length() != len(series) {
		return nil, errors.Newf(errors.ErrCodeIndicatorAlignment,
			"indicator set does not cover the series (series=%d)", len(series))
	}

	times := make([]time.Time, len(series))
	closes := make([]float64, len(series))
	volumes := make([]float64, len(series))
	bars := make([]RangeBar, len(series))

	for i, p := range series {
		times[i] = p.Time
		closes[i] = p.Close
		volumes[i] = p.Volume
		bars[i] = RangeBar{
			Time:  p.Time,
			Open:  p.Open,
			High:  p.High,
			Low:   p.Low,
			Close: p.Close,
			Up:    p.Close >= p.Open,
		}
	}

	counts := make(map[types.MovementCategory]int)
	defined := 0

	for _, m := range set.Movement {
		if !m.Defined() {
			continue
		}

		counts[m]++
		defined++
	}

	return &Views{
		Price: PriceOverlay{
			Times:     times,
			Closes:    closes,
			SMA:       set.SMA,
			SMAWindow: set.SMAWindow,
		},
		Volume: VolumePanel{
			Times:   times,
			Volumes: volumes,
		},
		RSI: RSIPanel{
			Times:      times,
			Values:     set.RSI,
			Window:     set.RSIWindow,
			Overbought: overbought,
			Oversold:   oversold,
		},
		Range:        bars,
		Distribution: Distribution{Counts: counts, DefinedCount: defined},
	}, nil
}
