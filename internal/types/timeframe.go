package types

import "time"

// Timeframe is the requested historical window bounding an input series.
type Timeframe string

const (
	TimeframeOneDay     Timeframe = "1D"
	TimeframeFiveDays   Timeframe = "5D"
	TimeframeOneMonth   Timeframe = "1M"
	TimeframeThreeMonth Timeframe = "3M"
	TimeframeOneYear    Timeframe = "1Y"
	TimeframeFiveYears  Timeframe = "5Y"
	TimeframeYTD        Timeframe = "YTD"
	TimeframeMax        Timeframe = "Max"
)

// maxLookbackDays bounds the Max timeframe when a provider needs an explicit
// start date.
const maxLookbackDays = 10000

// Timeframes returns all supported timeframe tokens.
func Timeframes() []Timeframe {
	return []Timeframe{
		TimeframeOneDay,
		TimeframeFiveDays,
		TimeframeOneMonth,
		TimeframeThreeMonth,
		TimeframeOneYear,
		TimeframeFiveYears,
		TimeframeYTD,
		TimeframeMax,
	}
}

// IsValid reports whether t is one of the supported timeframe tokens.
func (t Timeframe) IsValid() bool {
	switch t {
	case TimeframeOneDay, TimeframeFiveDays, TimeframeOneMonth, TimeframeThreeMonth,
		TimeframeOneYear, TimeframeFiveYears, TimeframeYTD, TimeframeMax:
		return true
	default:
		return false
	}
}

// LookbackDays returns the number of calendar days the timeframe spans,
// relative to now. YTD counts from January 1st of the current year.
func (t Timeframe) LookbackDays(now time.Time) int {
	switch t {
	case TimeframeOneDay:
		return 1
	case TimeframeFiveDays:
		return 5
	case TimeframeOneMonth:
		return 30
	case TimeframeThreeMonth:
		return 90
	case TimeframeOneYear:
		return 365
	case TimeframeFiveYears:
		return 1825
	case TimeframeYTD:
		yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

		return int(now.Sub(yearStart).Hours() / 24)
	case TimeframeMax:
		return maxLookbackDays
	default:
		return 1
	}
}

// Range returns the [start, end] date range the timeframe spans, ending at now.
func (t Timeframe) Range(now time.Time) (start time.Time, end time.Time) {
	return now.AddDate(0, 0, -t.LookbackDays(now)), now
}
