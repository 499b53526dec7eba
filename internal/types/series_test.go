package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/stock-insight/pkg/errors"
)

type SeriesTestSuite struct {
	suite.Suite
}

func TestSeriesSuite(t *testing.T) {
	suite.Run(t, new(SeriesTestSuite))
}

func day(n int) time.Time {
	return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func flatPoint(n int, close float64) PricePoint {
	return PricePoint{
		Time:   day(n),
		Open:   close,
		High:   close,
		Low:    close,
		Close:  close,
		Volume: 1000,
	}
}

func (suite *SeriesTestSuite) TestValidateEmptySeries() {
	err := Series{}.Validate()
	suite.Error(err)
	suite.True(errors.IsInvalidSeriesError(err))

	var invalid *errors.InvalidSeriesError
	suite.True(errors.As(err, &invalid))
	suite.Equal(errors.ErrCodeEmptySeries, invalid.Code)
}

func (suite *SeriesTestSuite) TestValidateValidSeries() {
	s := Series{flatPoint(0, 100), flatPoint(1, 101), flatPoint(2, 102)}
	suite.NoError(s.Validate())
}

func (suite *SeriesTestSuite) TestValidateSinglePoint() {
	s := Series{flatPoint(0, 100)}
	suite.NoError(s.Validate())
}

func (suite *SeriesTestSuite) TestValidateNonPositivePrice() {
	tests := []struct {
		name  string
		point PricePoint
	}{
		{"zero close", PricePoint{Time: day(1), Open: 1, High: 1, Low: 1, Close: 0, Volume: 1}},
		{"negative open", PricePoint{Time: day(1), Open: -1, High: 1, Low: 1, Close: 1, Volume: 1}},
		{"zero high", PricePoint{Time: day(1), Open: 1, High: 0, Low: 1, Close: 1, Volume: 1}},
		{"negative low", PricePoint{Time: day(1), Open: 1, High: 1, Low: -0.5, Close: 1, Volume: 1}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			s := Series{flatPoint(0, 100), tt.point}
			err := s.Validate()
			suite.Error(err)

			var invalid *errors.InvalidSeriesError
			suite.True(errors.As(err, &invalid))
			suite.Equal(errors.ErrCodeNonPositivePrice, invalid.Code)
			suite.Equal(1, invalid.Index)
		})
	}
}

func (suite *SeriesTestSuite) TestValidateNegativeVolume() {
	p := flatPoint(1, 100)
	p.Volume = -1

	err := Series{flatPoint(0, 100), p}.Validate()
	suite.Error(err)

	var invalid *errors.InvalidSeriesError
	suite.True(errors.As(err, &invalid))
	suite.Equal(errors.ErrCodeNegativeVolume, invalid.Code)
}

func (suite *SeriesTestSuite) TestValidateUnorderedDates() {
	s := Series{flatPoint(2, 100), flatPoint(0, 101)}
	err := s.Validate()
	suite.Error(err)

	var invalid *errors.InvalidSeriesError
	suite.True(errors.As(err, &invalid))
	suite.Equal(errors.ErrCodeUnorderedSeries, invalid.Code)
	suite.Equal(1, invalid.Index)
}

func (suite *SeriesTestSuite) TestValidateDuplicateDates() {
	s := Series{flatPoint(0, 100), flatPoint(0, 101)}
	err := s.Validate()
	suite.Error(err)

	var invalid *errors.InvalidSeriesError
	suite.True(errors.As(err, &invalid))
	suite.Equal(errors.ErrCodeDuplicateDate, invalid.Code)
}

func (suite *SeriesTestSuite) TestCloses() {
	s := Series{flatPoint(0, 100), flatPoint(1, 101.5), flatPoint(2, 99)}
	suite.Equal([]float64{100, 101.5, 99}, s.Closes())
}

func (suite *SeriesTestSuite) TestLast() {
	s := Series{flatPoint(0, 100), flatPoint(1, 105)}
	suite.Equal(105.0, s.Last().Close)
	suite.Equal(day(1), s.Last().Time)
}

func (suite *SeriesTestSuite) TestPeriodHighLow() {
	s := Series{
		{Time: day(0), Open: 100, High: 102, Low: 98, Close: 101, Volume: 1},
		{Time: day(1), Open: 101, High: 110, Low: 100, Close: 109, Volume: 1},
		{Time: day(2), Open: 109, High: 109.5, Low: 95, Close: 96, Volume: 1},
	}

	high := s.PeriodHigh()
	suite.Equal(110.0, high.Price)
	suite.Equal(day(1), high.Time)

	low := s.PeriodLow()
	suite.Equal(95.0, low.Price)
	suite.Equal(day(2), low.Time)
}

func (suite *SeriesTestSuite) TestPeriodHighLowSinglePoint() {
	s := Series{{Time: day(0), Open: 100, High: 101, Low: 99, Close: 100, Volume: 1}}
	suite.Equal(101.0, s.PeriodHigh().Price)
	suite.Equal(99.0, s.PeriodLow().Price)
}
