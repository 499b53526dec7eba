package provider

import (
	"context"
	"fmt"
	"strconv"
	"time"

	binance "github.com/adshao/go-binance/v2"

	"github.com/rxtech-lab/stock-insight/internal/types"
	"github.com/rxtech-lab/stock-insight/pkg/errors"
)

// binancePageSize is the kline page size the public API caps a request at.
const binancePageSize = 500

type BinanceClient struct {
	client *binance.Client
}

// NewBinanceClient creates a Binance provider. The public kline endpoint
// needs no authentication.
func NewBinanceClient() (Provider, error) {
	client := binance.NewClient("", "")

	return &BinanceClient{
		client: client,
	}, nil
}

// Fetch downloads daily klines for the timeframe from Binance, paginating
// past the 500-bar page limit until the end of the range.
func (c *BinanceClient) Fetch(ctx context.Context, ticker string, timeframe types.Timeframe, now time.Time, onProgress OnFetchProgress) (types.Series, error) {
	startDate, endDate := timeframe.Range(now)

	// Binance API uses milliseconds for timestamps.
	startTimeMillis := startDate.UnixMilli()
	endTimeMillis := endDate.UnixMilli()

	currentStartTime := startTimeMillis
	series := types.Series{}

	for {
		klines, err := c.client.NewKlinesService().
			Symbol(ticker).
			Interval("1d").
			StartTime(currentStartTime).
			EndTime(endTimeMillis).
			Do(ctx)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeMarketDataFetchFailed, err, "failed to fetch klines from Binance for %s", ticker)
		}

		if onProgress != nil {
			onProgress(float64(currentStartTime-startTimeMillis), float64(endTimeMillis-startTimeMillis),
				fmt.Sprintf("Fetching %s klines from Binance", ticker))
		}

		points, err := convertKlines(ticker, klines)
		if err != nil {
			return nil, err
		}

		series = append(series, points...)

		// Last page: no data or a short page.
		if len(klines) < binancePageSize {
			break
		}

		// Use the close time of the last kline + 1ms to avoid duplicates.
		lastKline := klines[len(klines)-1]
		currentStartTime = lastKline.CloseTime + 1

		if currentStartTime >= endTimeMillis {
			break
		}
	}

	if len(series) == 0 {
		return nil, errors.Newf(errors.ErrCodeNoDataFound, "binance returned no daily klines for %s over %s", ticker, timeframe)
	}

	return series, nil
}

// convertKlines converts Binance kline strings into price points, using the
// kline open time as the bar timestamp.
func convertKlines(ticker string, klines []*binance.Kline) ([]types.PricePoint, error) {
	points := make([]types.PricePoint, 0, len(klines))

	for _, k := range klines {
		open, err := strconv.ParseFloat(k.Open, 64)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "invalid open price %q for %s", k.Open, ticker)
		}

		high, err := strconv.ParseFloat(k.High, 64)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "invalid high price %q for %s", k.High, ticker)
		}

		low, err := strconv.ParseFloat(k.Low, 64)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "invalid low price %q for %s", k.Low, ticker)
		}

		closePrice, err := strconv.ParseFloat(k.Close, 64)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "invalid close price %q for %s", k.Close, ticker)
		}

		volume, err := strconv.ParseFloat(k.Volume, 64)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "invalid volume %q for %s", k.Volume, ticker)
		}

		points = append(points, types.PricePoint{
			Time:   time.UnixMilli(k.OpenTime),
			Open:   open,
			High:   high,
			Low:    low,
			Close:  closePrice,
			Volume: volume,
		})
	}

	return points, nil
}
