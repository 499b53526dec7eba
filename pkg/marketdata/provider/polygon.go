package provider

import (
	"context"
	"fmt"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"
	"github.com/schollz/progressbar/v3"

	"github.com/rxtech-lab/stock-insight/internal/types"
	"github.com/rxtech-lab/stock-insight/pkg/errors"
)

type PolygonClient struct {
	client *polygon.Client
}

func NewPolygonClient(apiKey string) (Provider, error) {
	if apiKey == "" {
		return nil, errors.New(errors.ErrCodeMissingParameter, "polygon api key is required")
	}

	client := polygon.New(apiKey)

	return &PolygonClient{
		client: client,
	}, nil
}

// Fetch downloads daily aggregates for the timeframe from Polygon.io.
func (c *PolygonClient) Fetch(ctx context.Context, ticker string, timeframe types.Timeframe, now time.Time, onProgress OnFetchProgress) (types.Series, error) {
	startDate, endDate := timeframe.Range(now)
	totalDays := int(endDate.Sub(startDate).Hours()/24) + 1

	bar := progressbar.NewOptions(totalDays,
		progressbar.OptionSetDescription(fmt.Sprintf("Fetching %s", ticker)),
		progressbar.OptionShowCount())

	//nolint:exhaustruct // third-party struct with many optional fields
	params := models.ListAggsParams{
		Ticker:     ticker,
		Multiplier: 1,
		Timespan:   models.Day,
		From:       models.Millis(startDate),
		To:         models.Millis(endDate),
	}.WithLimit(50000)

	iter := c.client.ListAggs(ctx, params)

	series := types.Series{}

	for iter.Next() {
		agg := iter.Item()
		barTime := time.Time(agg.Timestamp)

		series = append(series, types.PricePoint{
			Time:   barTime,
			Open:   agg.Open,
			High:   agg.High,
			Low:    agg.Low,
			Close:  agg.Close,
			Volume: agg.Volume,
		})

		if onProgress != nil {
			daysElapsed := int(barTime.Sub(startDate).Hours() / 24)
			onProgress(float64(daysElapsed), float64(totalDays), fmt.Sprintf("Fetching %s", ticker))
			bar.Set(daysElapsed)
		}
	}

	if iter.Err() != nil {
		return nil, errors.Wrapf(errors.ErrCodeMarketDataFetchFailed, iter.Err(), "error iterating polygon aggregates for %s", ticker)
	}

	bar.Finish()

	if len(series) == 0 {
		return nil, errors.Newf(errors.ErrCodeNoDataFound, "polygon returned no daily bars for %s over %s", ticker, timeframe)
	}

	return series, nil
}
