package provider

import (
	"context"
	"time"

	"github.com/rxtech-lab/stock-insight/internal/types"
	"github.com/rxtech-lab/stock-insight/pkg/errors"
)

// ProviderType defines the type of market data provider.
type ProviderType string

const (
	ProviderPolygon ProviderType = "polygon"
	ProviderBinance ProviderType = "binance"
)

type OnFetchProgress = func(current float64, total float64, message string)

// Provider fetches daily OHLCV history for a ticker over a timeframe.
type Provider interface {
	// Fetch downloads the daily bars covering the timeframe, ending at now.
	// The context can be used to cancel the fetch operation. The returned
	// series is sorted but not validated; callers run Series.Validate.
	Fetch(ctx context.Context, ticker string, timeframe types.Timeframe, now time.Time, onProgress OnFetchProgress) (types.Series, error)
}

// NewProvider creates a market data provider of the given type.
func NewProvider(providerType ProviderType, apiKey string) (Provider, error) {
	switch providerType {
	case ProviderBinance:
		return NewBinanceClient()
	case ProviderPolygon:
		return NewPolygonClient(apiKey)
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidProvider, "unsupported market data provider: %s", providerType)
	}
}
