// Package marketdata fetches daily OHLCV history from external providers
// and hands back series ready for analysis.
package marketdata

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rxtech-lab/stock-insight/internal/types"
	"github.com/rxtech-lab/stock-insight/pkg/errors"
	"github.com/rxtech-lab/stock-insight/pkg/marketdata/provider"
)

// ClientConfig holds the configuration for the market data client.
type ClientConfig struct {
	ProviderType  provider.ProviderType `validate:"required,oneof=polygon binance"`
	PolygonApiKey string                `validate:"required_if=ProviderType polygon"`
}

// FetchParams holds the parameters for a market data fetch request.
type FetchParams struct {
	Ticker    string          `validate:"required"`
	Timeframe types.Timeframe `validate:"required,oneof=1D 5D 1M 3M 1Y 5Y YTD Max"`
}

// Client fetches series from a configured provider and validates them
// before returning.
type Client struct {
	provider   provider.Provider
	config     ClientConfig
	validate   *validator.Validate
	onProgress provider.OnFetchProgress
}

// NewClient creates a new market data client with the given configuration.
func NewClient(config ClientConfig, onProgress provider.OnFetchProgress) (*Client, error) {
	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid market data client configuration", err)
	}

	marketProvider, err := provider.NewProvider(config.ProviderType, config.PolygonApiKey)
	if err != nil {
		return nil, err
	}

	return &Client{
		provider:   marketProvider,
		config:     config,
		validate:   validate,
		onProgress: onProgress,
	}, nil
}

// Fetch downloads and validates the series for the given parameters. The
// context can be used to cancel the fetch operation.
func (c *Client) Fetch(ctx context.Context, params FetchParams) (types.Series, error) {
	if err := c.validate.Struct(params); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidParameter, "invalid fetch parameters", err)
	}

	series, err := c.provider.Fetch(ctx, params.Ticker, params.Timeframe, time.Now().UTC(), c.onProgress)
	if err != nil {
		return nil, err
	}

	if err := series.Validate(); err != nil {
		return nil, errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "provider %s returned an invalid series for %s", c.config.ProviderType, params.Ticker)
	}

	return series, nil
}
