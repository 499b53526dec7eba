package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidPeriod        ErrorCode = 102
	ErrCodeInvalidThreshold     ErrorCode = 103
	ErrCodeInvalidTimeframe     ErrorCode = 104
	ErrCodeInvalidTicker        ErrorCode = 105
	ErrCodeMissingParameter     ErrorCode = 106

	// Series errors (200-299)
	ErrCodeInvalidSeries    ErrorCode = 200
	ErrCodeEmptySeries      ErrorCode = 201
	ErrCodeUnorderedSeries  ErrorCode = 202
	ErrCodeNonPositivePrice ErrorCode = 203
	ErrCodeDuplicateDate    ErrorCode = 204
	ErrCodeNegativeVolume   ErrorCode = 205

	// Indicator errors (300-399)
	ErrCodeInsufficientData     ErrorCode = 300
	ErrCodeIndicatorCalculation ErrorCode = 301
	ErrCodeIndicatorAlignment   ErrorCode = 302

	// Insight errors (400-499)
	ErrCodeSummaryFailed ErrorCode = 400

	// Market data errors (500-599)
	ErrCodeMarketDataFetchFailed ErrorCode = 500
	ErrCodeMarketDataParseFailed ErrorCode = 501
	ErrCodeInvalidProvider       ErrorCode = 502
	ErrCodeNoDataFound           ErrorCode = 503
)
