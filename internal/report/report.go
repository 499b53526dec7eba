// Package report renders an insight summary for the console surface. Render
// produces the plain-text block; Snapshot converts the summary into a
// yaml-serializable form for machine-readable dumps.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/moznion/go-optional"
	"gopkg.in/yaml.v3"

	"github.com/rxtech-lab/stock-insight/internal/types"
)

// Render formats the summary as a text report with every analysis field.
func Render(summary *types.InsightSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Stock Analysis for %s (%s)\n", summary.Ticker, summary.Timeframe)
	fmt.Fprintf(&b, "Run ID: %s\n", summary.ID)
	fmt.Fprintf(&b, "Current Price: $%.2f\n", summary.CurrentPrice)
	fmt.Fprintf(&b, "Period High: $%.2f on %s\n", summary.PeriodHigh.Price, summary.PeriodHigh.Time.Format(time.DateOnly))
	fmt.Fprintf(&b, "Period Low: $%.2f on %s\n", summary.PeriodLow.Price, summary.PeriodLow.Time.Format(time.DateOnly))
	fmt.Fprintf(&b, "Change From Low: %.2f%%\n", summary.ChangeFromLowPct)
	fmt.Fprintf(&b, "SMA (%d-Day): %s\n", summary.SMAWindow, formatPrice(summary.LatestSMA))
	fmt.Fprintf(&b, "RSI (%d-Day): %s\n", summary.RSIWindow, formatValue(summary.LatestRSI))
	fmt.Fprintf(&b, "Volatility: %s", formatValue(summary.Volatility))

	if summary.AnnualizedVolatilityPct.IsSome() {
		fmt.Fprintf(&b, " (annualized %.2f%%)", summary.AnnualizedVolatilityPct.Unwrap())
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Risk Level: %s\n", strings.ToUpper(string(summary.RiskLevel)))
	fmt.Fprintf(&b, "Recommendation: %s (%s)\n", strings.ToUpper(string(summary.Recommendation)), summary.RecommendationReason)
	fmt.Fprintf(&b, "Long-term Strategy:\n  %s\n", summary.LongTermStrategy)
	fmt.Fprintf(&b, "Short-term Strategy:\n  %s\n", summary.ShortTermStrategy)

	return b.String()
}

func formatPrice(value optional.Option[float64]) string {
	if value.IsNone() {
		return "N/A (insufficient data)"
	}

	return fmt.Sprintf("$%.2f", value.Unwrap())
}

func formatValue(value optional.Option[float64]) string {
	if value.IsNone() {
		return "N/A (insufficient data)"
	}

	return fmt.Sprintf("%.4f", value.Unwrap())
}

// Snapshot is the yaml-serializable form of an insight summary. Undefined
// indicator values are nil pointers so they serialize as explicit nulls.
type Snapshot struct {
	ID                      string          `yaml:"id"`
	Ticker                  string          `yaml:"ticker"`
	Timeframe               types.Timeframe `yaml:"timeframe"`
	GeneratedAt             time.Time       `yaml:"generated_at"`
	CurrentPrice            float64         `yaml:"current_price"`
	PeriodHigh              types.PricePeak `yaml:"period_high"`
	PeriodLow               types.PricePeak `yaml:"period_low"`
	ChangeFromLowPct        float64         `yaml:"change_from_low_pct"`
	MomentumDelta           float64         `yaml:"momentum_delta"`
	SMAWindow               int             `yaml:"sma_window"`
	RSIWindow               int             `yaml:"rsi_window"`
	SMA                     *float64        `yaml:"sma,omitempty"`
	RSI                     *float64        `yaml:"rsi,omitempty"`
	Volatility              *float64        `yaml:"volatility,omitempty"`
	AnnualizedVolatilityPct *float64        `yaml:"annualized_volatility_pct,omitempty"`
	LongTermStrategy        string          `yaml:"long_term_strategy"`
	ShortTermStrategy       string          `yaml:"short_term_strategy"`
	RiskLevel               types.RiskLevel `yaml:"risk_level"`
	Recommendation          types.Recommendation `yaml:"recommendation"`
	RecommendationReason    string          `yaml:"recommendation_reason"`
	AccumulateBelow         string          `yaml:"accumulate_below"`
	EntryNear               string          `yaml:"entry_near"`
	StopLoss                string          `yaml:"stop_loss"`
	BreakoutAbove           string          `yaml:"breakout_above"`
	RallyTarget             string          `yaml:"rally_target"`
}

// NewSnapshot converts a summary into its serializable form.
func NewSnapshot(summary *types.InsightSummary) Snapshot {
	return Snapshot{
		ID:                      summary.ID,
		Ticker:                  summary.Ticker,
		Timeframe:               summary.Timeframe,
		GeneratedAt:             summary.GeneratedAt,
		CurrentPrice:            summary.CurrentPrice,
		PeriodHigh:              summary.PeriodHigh,
		PeriodLow:               summary.PeriodLow,
		ChangeFromLowPct:        summary.ChangeFromLowPct,
		MomentumDelta:           summary.MomentumDelta,
		SMAWindow:               summary.SMAWindow,
		RSIWindow:               summary.RSIWindow,
		SMA:                     toPointer(summary.LatestSMA),
		RSI:                     toPointer(summary.LatestRSI),
		Volatility:              toPointer(summary.Volatility),
		AnnualizedVolatilityPct: toPointer(summary.AnnualizedVolatilityPct),
		LongTermStrategy:        summary.LongTermStrategy,
		ShortTermStrategy:       summary.ShortTermStrategy,
		RiskLevel:               summary.RiskLevel,
		Recommendation:          summary.Recommendation,
		RecommendationReason:    summary.RecommendationReason,
		AccumulateBelow:         summary.Targets.AccumulateBelow.StringFixed(2),
		EntryNear:               summary.Targets.EntryNear.StringFixed(2),
		StopLoss:                summary.Targets.StopLoss.StringFixed(2),
		BreakoutAbove:           summary.Targets.BreakoutAbove.StringFixed(2),
		RallyTarget:             summary.Targets.RallyTarget.StringFixed(2),
	}
}

// ToYAML serializes the snapshot to a yaml document.
func (s Snapshot) ToYAML() ([]byte, error) {
	return yaml.Marshal(s)
}

func toPointer(value optional.Option[float64]) *float64 {
	if value.IsNone() {
		return nil
	}

	v := value.Unwrap()

	return &v
}
