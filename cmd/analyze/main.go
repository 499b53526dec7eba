package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/rxtech-lab/stock-insight/internal/analyzer"
	"github.com/rxtech-lab/stock-insight/internal/logger"
	"github.com/rxtech-lab/stock-insight/internal/report"
	"github.com/rxtech-lab/stock-insight/internal/types"
	"github.com/rxtech-lab/stock-insight/pkg/marketdata"
	"github.com/rxtech-lab/stock-insight/pkg/marketdata/provider"
)

// analyzeAction is the core logic executed by the CLI command.
// It fetches the price history, runs the analysis pipeline and prints the report.
func analyzeAction(ctx context.Context, cmd *cli.Command) error {
	ticker := cmd.String("ticker")
	timeframeFlag := cmd.String("timeframe")
	providerFlag := cmd.String("provider")
	configPath := cmd.String("config")
	verbose := cmd.Bool("verbose")
	dumpYaml := cmd.Bool("dump-yaml")

	timeframe := types.Timeframe(timeframeFlag)
	if !timeframe.IsValid() {
		return fmt.Errorf("unsupported timeframe %q, expected one of %v", timeframeFlag, types.Timeframes())
	}

	appLogger, err := newAppLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer appLogger.Sync()

	config := analyzer.DefaultConfig()
	if configPath != "" {
		config, err = analyzer.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	engine, err := analyzer.NewAnalyzer(config, appLogger)
	if err != nil {
		return fmt.Errorf("failed to create analyzer: %w", err)
	}

	clientConfig := marketdata.ClientConfig{
		ProviderType:  provider.ProviderType(providerFlag),
		PolygonApiKey: os.Getenv("POLYGON_API_KEY"),
	}

	client, err := marketdata.NewClient(clientConfig, nil)
	if err != nil {
		return fmt.Errorf("failed to create market data client: %w", err)
	}

	series, err := client.Fetch(ctx, marketdata.FetchParams{
		Ticker:    ticker,
		Timeframe: timeframe,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch price history: %w", err)
	}

	analysis, err := engine.Analyze(ticker, timeframe, series)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	fmt.Println(report.Render(analysis.Summary))
	fmt.Printf("Recommendation: %s  Risk: %s\n",
		FormatRecommendation(analysis.Summary.Recommendation),
		FormatRiskLevel(analysis.Summary.RiskLevel))

	if dumpYaml {
		snapshot, err := report.NewSnapshot(analysis.Summary).ToYAML()
		if err != nil {
			return fmt.Errorf("failed to serialize snapshot: %w", err)
		}

		fmt.Println(TitleStyle.Render("Snapshot"))
		fmt.Println(string(snapshot))
	}

	return nil
}

// schemaAction prints the JSON schema of the analyzer config file.
func schemaAction(ctx context.Context, cmd *cli.Command) error {
	schema, err := analyzer.ConfigJSONSchema()
	if err != nil {
		return fmt.Errorf("failed to generate config schema: %w", err)
	}

	fmt.Println(schema)

	return nil
}

func newAppLogger(verbose bool) (*logger.Logger, error) {
	if verbose {
		return logger.NewDebugLogger()
	}

	return logger.NewLogger()
}

func main() {
	cmd := &cli.Command{
		Name:  "stock-insight",
		Usage: "Analyze a stock's price history and print a trading insight report",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "ticker",
				Aliases:  []string{"t"},
				Usage:    "Stock ticker symbol",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "timeframe",
				Aliases:  []string{"f"},
				Usage:    "Historical window (1D, 5D, 1M, 3M, 1Y, 5Y, YTD, Max)",
				Value:    string(types.TimeframeThreeMonth),
				Required: false,
			},
			&cli.StringFlag{
				Name:     "provider",
				Aliases:  []string{"p"},
				Usage:    fmt.Sprintf("Data provider to use (e.g., %s, %s)", provider.ProviderPolygon, provider.ProviderBinance),
				Value:    string(provider.ProviderPolygon),
				Required: false,
			},
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "Path to a yaml config overriding indicator windows and thresholds",
				Required: false,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "dump-yaml",
				Usage: "Print the machine-readable yaml snapshot after the report",
			},
		},
		Action: analyzeAction,
		Commands: []*cli.Command{
			{
				Name:   "schema",
				Usage:  "Print the JSON schema of the analyzer config file",
				Action: schemaAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(ErrorStyle.Render(err.Error()))
	}
}
