package analyzer

import (
	"encoding/json"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/rxtech-lab/stock-insight/internal/indicator"
	"github.com/rxtech-lab/stock-insight/pkg/errors"
)

// Config controls the indicator windows and thresholds of an analysis run.
type Config struct {
	// SMAWindow is the moving average window in trading days.
	SMAWindow int `yaml:"sma_window" json:"smaWindow" jsonschema:"title=SMA Window,description=Moving average window in trading days,default=20" validate:"gt=0"`
	// RSIWindow is the relative strength index window in trading days.
	RSIWindow int `yaml:"rsi_window" json:"rsiWindow" jsonschema:"title=RSI Window,description=RSI window in trading days,default=14" validate:"gt=0"`
	// RSIOverbought and RSIOversold are the RSI extreme thresholds.
	RSIOverbought float64 `yaml:"rsi_overbought" json:"rsiOverbought" jsonschema:"title=RSI Overbought,default=70" validate:"gt=0,lte=100,gtfield=RSIOversold"`
	RSIOversold   float64 `yaml:"rsi_oversold" json:"rsiOversold" jsonschema:"title=RSI Oversold,default=30" validate:"gte=0,lt=100"`
}

// DefaultConfig returns the conventional windows and thresholds.
func DefaultConfig() Config {
	return Config{
		SMAWindow:     indicator.DefaultSMAWindow,
		RSIWindow:     indicator.DefaultRSIWindow,
		RSIOverbought: indicator.DefaultRSIOverbought,
		RSIOversold:   indicator.DefaultRSIOversold,
	}
}

// Validate validates the config fields.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid analyzer config", err)
	}

	return nil
}

// ParseConfig parses a yaml document into a validated Config. Missing fields
// fall back to the defaults.
func ParseConfig(yamlConfig []byte) (Config, error) {
	config := DefaultConfig()

	if err := yaml.Unmarshal(yamlConfig, &config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse yaml config", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// LoadConfig reads and parses a yaml config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to read config file %s", path)
	}

	return ParseConfig(data)
}

// ConfigJSONSchema returns the JSON schema describing the config surface.
func ConfigJSONSchema() (string, error) {
	r := new(jsonschema.Reflector)
	r.DoNotReference = true
	schema := r.Reflect(Config{})

	jsonSchemaBytes, err := json.Marshal(schema)
	if err != nil {
		return "", err
	}

	return string(jsonSchemaBytes), nil
}
