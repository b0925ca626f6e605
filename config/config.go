package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/uyouii/kpi-visuals/common"
	"github.com/uyouii/kpi-visuals/model"
	"github.com/uyouii/kpi-visuals/threshold"
	"github.com/uyouii/kpi-visuals/utils"
	"go.uber.org/zap"
)

const (
	configName = "kpicard"
	envPrefix  = "KPICARD"

	DefaultColor = "inherit"
)

// Settings holds the display settings of a card or chart visual.
type Settings struct {
	Format       FormatSettings  `mapstructure:"format"`
	Change       ChangeSettings  `mapstructure:"change"`
	Chart        ChartSettings   `mapstructure:"chart"`
	Image        ImageSettings   `mapstructure:"image"`
	Metric       TextSettings    `mapstructure:"metric"`
	Measure      TextSettings    `mapstructure:"measure"`
	Rules        []RuleSettings  `mapstructure:"rules"`
	DefaultColor string          `mapstructure:"default_color"`
	Logging      LoggingSettings `mapstructure:"logging"`
}

type FormatSettings struct {
	Mode string `mapstructure:"mode"`
	// nil keeps the mode default
	Decimals           *int   `mapstructure:"decimals"`
	ThousandsSeparator string `mapstructure:"thousands_separator"`
	DecimalSeparator   string `mapstructure:"decimal_separator"`
	Lowercase          bool   `mapstructure:"lowercase"`
}

type ChangeSettings struct {
	Text     string  `mapstructure:"text"`
	FontSize float64 `mapstructure:"font_size"`
	Limit1   float64 `mapstructure:"limit1"`
	Limit2   float64 `mapstructure:"limit2"`
	Color1   string  `mapstructure:"color1"`
	Color2   string  `mapstructure:"color2"`
	Color3   string  `mapstructure:"color3"`
}

type ChartSettings struct {
	Type       string `mapstructure:"type"` // "bar" or "line"
	Color      string `mapstructure:"color"`
	ShowTrend  bool   `mapstructure:"show_trend"`
	TrendColor string `mapstructure:"trend_color"`
	Ticks      int    `mapstructure:"ticks"`
}

type ImageSettings struct {
	URL   string  `mapstructure:"url"`
	Scale float64 `mapstructure:"scale"` // percent
}

type TextSettings struct {
	FontSize  float64 `mapstructure:"font_size"`
	FontColor string  `mapstructure:"font_color"`
}

// RuleSettings is one user defined condition/value/color triple.
type RuleSettings struct {
	Enabled   bool     `mapstructure:"enabled"`
	Condition string   `mapstructure:"condition"`
	Value     *float64 `mapstructure:"value"`
	Color     string   `mapstructure:"color"`
}

type LoggingSettings struct {
	Level string `mapstructure:"level"`
}

// Load reads kpicard.yaml from ./config, ~/.kpicard or /etc/kpicard, the first
// found wins. A missing file is fine. Environment variables override file
// values, e.g. KPICARD_FORMAT_MODE=decimal.
func Load(ctx context.Context) (*Settings, error) {
	logger := utils.GetLogger(ctx)

	v, err := newViper()
	if err != nil {
		return nil, err
	}
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), "."+configName))
	v.AddConfigPath(filepath.Join("/etc", configName))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		logger.Debug("no config file found, using defaults")
	} else {
		logger.Info("loaded config", zap.String("path", v.ConfigFileUsed()))
	}

	return unmarshal(v)
}

// LoadFromFile reads the settings from path. The file must exist.
func LoadFromFile(ctx context.Context, path string) (*Settings, error) {
	logger := utils.GetLogger(ctx)

	v, err := newViper()
	if err != nil {
		return nil, err
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	logger.Info("loaded config", zap.String("path", path))

	return unmarshal(v)
}

// Default returns the built-in settings, environment overrides included.
func Default() (*Settings, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}
	return unmarshal(v)
}

func newViper() (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// keys without a default are only seen by Unmarshal when bound
	if err := v.BindEnv("format.decimals"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}
	return v, nil
}

func unmarshal(v *viper.Viper) (*Settings, error) {
	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("format.mode", string(model.CompactMode))
	v.SetDefault("format.thousands_separator", model.DefaultThousandsSeparator)
	v.SetDefault("format.decimal_separator", model.DefaultDecimalSeparator)
	v.SetDefault("format.lowercase", false)

	v.SetDefault("change.text", "")
	v.SetDefault("change.font_size", 18)
	v.SetDefault("change.limit1", threshold.DefaultLimit1)
	v.SetDefault("change.limit2", threshold.DefaultLimit2)
	v.SetDefault("change.color1", threshold.DefaultLowColor)
	v.SetDefault("change.color2", threshold.DefaultMidColor)
	v.SetDefault("change.color3", threshold.DefaultHighColor)

	v.SetDefault("chart.type", "bar")
	v.SetDefault("chart.color", "black")
	v.SetDefault("chart.show_trend", true)
	v.SetDefault("chart.trend_color", "black")
	v.SetDefault("chart.ticks", 5)

	v.SetDefault("image.url", "")
	v.SetDefault("image.scale", 100)

	v.SetDefault("metric.font_size", 10)
	v.SetDefault("metric.font_color", "black")
	v.SetDefault("measure.font_size", 24)

	v.SetDefault("default_color", DefaultColor)
	v.SetDefault("logging.level", "info")
}

func (s *Settings) Validate() error {
	if _, err := s.FormatSpec(); err != nil {
		return err
	}
	if s.Change.Limit1 > s.Change.Limit2 {
		return fmt.Errorf("%w: change.limit1 %v > change.limit2 %v",
			common.ErrorInvalidValue, s.Change.Limit1, s.Change.Limit2)
	}
	if _, err := s.ThresholdRules(); err != nil {
		return err
	}
	if s.Chart.Ticks < 0 {
		return fmt.Errorf("%w: chart.ticks %d", common.ErrorInvalidValue, s.Chart.Ticks)
	}
	return nil
}

func (s *Settings) FormatSpec() (model.FormatSpec, error) {
	mode, err := model.ParseFormatMode(s.Format.Mode)
	if err != nil {
		return model.FormatSpec{}, err
	}
	spec := model.FormatSpec{
		Mode:               mode,
		Decimals:           s.Format.Decimals,
		ThousandsSeparator: s.Format.ThousandsSeparator,
		DecimalSeparator:   s.Format.DecimalSeparator,
		Lowercase:          s.Format.Lowercase,
	}
	if err := spec.Validate(); err != nil {
		return model.FormatSpec{}, err
	}
	return spec, nil
}

// ThresholdRules converts the rules in their declared order.
func (s *Settings) ThresholdRules() ([]threshold.Rule[string], error) {
	rules := make([]threshold.Rule[string], 0, len(s.Rules))
	for i, r := range s.Rules {
		// a rule without a condition is kept but never matches
		var comparator threshold.Comparator
		if strings.TrimSpace(r.Condition) != "" {
			c, err := threshold.ParseComparator(r.Condition)
			if err != nil {
				return nil, fmt.Errorf("rules[%d]: %w", i, err)
			}
			comparator = c
		}
		rules = append(rules, threshold.Rule[string]{
			Enabled:    r.Enabled,
			Comparator: comparator,
			Bound:      r.Value,
			Label:      r.Color,
		})
	}
	return rules, nil
}

func (s *Settings) ChangeBands() threshold.Bands[string] {
	return threshold.Bands[string]{
		Limit1: s.Change.Limit1,
		Limit2: s.Change.Limit2,
		Low:    s.Change.Color1,
		Mid:    s.Change.Color2,
		High:   s.Change.Color3,
	}
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
