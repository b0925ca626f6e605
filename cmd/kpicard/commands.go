package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/uyouii/kpi-visuals/card"
	"github.com/uyouii/kpi-visuals/config"
	"github.com/uyouii/kpi-visuals/format"
	"github.com/uyouii/kpi-visuals/model"
	"github.com/uyouii/kpi-visuals/threshold"
	"github.com/uyouii/kpi-visuals/utils"
	"go.uber.org/zap"
)

type app struct {
	settings *config.Settings
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "kpicard",
		Short:         "Format, classify and summarize KPI series the way the card visuals do",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadSettings(cmd)
		},
	}
	root.PersistentFlags().String("config", "", "config file path (default: ./config/kpicard.yaml)")
	root.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(a.versionCmd(), a.cardCmd(), a.formatCmd(), a.classifyCmd(), a.hoverCmd())
	return root
}

func (a *app) loadSettings(cmd *cobra.Command) error {
	ctx := cmd.Context()
	configFile, _ := cmd.Flags().GetString("config")

	var err error
	if configFile != "" {
		a.settings, err = config.LoadFromFile(ctx, configFile)
	} else {
		a.settings, err = config.Load(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level := a.settings.Logging.Level
	if override, _ := cmd.Flags().GetString("log-level"); override != "" {
		level = override
	}
	if err := utils.SetLevel(level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return nil
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "kpicard %s (commit: %s)\n", version, commit)
		},
	}
}

func (a *app) cardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Summarize a number card from a series file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := utils.GetLogger(ctx)

			path, _ := cmd.Flags().GetString("series")
			file, err := model.LoadSeriesFile(path)
			if err != nil {
				return err
			}
			chart, err := file.Series(0)
			if err != nil {
				return err
			}
			logger.Debug("loaded series", zap.String("path", path), zap.String("chart", chart.DebugString()))

			c, err := card.BuildCard(ctx, card.Input{
				Metric:  file.Metric,
				Measure: file.Measure,
				Change:  file.Change,
				State:   file.State,
				Chart:   chart,
			}, a.settings)
			if err != nil {
				return err
			}
			printCard(cmd.OutOrStdout(), c, chart)
			return nil
		},
	}
	cmd.Flags().String("series", "", "series file (YAML or JSON)")
	_ = cmd.MarkFlagRequired("series")
	return cmd
}

func printCard(w io.Writer, c *card.Card, chart model.Series) {
	fmt.Fprintf(w, "metric:  %s\n", c.Metric)
	fmt.Fprintf(w, "measure: %s (%s)\n", c.Measure, c.MeasureColor)
	fmt.Fprintf(w, "change:  %s %s (%s)\n", c.ChangeText, c.ChangeLabel, c.ChangeColor)
	if c.ImageURL != "" {
		fmt.Fprintf(w, "image:   %s @%v%%\n", c.ImageURL, c.ImageScale)
	}
	fmt.Fprintf(w, "chart:   %s, y in [%v, %v], ticks %s\n",
		c.ChartType, c.YDomain[0], c.YDomain[1], strings.Join(c.AxisLabels, " "))
	if c.Trend != nil {
		fmt.Fprintf(w, "trend:   %s=%.4g -> %s=%.4g (slope %.4g, r2 %.4g)\n",
			chart.Label(0), c.Trend.StartValue, chart.Label(chart.Len()-1), c.Trend.EndValue,
			c.Trend.Fit.Slope, c.Trend.Fit.RSquared)
	}
}

func (a *app) formatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <value>",
		Short: "Format a number with the configured or given format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse value %q: %w", args[0], err)
			}
			spec, err := a.settings.FormatSpec()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("mode") {
				mode, _ := cmd.Flags().GetString("mode")
				if spec.Mode, err = model.ParseFormatMode(mode); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("decimals") {
				decimals, _ := cmd.Flags().GetInt("decimals")
				spec.Decimals = model.Decimals(decimals)
			}
			if cmd.Flags().Changed("thousands") {
				spec.ThousandsSeparator, _ = cmd.Flags().GetString("thousands")
			}
			if cmd.Flags().Changed("decimal") {
				spec.DecimalSeparator, _ = cmd.Flags().GetString("decimal")
			}
			if err := spec.Validate(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.New(spec).Format(value))
			return nil
		},
	}
	cmd.Flags().String("mode", "", "compact, percentage or decimal")
	cmd.Flags().Int("decimals", 0, "number of decimals")
	cmd.Flags().String("thousands", ",", "thousands separator")
	cmd.Flags().String("decimal", ".", "decimal separator")
	return cmd
}

func (a *app) classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <value>",
		Short: "Print the rule color and change band color for a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse value %q: %w", args[0], err)
			}
			rules, err := a.settings.ThresholdRules()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "rule: %s\n", threshold.Classify(value, rules, a.settings.DefaultColor))
			fmt.Fprintf(w, "band: %s\n", a.settings.ChangeBands().Classify(value))
			return nil
		},
	}
}

func (a *app) hoverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hover <position>",
		Short: "Print the tooltip shown when hovering at a position",
		Long: "Print the tooltip shown when hovering at a position. Temporal series take a\n" +
			"date (2006-01-02) or RFC3339 time, the others a number.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("series")
			file, err := model.LoadSeriesFile(path)
			if err != nil {
				return err
			}

			query, err := parsePosition(args[0], file.Temporal)
			if err != nil {
				return err
			}

			measures := make([]card.Measure, 0, len(file.Measures))
			for i, entry := range file.Measures {
				series, err := file.Series(i)
				if err != nil {
					return err
				}
				mode := model.FormatMode("")
				if entry.Mode != "" {
					if mode, err = model.ParseFormatMode(entry.Mode); err != nil {
						return fmt.Errorf("measure %q: %w", entry.Name, err)
					}
				}
				measures = append(measures, card.Measure{Name: entry.Name, Series: series, Mode: mode})
			}

			w := cmd.OutOrStdout()
			for _, item := range card.Tooltip(query, measures...) {
				if item.Header != "" {
					fmt.Fprintln(w, item.Header)
				}
				fmt.Fprintf(w, "  %s: %s\n", item.DisplayName, item.Value)
			}
			return nil
		},
	}
	cmd.Flags().String("series", "", "series file (YAML or JSON)")
	_ = cmd.MarkFlagRequired("series")
	return cmd
}

func parsePosition(s string, temporal bool) (float64, error) {
	if temporal {
		for _, layout := range []string{"2006-01-02", time.RFC3339} {
			if t, err := time.Parse(layout, s); err == nil {
				return model.TimePosition(t), nil
			}
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse position %q: %w", s, err)
	}
	return v, nil
}
