package defs

import "go.uber.org/zap"

// TimeFormat is the timestamp layout used by the Dexcom export.
const TimeFormat = "2006-01-02T15:04:05"

// Defaults.
const (
	DefaultChartFile  = "plot.png"
	DefaultTargetLow  = 80
	DefaultTargetHigh = 200
)

type Config struct {
	Chart   ChartConfig   `yaml:"chart"`
	Glucose GlucoseConfig `yaml:"glucose"`
	Logger  *zap.Logger   `yaml:"-"`
}

type ChartConfig struct {
	OutputFile string `yaml:"outputFile"`
}

// GlucoseConfig holds the target range bounds in mg/dL, rendered as the
// shaded band on the chart.
type GlucoseConfig struct {
	TargetLow  float64 `yaml:"targetLow"`
	TargetHigh float64 `yaml:"targetHigh"`
}

func DefaultConfig() Config {
	return Config{
		Chart: ChartConfig{OutputFile: DefaultChartFile},
		Glucose: GlucoseConfig{
			TargetLow:  DefaultTargetLow,
			TargetHigh: DefaultTargetHigh,
		},
	}
}
