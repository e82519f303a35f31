package graph

import (
	"fmt"

	"go.uber.org/zap"

	"glucograph/defs"
	"glucograph/pkg/clean"
	"glucograph/pkg/export"
	"glucograph/pkg/plot"
	"glucograph/pkg/stats"
)

// Graph runs the whole pipeline for one export file: read, clean, aggregate,
// render.
type Graph struct {
	Config defs.Config
	Logger *zap.Logger
}

func New(config defs.Config) *Graph {
	return &Graph{Config: config, Logger: config.Logger}
}

func (g *Graph) Run(path string) error {
	tbl, err := export.ReadFile(path)
	if err != nil {
		return err
	}
	g.Logger.Debug("read export",
		zap.String("file", path),
		zap.Int("rows", len(tbl.Rows)),
	)

	rs, err := clean.Clean(tbl)
	if err != nil {
		return err
	}
	g.Logger.Debug("cleaned readings",
		zap.Int("kept", len(rs)),
		zap.Int("dropped", len(tbl.Rows)-len(rs)),
	)

	hs := stats.Hourly(rs)
	if len(hs) == 0 {
		return fmt.Errorf("no usable readings in %s", path)
	}
	for _, h := range hs {
		g.Logger.Debug("hourly stats",
			zap.Int("hour", h.Hour),
			zap.Float64("mean", h.Mean),
			zap.Float64("p5", h.P5),
			zap.Float64("p25", h.P25),
			zap.Float64("p75", h.P75),
			zap.Float64("p95", h.P95),
		)
	}

	ra := stats.TimeSpentInRange(rs, g.Config.Glucose.TargetLow, g.Config.Glucose.TargetHigh)
	ss := stats.GlucoseSummary(rs)
	g.Logger.Info("run summary",
		zap.Float64("average", ss.Average),
		zap.Float64("deviation", ss.Deviation),
		zap.Float64("belowRange", ra.BelowRange),
		zap.Float64("inRange", ra.InRange),
		zap.Float64("aboveRange", ra.AboveRange),
	)

	if err := plot.Render(hs, g.Config.Glucose, g.Config.Chart.OutputFile); err != nil {
		return err
	}
	g.Logger.Info("wrote chart", zap.String("file", g.Config.Chart.OutputFile))
	return nil
}
