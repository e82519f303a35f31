package plot

import (
	"fmt"
	"os"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"glucograph/defs"
)

const smoothSamples = 300

var (
	targetColor    = drawing.Color{R: 144, G: 238, B: 144, A: 255}
	outerBandColor = drawing.Color{R: 211, G: 211, B: 211, A: 255}
	innerBandColor = drawing.Color{R: 169, G: 169, B: 169, A: 255}

	meanColor = drawing.Color{R: 31, G: 119, B: 180, A: 255}
	p5Color   = drawing.Color{R: 255, G: 127, B: 14, A: 255}
	p25Color  = drawing.Color{R: 44, G: 160, B: 44, A: 255}
	p75Color  = drawing.Color{R: 214, G: 39, B: 40, A: 255}
	p95Color  = drawing.Color{R: 148, G: 103, B: 189, A: 255}

	gridStyle = chart.Style{
		StrokeColor: drawing.Color{R: 0, G: 0, B: 0, A: 30},
		StrokeWidth: 1,
	}
)

// Render draws the smoothed daily-pattern chart for the given hourly stats
// and writes it as a PNG, overwriting any existing file. The target range is
// drawn as a shaded band behind the percentile bands.
func Render(hs []defs.HourlyStat, glucose defs.GlucoseConfig, outFile string) error {
	if len(hs) == 0 {
		return fmt.Errorf("nothing to plot")
	}
	hs = padSingleHour(hs)

	xs := make([]float64, len(hs))
	means := make([]float64, len(hs))
	p5s := make([]float64, len(hs))
	p25s := make([]float64, len(hs))
	p75s := make([]float64, len(hs))
	p95s := make([]float64, len(hs))
	for i, h := range hs {
		xs[i] = float64(h.Hour)
		means[i] = h.Mean
		p5s[i] = h.P5
		p25s[i] = h.P25
		p75s[i] = h.P75
		p95s[i] = h.P95
	}

	sx, mean := smooth(xs, means, smoothSamples)
	_, p5 := smooth(xs, p5s, smoothSamples)
	_, p25 := smooth(xs, p25s, smoothSamples)
	_, p75 := smooth(xs, p75s, smoothSamples)
	_, p95 := smooth(xs, p95s, smoothSamples)

	yMax := glucose.TargetHigh
	for _, ys := range [][]float64{mean, p95} {
		for _, y := range ys {
			if y > yMax {
				yMax = y
			}
		}
	}

	x0, x1 := sx[0], sx[len(sx)-1]
	series := []chart.Series{
		// Bands paint back to front; each fill runs down to the x-axis,
		// so later fills carve the earlier ones into bands.
		constSeries(x0, x1, glucose.TargetHigh, targetColor),
		constSeries(x0, x1, glucose.TargetLow, chart.ColorWhite),
		fillSeries(sx, p95, outerBandColor),
		fillSeries(sx, p75, innerBandColor),
		fillSeries(sx, p25, outerBandColor),
		fillSeries(sx, p5, chart.ColorWhite),
		lineSeries("Mean", sx, mean, meanColor),
		lineSeries("5th Percentile", sx, p5, p5Color),
		lineSeries("25th Percentile", sx, p25, p25Color),
		lineSeries("75th Percentile", sx, p75, p75Color),
		lineSeries("95th Percentile", sx, p95, p95Color),
	}

	ch := chart.Chart{
		Title:  "Hourly Glucose Levels (95%, 75%, Mean, 25%, 5%)",
		Width:  1280,
		Height: 720,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           "Hour of the Day",
			Ticks:          hourTicks(),
			Range:          &chart.ContinuousRange{Min: 0, Max: 23},
			GridMajorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Name:           "Glucose Value (mg/dL)",
			Range:          &chart.ContinuousRange{Min: 0, Max: yMax + 20},
			GridMajorStyle: gridStyle,
		},
		Series: series,
	}

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return ch.Render(chart.PNG, f)
}

// padSingleHour duplicates a lone stat row one hour over; go-chart needs at
// least two distinct x values to render a series.
func padSingleHour(hs []defs.HourlyStat) []defs.HourlyStat {
	if len(hs) != 1 {
		return hs
	}
	pad := hs[0]
	if pad.Hour < 23 {
		pad.Hour++
		return []defs.HourlyStat{hs[0], pad}
	}
	pad.Hour--
	return []defs.HourlyStat{pad, hs[0]}
}

func constSeries(x0, x1, y float64, col drawing.Color) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		XValues: []float64{x0, x1},
		YValues: []float64{y, y},
		Style:   chart.Style{StrokeWidth: 1, StrokeColor: col, FillColor: col},
	}
}

func fillSeries(xs, ys []float64, col drawing.Color) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		XValues: xs,
		YValues: ys,
		Style:   chart.Style{StrokeWidth: 1, StrokeColor: col, FillColor: col},
	}
}

func lineSeries(name string, xs, ys []float64, col drawing.Color) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name:    name,
		XValues: xs,
		YValues: ys,
		Style:   chart.Style{StrokeWidth: 2, StrokeColor: col},
	}
}

func hourTicks() []chart.Tick {
	ticks := make([]chart.Tick, 0, 24)
	for h := 0; h < 24; h++ {
		ticks = append(ticks, chart.Tick{Value: float64(h), Label: strconv.Itoa(h)})
	}
	return ticks
}
