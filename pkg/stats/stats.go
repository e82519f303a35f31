package stats

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"glucograph/defs"
)

// Hourly groups readings by calendar hour-of-day and summarizes each group.
// No timezone conversion is applied; the hour is taken from the timestamp as
// parsed. Hours with no readings are absent from the result, which is sorted
// ascending by hour.
func Hourly(rs []defs.Reading) []defs.HourlyStat {
	if len(rs) == 0 {
		return []defs.HourlyStat{}
	}

	groups := make(map[int][]float64)
	for _, r := range rs {
		h := r.Time.Hour()
		groups[h] = append(groups[h], float64(r.MgDL))
	}

	hours := make([]int, 0, len(groups))
	for h := range groups {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	hs := make([]defs.HourlyStat, 0, len(hours))
	for _, h := range hours {
		vals := groups[h]
		mean, _ := stats.Mean(vals)

		sorted := make([]float64, len(vals))
		copy(sorted, vals)
		sort.Float64s(sorted)

		hs = append(hs, defs.HourlyStat{
			Hour: h,
			Mean: mean,
			P5:   Quantile(sorted, 0.05),
			P25:  Quantile(sorted, 0.25),
			P75:  Quantile(sorted, 0.75),
			P95:  Quantile(sorted, 0.95),
		})
	}
	return hs
}

// Quantile returns the order statistic of an ascending-sorted sample nearest
// to rank f*(n-1), rounding half away from zero. A single-element sample
// yields its lone value for every f.
func Quantile(sorted []float64, f float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	idx := int(math.Round(f * float64(len(sorted)-1)))
	return sorted[idx]
}

type RangeAnalysis struct {
	BelowRange float64
	InRange    float64
	AboveRange float64
}

// TimeSpentInRange reports the fraction of readings below, inside, and above
// the [lower, upper] target range.
func TimeSpentInRange(rs []defs.Reading, lower, upper float64) RangeAnalysis {
	if len(rs) == 0 {
		return RangeAnalysis{}
	}

	below, above := 0.0, 0.0
	for _, r := range rs {
		switch {
		case float64(r.MgDL) <= lower:
			below++
		case float64(r.MgDL) >= upper:
			above++
		}
	}
	in := float64(len(rs)) - below - above

	total := float64(len(rs))
	return RangeAnalysis{
		BelowRange: below / total,
		InRange:    in / total,
		AboveRange: above / total,
	}
}

type SummaryStatistics struct {
	Average   float64
	Deviation float64
}

func GlucoseSummary(rs []defs.Reading) SummaryStatistics {
	vals := make([]float64, len(rs))
	for i, r := range rs {
		vals[i] = float64(r.MgDL)
	}
	avg, _ := stats.Mean(vals)
	dev, _ := stats.StandardDeviation(vals)
	return SummaryStatistics{Average: avg, Deviation: dev}
}
