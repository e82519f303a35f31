package clean

import (
	"fmt"
	"strconv"
	"time"

	"glucograph/defs"
	"glucograph/pkg/export"
)

// The export writes "Low" when a reading falls below the sensor floor; it
// stands in for 30 mg/dL.
const (
	lowToken = "Low"
	lowMgDL  = 30
)

// stagedRow carries a row between passes. A nil field marks the value for
// removal on the next drop pass; a value is never skipped directly from
// replacement to retention.
type stagedRow struct {
	ts   string
	mgdl *int32
}

// Clean validates and normalizes a raw export table into typed readings,
// preserving input order. Dirty rows (unparseable or negative glucose,
// unparseable timestamp) are dropped, never surfaced as errors. The only
// error is a non-empty table missing a required column.
func Clean(t *export.Table) ([]defs.Reading, error) {
	if t.Empty() {
		return []defs.Reading{}, nil
	}

	ti := t.ColumnIndex(export.TimeColumn)
	gi := t.ColumnIndex(export.GlucoseColumn)
	if ti < 0 || gi < 0 {
		return nil, fmt.Errorf("export missing required columns %q, %q",
			export.TimeColumn, export.GlucoseColumn)
	}

	// Project to the two required columns, coercing glucose text to an
	// integer and nulling anything unparseable.
	staged := make([]stagedRow, 0, len(t.Rows))
	for _, row := range t.Rows {
		staged = append(staged, stagedRow{ts: row[ti], mgdl: parseGlucose(row[gi])})
	}
	staged = dropNullGlucose(staged)

	// Negative readings are nulled, not clamped, then dropped.
	for i := range staged {
		if *staged[i].mgdl < 0 {
			staged[i].mgdl = nil
		}
	}
	staged = dropNullGlucose(staged)

	// Strict timestamp parse, then drop the failures.
	times := make([]*time.Time, len(staged))
	for i, sr := range staged {
		if ts, err := time.Parse(defs.TimeFormat, sr.ts); err == nil {
			times[i] = &ts
		}
	}

	rs := make([]defs.Reading, 0, len(staged))
	for i, sr := range staged {
		if times[i] == nil {
			continue
		}
		rs = append(rs, defs.Reading{Time: *times[i], MgDL: *sr.mgdl})
	}
	return rs, nil
}

func parseGlucose(s string) *int32 {
	if s == lowToken {
		v := int32(lowMgDL)
		return &v
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return nil
	}
	v := int32(n)
	return &v
}

func dropNullGlucose(rows []stagedRow) []stagedRow {
	kept := make([]stagedRow, 0, len(rows))
	for _, r := range rows {
		if r.mgdl != nil {
			kept = append(kept, r)
		}
	}
	return kept
}
