package defs

import "time"

// Reading is a single cleaned sensor record: an export row that survived
// validation, with a parsed timestamp and a non-negative glucose value.
type Reading struct {
	Time time.Time
	MgDL int32
}

func (r Reading) GetTime() time.Time {
	return r.Time
}

// HourlyStat summarizes every reading sharing one hour-of-day (0-23).
type HourlyStat struct {
	Hour int
	Mean float64
	P5   float64
	P25  float64
	P75  float64
	P95  float64
}
