package algebra

import "errors"

// ErrZeroBase is returned when a percentage is taken relative to zero.
var ErrZeroBase = errors.New("base value must not be zero")

// Direction of a percentage change.
type Direction string

const (
	Increase Direction = "increase"
	Decrease Direction = "decrease"
	NoChange Direction = "no change"
)

// Change is the relative difference between two values.
type Change struct {
	Delta     float64   `json:"delta"`
	Percent   float64   `json:"percent"`
	Direction Direction `json:"direction"`
}

// PercentChange reports how far to moved from from, as an unsigned
// percentage of from plus a direction.
func PercentChange(from, to float64) (Change, error) {
	if from == 0 {
		return Change{}, ErrZeroBase
	}
	delta := to - from
	pct := delta / from * 100
	if pct < 0 {
		pct = -pct
	}
	dir := NoChange
	switch {
	case delta > 0:
		dir = Increase
	case delta < 0:
		dir = Decrease
	}
	return Change{Delta: delta, Percent: pct, Direction: dir}, nil
}

// PercentOf returns pct percent of whole.
func PercentOf(pct, whole float64) float64 { return pct * whole / 100 }

// WhatPercent returns part as a percentage of whole.
func WhatPercent(part, whole float64) (float64, error) {
	if whole == 0 {
		return 0, ErrZeroBase
	}
	return part / whole * 100, nil
}
