package convert

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	ErrUnknownUnit   = errors.New("unknown unit")
	ErrUnknownDomain = errors.New("unknown unit kind")
	ErrBelowZero     = errors.New("temperature is below absolute zero")
	ErrOverflow      = errors.New("converted value is too large to represent")
)

// Quantity groups units that convert into each other.
type Quantity string

const (
	Length      Quantity = "length"
	Mass        Quantity = "mass"
	Temperature Quantity = "temperature"
	Volume      Quantity = "volume"
	DataSize    Quantity = "data"
	Speed       Quantity = "speed"
)

// Quantities lists the supported quantities in display order.
var Quantities = []Quantity{Length, Mass, Temperature, Volume, DataSize, Speed}

// Unit is a linear unit expressed as a factor of the quantity's base unit.
type Unit struct {
	Symbol string
	Name   string
	Factor float64
}

// base units: metre, kilogram, litre, byte, metre per second.
var linearUnits = map[Quantity][]Unit{
	Length: {
		{"mm", "millimetre", 0.001},
		{"cm", "centimetre", 0.01},
		{"m", "metre", 1},
		{"km", "kilometre", 1000},
		{"in", "inch", 0.0254},
		{"ft", "foot", 0.3048},
		{"yd", "yard", 0.9144},
		{"mi", "mile", 1609.344},
		{"nmi", "nautical mile", 1852},
	},
	Mass: {
		{"mg", "milligram", 1e-6},
		{"g", "gram", 0.001},
		{"kg", "kilogram", 1},
		{"t", "tonne", 1000},
		{"oz", "ounce", 0.028349523125},
		{"lb", "pound", 0.45359237},
		{"st", "stone", 6.35029318},
	},
	Volume: {
		{"ml", "millilitre", 0.001},
		{"l", "litre", 1},
		{"m3", "cubic metre", 1000},
		{"tsp", "US teaspoon", 0.00492892159375},
		{"tbsp", "US tablespoon", 0.01478676478125},
		{"floz", "US fluid ounce", 0.0295735295625},
		{"cup", "US cup", 0.2365882365},
		{"pt", "US pint", 0.473176473},
		{"qt", "US quart", 0.946352946},
		{"gal", "US gallon", 3.785411784},
	},
	DataSize: {
		{"b", "bit", 0.125},
		{"B", "byte", 1},
		{"KB", "kilobyte", 1e3},
		{"MB", "megabyte", 1e6},
		{"GB", "gigabyte", 1e9},
		{"TB", "terabyte", 1e12},
		{"KiB", "kibibyte", 1 << 10},
		{"MiB", "mebibyte", 1 << 20},
		{"GiB", "gibibyte", 1 << 30},
		{"TiB", "tebibyte", 1 << 40},
	},
	Speed: {
		{"m/s", "metres per second", 1},
		{"km/h", "kilometres per hour", 1000.0 / 3600},
		{"mph", "miles per hour", 0.44704},
		{"kn", "knots", 1852.0 / 3600},
		{"ft/s", "feet per second", 0.3048},
	},
}

var temperatureUnits = []Unit{
	{Symbol: "C", Name: "Celsius"},
	{Symbol: "F", Name: "Fahrenheit"},
	{Symbol: "K", Name: "Kelvin"},
}

// Units returns the units of q in display order.
func Units(q Quantity) ([]Unit, error) {
	if q == Temperature {
		return temperatureUnits, nil
	}
	units, ok := linearUnits[q]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownDomain, string(q))
	}
	return units, nil
}

// Symbols returns the sorted unit symbols of q.
func Symbols(q Quantity) []string {
	units, _ := Units(q)
	out := make([]string, 0, len(units))
	for _, u := range units {
		out = append(out, u.Symbol)
	}
	sort.Strings(out)
	return out
}

func lookupUnit(q Quantity, symbol string) (Unit, error) {
	units, err := Units(q)
	if err != nil {
		return Unit{}, err
	}
	for _, u := range units {
		if u.Symbol == symbol {
			return u, nil
		}
	}
	return Unit{}, fmt.Errorf("%w %q for %s", ErrUnknownUnit, symbol, q)
}

// ConvertUnit converts value between two units of the same quantity.
func ConvertUnit(q Quantity, value float64, from, to string) (float64, error) {
	src, err := lookupUnit(q, from)
	if err != nil {
		return 0, err
	}
	dst, err := lookupUnit(q, to)
	if err != nil {
		return 0, err
	}
	var out float64
	if q == Temperature {
		out, err = convertTemperature(value, src.Symbol, dst.Symbol)
		if err != nil {
			return 0, err
		}
	} else {
		out = value * src.Factor / dst.Factor
	}
	if math.IsInf(out, 0) || math.IsNaN(out) {
		return 0, ErrOverflow
	}
	return out, nil
}

func convertTemperature(v float64, from, to string) (float64, error) {
	var k float64
	switch from {
	case "C":
		k = v + 273.15
	case "F":
		k = (v-32)*5/9 + 273.15
	case "K":
		k = v
	}
	if k < 0 {
		return 0, ErrBelowZero
	}
	switch to {
	case "C":
		return k - 273.15, nil
	case "F":
		return (k-273.15)*9/5 + 32, nil
	default:
		return k, nil
	}
}
