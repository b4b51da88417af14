package types

import "errors"

// Slug identifies a calculator in URLs and on the command line.
type Slug string

// String returns the string form of the slug.
func (s Slug) String() string { return string(s) }

// Category groups calculators on the index page and in `calckit list`.
type Category string

// String returns the string form of the category.
func (c Category) String() string { return string(c) }

const (
	CategoryDate       Category = "date"
	CategoryFinance    Category = "finance"
	CategoryGeometry   Category = "geometry"
	CategoryHealth     Category = "health"
	CategoryMath       Category = "math"
	CategoryConversion Category = "conversion"
	CategoryDeveloper  Category = "developer"
	CategoryScience    Category = "science"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryFinance,
	CategoryMath,
	CategoryGeometry,
	CategoryHealth,
	CategoryDate,
	CategoryConversion,
	CategoryDeveloper,
	CategoryScience,
}

// Title returns the human readable heading for the category.
func (c Category) Title() string {
	switch c {
	case CategoryDate:
		return "Age & Date"
	case CategoryFinance:
		return "Financial"
	case CategoryGeometry:
		return "Geometry"
	case CategoryHealth:
		return "Health & Fitness"
	case CategoryMath:
		return "Math"
	case CategoryConversion:
		return "Unit Conversion"
	case CategoryDeveloper:
		return "Developer Tools"
	case CategoryScience:
		return "Science"
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

var (
	// ErrUnknownCalculator is returned when a slug has no registered calculator.
	ErrUnknownCalculator = errors.New("unknown calculator")

	// ErrHistoryDisabled is returned by history operations when no store is configured.
	ErrHistoryDisabled = errors.New("history is disabled")
)
