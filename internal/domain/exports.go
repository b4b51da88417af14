package domain

import (
	interfaces "calckit/internal/domain/interfaces"
	types "calckit/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Slug            = types.Slug
	Category        = types.Category
	FieldKind       = types.FieldKind
	Field           = types.Field
	Option          = types.Option
	Inputs          = types.Inputs
	ComputeFunc     = types.ComputeFunc
	Calculator      = types.Calculator
	Result          = types.Result
	Value           = types.Value
	Table           = types.Table
	ValidationError = types.ValidationError
	HistoryEntry    = types.HistoryEntry
	HistoryFilter   = types.HistoryFilter
	RunRequest      = types.RunRequest
	RecordRequest   = types.RecordRequest
	APIError        = types.APIError
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Registry          = interfaces.Registry
	CalculatorService = interfaces.CalculatorService
	HistoryService    = interfaces.HistoryService
	HistoryReader     = interfaces.HistoryReader
	HistoryStore      = interfaces.HistoryStore
)

// Field kinds.
const (
	KindNumber   = types.KindNumber
	KindInteger  = types.KindInteger
	KindText     = types.KindText
	KindTextArea = types.KindTextArea
	KindDate     = types.KindDate
	KindSelect   = types.KindSelect
)

// Categories.
const (
	CategoryDate       = types.CategoryDate
	CategoryFinance    = types.CategoryFinance
	CategoryGeometry   = types.CategoryGeometry
	CategoryHealth     = types.CategoryHealth
	CategoryMath       = types.CategoryMath
	CategoryConversion = types.CategoryConversion
	CategoryDeveloper  = types.CategoryDeveloper
	CategoryScience    = types.CategoryScience
)

var (
	// Categories lists every category in display order.
	Categories = types.Categories

	// ErrUnknownCalculator is returned when a slug has no registered calculator.
	ErrUnknownCalculator = types.ErrUnknownCalculator

	// ErrHistoryDisabled is returned by history operations when no store is configured.
	ErrHistoryDisabled = types.ErrHistoryDisabled

	// Invalid wraps an error as a ValidationError for a field.
	Invalid = types.Invalid

	// IsValidation reports whether an error carries a ValidationError.
	IsValidation = types.IsValidation
)
