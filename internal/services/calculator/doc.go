// Package calculator runs catalog calculators and records their results.
//
// Service implements both domain.CalculatorService and
// domain.HistoryService. History is optional: without a store every history
// operation returns domain.ErrHistoryDisabled.
package calculator
