// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (calculator schemas, inputs, results, history
// entries) and contracts (interfaces) only. Calculation kernels live under
// internal/calc and never import this package.
package domain
