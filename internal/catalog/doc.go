// Package catalog binds the calculation kernels under internal/calc to
// form schemas.
//
// Each calculator declares its fields and a compute function that reads
// raw Inputs through a form reader, calls its kernel and renders a
// domain.Result. Input problems surface as *domain.ValidationError naming
// the first offending field, and kernel errors are attributed to the field
// that caused them where possible.
//
// Default returns the registry of every built-in calculator. The registry is
// immutable after construction and safe for concurrent use.
package catalog
