// Package client talks to a calcweb server through its JSON API.
//
// HTTP implements domain.CalculatorService and domain.HistoryService, so the
// CLI can run calculations remotely with the same code path it uses locally.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Error bodies are mapped back to domain errors:
//   - 404 becomes domain.ErrUnknownCalculator
//   - 409 becomes domain.ErrHistoryDisabled
//   - 422 becomes a *domain.ValidationError carrying the offending field
//
// Any other non-2xx status is returned with the method, path and status text.
package client
