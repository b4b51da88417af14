// Package main runs calcweb, the calckit web server.
//
// It serves one HTML page per calculator plus a JSON API used by
// `calckit --remote`. Configuration comes from <home>/config.yaml and
// CALCKIT_* environment variables; -addr overrides the listen address.
//
// HTTP API
//
//	GET /api/calculators[?category=C]
//	    Return every calculator schema (slug, title, category, fields).
//
//	GET /api/calculators/{slug}
//	    Return one schema, or 404.
//
//	POST /api/calculators/{slug} {"inputs": {"name": "value", ...}}
//	    Compute and return the result: summary, values, table, steps, notes.
//	    Missing inputs take their defaults. Invalid inputs return 422 with
//	    {"error": "...", "field": "name"}.
//
//	GET /api/history[?slug=S&limit=N]
//	    Return saved computations, newest first.
//
//	POST /api/history {"slug": "...", "inputs": {...}}
//	    Recompute and save. Saving identical inputs again refreshes the
//	    existing entry.
//
//	DELETE /api/history
//	    Clear history.
//
// History endpoints return 409 when history.enabled is false.
//
// Behaviour
//
//   - Pages: GET / (index), GET and POST /c/{slug}, /sitemap.xml, /healthz.
//   - Responses are brotli or gzip compressed when the client accepts it.
//   - One access log line per request records method, path, status, bytes,
//     duration and request id.
//   - SIGINT and SIGTERM trigger a graceful shutdown.
package main
