// Package web serves the calculator site and its JSON API.
//
// Pages are html/template files embedded in the binary. Every calculator
// page carries a schema.org WebApplication JSON-LD block and an ETag derived
// from the rendered body. The router is chi with request ids, real client
// IPs, panic recovery, a request timeout and brotli or gzip compression.
//
// Routes:
//
//	GET  /                         index grouped by category
//	GET  /c/{slug}                 calculator form with default inputs
//	POST /c/{slug}                 compute and render the result in place
//	GET  /sitemap.xml              sitemap of every page
//	GET  /healthz                  liveness probe
//	GET  /api/calculators          calculator schemas (?category=)
//	GET  /api/calculators/{slug}   one schema
//	POST /api/calculators/{slug}   {"inputs":{...}} -> result
//	GET  /api/history              saved computations (?slug=&limit=)
//	POST /api/history              {"slug","inputs"} -> saved entry
//	DELETE /api/history            clear history
//
// API errors are JSON {"error","field"}: 400 for malformed requests, 404 for
// unknown calculators, 409 when history is disabled and 422 for invalid
// inputs.
package web
