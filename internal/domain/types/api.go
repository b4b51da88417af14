package types

// RunRequest is the JSON body of POST /api/calculators/{slug}.
type RunRequest struct {
	Inputs Inputs `json:"inputs"`
}

// RecordRequest is the JSON body of POST /api/history. The server recomputes
// the result before saving it.
type RecordRequest struct {
	Slug   Slug   `json:"slug"`
	Inputs Inputs `json:"inputs"`
}

// APIError is the JSON error body returned by the calcweb API. Field is set
// for validation failures attributable to one input.
type APIError struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}
