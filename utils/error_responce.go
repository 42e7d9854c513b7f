package utils

// ErrorResponse is the JSON envelope handlers return on failure: a short
// client-facing message plus the underlying error text.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
