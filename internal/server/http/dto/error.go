package dto

// ErrorResponse is the envelope for failed requests. Violations carry
// the individual failed constraints when a validation rejected the
// request.
type ErrorResponse struct {
	Error      string   `json:"error"`
	Field      string   `json:"field,omitempty"`
	Violations []string `json:"violations,omitempty"`
}
