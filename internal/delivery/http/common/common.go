package http_common

// ErrorResponse is the error body every endpoint returns. Error carries a
// short machine-readable reason, Message optional human detail.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}
