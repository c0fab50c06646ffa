package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

// Response wraps messages and errors. Read endpoints encode their payload
// directly instead.
type Response struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

const (
	msgConfirmationRejected = "Confirmation rejected"
	msgConfirmationFailed   = "Confirmation failed"
	msgSessionRejected      = "Session rejected"
	msgDecryptRejected      = "Decrypt rejected"
	msgDecryptRateLimited   = "Decrypt rate limited"
	msgSearchFailed         = "Search failed"
	msgTokenRejected        = "Token rejected"
	msgRequestFailed        = "Request failed"
)
