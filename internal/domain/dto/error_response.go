package dto

import "time"

// ErrorResponse is the standardized JSON error body returned by the API.
//
// Fields:
//   - Message: Human-readable summary of the failure.
//   - ErrorDetails: Underlying error text, if any.
//   - Timestamp: When the error response was built (UTC).
type ErrorResponse struct {
	Message      string    `json:"message" example:"sale not found"`
	ErrorDetails string    `json:"error,omitempty" example:"sale 42 does not exist"`
	Timestamp    time.Time `json:"timestamp" example:"2025-10-05T10:00:00Z"`
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse, copying err's text when err is non-nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
