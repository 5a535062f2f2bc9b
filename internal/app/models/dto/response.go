package dto

// MessageResponse is the standard single-message body used for auth,
// ownership and not-found responses.
type MessageResponse struct {
	Message string `json:"message" example:"access denied"`
}

// ValidationErrorResponse carries the ordered validation messages for a
// rejected payload.
type ValidationErrorResponse struct {
	Errors []string `json:"errors" example:"please enter your first name"`
}

// NewMessageResponse creates a MessageResponse
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// NewValidationErrorResponse creates a ValidationErrorResponse
func NewValidationErrorResponse(messages []string) ValidationErrorResponse {
	return ValidationErrorResponse{Errors: messages}
}
