package model

// APIResponse is the envelope for handler responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// NewSuccessResponse builds a success envelope.
func NewSuccessResponse(message string, data interface{}) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data}
}

// NewErrorResponse builds an error envelope. detail may be empty.
func NewErrorResponse(message, detail string) APIResponse {
	return APIResponse{Success: false, Message: message, Error: detail}
}
