package dto

// APIResponse is the standard response envelope for all endpoints
type APIResponse struct {
	Data  interface{}  `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// SuccessResponse represents a plain success message
type SuccessResponse struct {
	Message string `json:"message"`
}
