// models/response.go
package models

// ErrorResponse is the error envelope returned by every handler.
type ErrorResponse struct {
	Message string `json:"message"`
}

// DeleteResponse is returned by delete endpoints. Category and brand
// deletions include a message reporting how many items were cascaded.
type DeleteResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// HealthResponse for the health check endpoint
type HealthResponse struct {
	OK bool `json:"ok"`
}
