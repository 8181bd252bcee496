package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Available se llena solo en errores de stock insuficiente (HTTP 409).
	Available *int `json:"available,omitempty"`
}
