package dto

// ErrorResponse cuerpo de error HTTP. Fields solo se incluye en errores de validación.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}
