package dto

// ErrorResponse cuerpo de error HTTP. Fields solo viene en errores de validación.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ListMeta metadatos de listados (sin paginación: el catálogo es fijo).
type ListMeta struct {
	Count int `json:"count"`
}
