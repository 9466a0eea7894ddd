package dto

// Límites de las búsquedas por prefijo.
const (
	DefaultSearchLimit = 5
	MaxSearchLimit     = 50
)

// SearchRequest parámetros de búsqueda de lugares.
type SearchRequest struct {
	Query string `query:"q"`
	Limit int    `query:"limit"`
}

// Normalize aplica el límite por defecto y el máximo permitido.
func (r *SearchRequest) Normalize() {
	if r.Limit <= 0 {
		r.Limit = DefaultSearchLimit
	}
	if r.Limit > MaxSearchLimit {
		r.Limit = MaxSearchLimit
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
