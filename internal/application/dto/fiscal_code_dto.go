package dto

// GenerateFiscalCodeRequest datos personales para calcular el código fiscal.
// BirthCity se usa solo cuando BirthNation es Italia, pero es obligatorio.
type GenerateFiscalCodeRequest struct {
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Sex         string `json:"sex"`        // M | F
	BirthDate   string `json:"birth_date"` // YYYY-MM-DD
	BirthNation string `json:"birth_nation"`
	BirthCity   string `json:"birth_city"`
	Depth       int    `json:"depth"` // nivel de omocodia, 0 = sin sustitución
}

// FiscalCodeResponse código base y, con depth > 0, la variante de omocodia.
type FiscalCodeResponse struct {
	Code      string `json:"code"`
	Homocode  string `json:"homocode,omitempty"`
	Depth     int    `json:"depth"`
	RequestID string `json:"request_id"`
}

// ValidateFiscalCodeRequest código recibido para verificar.
type ValidateFiscalCodeRequest struct {
	Code string `json:"code"`
}

// ValidationResponse resultado de la verificación de estructura y control.
type ValidationResponse struct {
	Code       string   `json:"code"`
	Valid      bool     `json:"valid"`
	IsHomocode bool     `json:"is_homocode"`
	BaseCode   string   `json:"base_code,omitempty"`
	Errors     []string `json:"errors,omitempty"`
}
