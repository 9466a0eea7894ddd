package dto

// CityResponse municipio del catálogo.
type CityResponse struct {
	Name             string `json:"name"`
	Code             string `json:"code"`
	ProvinceInitials string `json:"province_initials,omitempty"`
	IstatCode        string `json:"istat_code,omitempty"`
}

// NationResponse nación del catálogo.
type NationResponse struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Initials string `json:"initials,omitempty"`
}

// CityListResponse resultado de búsqueda de municipios.
type CityListResponse struct {
	Items []CityResponse `json:"items"`
	Limit int            `json:"limit"`
}

// NationListResponse resultado de búsqueda de naciones.
type NationListResponse struct {
	Items []NationResponse `json:"items"`
	Limit int              `json:"limit"`
}
