package entity

// ItalyNationCode código con que el catálogo de naciones identifica a Italia.
// El catálogo oficial deja vacío el código Belfiore de Italia; al importarlo se guarda "0000".
const ItalyNationCode = "0000"

// City representa un municipio italiano del catálogo (codice Belfiore).
type City struct {
	ID               int
	Name             string // denominación italiana, tal como viene en el catálogo
	Code             string // codice Belfiore, ej. H501 (Roma)
	ProvinceInitials string // sigla de la provincia, ej. RM
	IstatCode        string
}

// Nation representa una nación del catálogo. Las naciones extranjeras usan códigos Z***.
type Nation struct {
	ID       int
	Name     string
	Code     string // codice Belfiore, ej. Z404; ItalyNationCode para Italia
	Initials string // sigla de la nación, ej. US
}

// IsItaly indica si la nación es Italia.
func (n *Nation) IsItaly() bool {
	return n != nil && n.Code == ItalyNationCode
}
