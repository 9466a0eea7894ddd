// Package fiscal orquesta el cálculo del Codice Fiscale a partir de los datos
// personales: extracción de letras, fecha/sexo, lugar (vía catálogo) y control.
package fiscal

import (
	"fmt"
	"strings"

	"github.com/jhoicas/codicefiscale-api/pkg/codicefiscale"
)

// PlaceLookup es el contrato mínimo con el catálogo de municipios y naciones.
// Las consultas son síncronas y de solo lectura sobre un catálogo ya cargado.
type PlaceLookup interface {
	// LookupCityCode devuelve el codice Belfiore de un municipio italiano o domain.ErrUnknownCity.
	LookupCityCode(name string) (string, error)
	// LookupNationCode devuelve el codice Belfiore de una nación o domain.ErrUnknownNation.
	LookupNationCode(name string) (string, error)
	// IsItaly indica si el nombre corresponde a Italia en el catálogo de naciones.
	IsItaly(nationName string) bool
}

// PlaceCodeResolver resuelve las posiciones 12-15 (código de lugar).
type PlaceCodeResolver struct {
	lookup PlaceLookup
}

// NewPlaceCodeResolver construye el resolver con el catálogo inyectado.
func NewPlaceCodeResolver(lookup PlaceLookup) *PlaceCodeResolver {
	return &PlaceCodeResolver{lookup: lookup}
}

// Resolve devuelve el código del municipio si la nación es Italia; si no, el de la nación.
// Para naciones extranjeras la ciudad se ignora.
func (r *PlaceCodeResolver) Resolve(nation, city string) (string, error) {
	if strings.TrimSpace(nation) == "" {
		return "", fmt.Errorf("%w: nación vacía", codicefiscale.ErrMalformedInput)
	}

	var (
		code string
		err  error
	)
	if r.lookup.IsItaly(nation) {
		code, err = r.lookup.LookupCityCode(city)
	} else {
		code, err = r.lookup.LookupNationCode(nation)
	}
	if err != nil {
		return "", err
	}
	if !codicefiscale.ValidPlaceCode(code) {
		return "", fmt.Errorf("%w: el catálogo devolvió %q", codicefiscale.ErrInvalidPlaceCode, code)
	}
	return code, nil
}
