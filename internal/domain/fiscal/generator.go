package fiscal

import (
	"fmt"

	"github.com/jhoicas/codicefiscale-api/internal/domain/entity"
	"github.com/jhoicas/codicefiscale-api/pkg/codicefiscale"
)

// CodeGenerator genera el código completo de 16 caracteres.
type CodeGenerator struct {
	places *PlaceCodeResolver
}

// NewCodeGenerator construye el generador.
func NewCodeGenerator(places *PlaceCodeResolver) *CodeGenerator {
	return &CodeGenerator{places: places}
}

// Generate calcula apellido(3) + nombre(3) + fecha/sexo(5) + lugar(4) + control.
// Con depth > 0 aplica la sustitución de omocodia y recalcula el control.
// No hay resultados parciales: o devuelve el código o un error.
func (g *CodeGenerator) Generate(p *entity.Person, depth int) (codicefiscale.Code, error) {
	if p == nil {
		return "", fmt.Errorf("%w: persona nula", codicefiscale.ErrMalformedInput)
	}
	if depth < 0 {
		return "", fmt.Errorf("%w: profundidad negativa (%d)", codicefiscale.ErrMalformedInput, depth)
	}

	dateSex, err := codicefiscale.DateSexCode(p.BirthDate(), p.Sex())
	if err != nil {
		return "", err
	}
	place, err := g.places.Resolve(p.BirthNation(), p.BirthCity())
	if err != nil {
		return "", err
	}

	code, err := codicefiscale.Compose(
		codicefiscale.SurnameCode(p.Surname()),
		codicefiscale.NameCode(p.Name()),
		dateSex,
		place,
	)
	if err != nil {
		return "", err
	}
	if depth == 0 {
		return code, nil
	}
	return codicefiscale.Homocode(code, depth)
}
