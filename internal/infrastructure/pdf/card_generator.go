// Package pdf genera la tarjeta del código fiscal en PDF con Maroto v2.
//
// Layout de la página A5 apaisada:
//
//	┌──────────────────────────────────────────────────────┐
//	│  CODICE FISCALE                       fecha emisión  │
//	│  ──────────────────────────────────────────────────  │
//	│  Apellido / Nombre / Sexo / Nacimiento / Lugar  │ QR │
//	│  ──────────────────────────────────────────────────  │
//	│  RSS MRA 80A01 H501 U   (+ variante de omocodia)     │
//	│  Código de barras                                    │
//	└──────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/codicefiscale-api/internal/application/fiscalcode"
	"github.com/jhoicas/codicefiscale-api/pkg/codicefiscale"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 102, Blue: 68}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ fiscalcode.CardRenderer = (*CardGenerator)(nil)

// CardGenerator implementa fiscalcode.CardRenderer usando Maroto v2.
type CardGenerator struct{}

// NewCardGenerator construye el generador.
func NewCardGenerator() *CardGenerator { return &CardGenerator{} }

// RenderCard genera la tarjeta y devuelve los bytes del PDF.
func (g *CardGenerator) RenderCard(_ context.Context, data fiscalcode.CardData) ([]byte, error) {
	if len(data.Code) != codicefiscale.CodeLength {
		return nil, fmt.Errorf("pdf: código %q de longitud inválida", data.Code)
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Codice Fiscale "+data.Code, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.6}))
	m.AddRows(personRow(data))
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))
	m.AddRows(codeRows(data)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(data fiscalcode.CardData) core.Row {
	issued := ""
	if !data.GeneratedAt.IsZero() {
		issued = "Emitido: " + data.GeneratedAt.Format("02/01/2006")
	}
	return row.New(12).Add(
		col.New(8).Add(
			text.New("CODICE FISCALE", props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(issued, props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// personRow: datos personales (izq) y QR con el código (der).
func personRow(data fiscalcode.CardData) core.Row {
	field := func(label, value string, top float64) []core.Component {
		return []core.Component{
			text.New(label, props.Text{Size: 7, Top: top, Color: colorGray}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Top: top + 3.5}),
		}
	}
	var left []core.Component
	left = append(left, field("Cognome", data.Surname, 0)...)
	left = append(left, field("Nome", data.Name, 10)...)
	left = append(left, field("Sesso", data.Sex, 20)...)
	left = append(left, field("Data di nascita", data.BirthDate.Format("02/01/2006"), 30)...)
	left = append(left, field("Luogo di nascita", fmt.Sprintf("%s (%s)", data.BirthPlace, data.PlaceCode), 40)...)

	return row.New(55).Add(
		col.New(8).Add(left...),
		col.New(4).Add(code.NewQr(data.Code, props.Rect{
			Percent: 90,
			Center:  true,
		})),
	)
}

// codeRows: código partido por secciones, variante de omocodia y código de barras.
func codeRows(data fiscalcode.CardData) []core.Row {
	rows := []core.Row{
		row.New(12).Add(col.New(12).Add(
			text.New(splitCode(codicefiscale.Code(data.Code)), props.Text{
				Style: fontstyle.Bold, Size: 18, Align: align.Center, Top: 2,
			}),
		)),
	}
	if data.Homocode != "" {
		rows = append(rows, row.New(7).Add(col.New(12).Add(
			text.New("Omocodia: "+data.Homocode, props.Text{
				Size: 9, Align: align.Center, Top: 1, Color: colorGray,
			}),
		)))
	}
	rows = append(rows, row.New(14).Add(col.New(12).Add(
		code.NewBar(data.Code, props.Barcode{Percent: 80, Center: true}),
	)))
	return rows
}

// splitCode separa el código en apellido, nombre, fecha/sexo, lugar y control.
// Ej: "RSSMRA80A01H501U" → "RSS MRA 80A01 H501 U"
func splitCode(c codicefiscale.Code) string {
	return fmt.Sprintf("%s %s %s%s%s %s %c",
		c.Surname(), c.Name(), c.BirthYear(), c.BirthMonth(), c.BirthDay(), c.Place(), c.Control())
}
