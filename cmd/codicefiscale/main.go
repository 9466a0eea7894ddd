// codicefiscale calcula el código fiscal desde la línea de comandos con los catálogos JSON.
//
// Uso:
//
//	go run ./cmd/codicefiscale --name Mario --surname Rossi --sex M --birth-date 1980-01-01 \
//	    --nation Italia --city Roma [--depth 2]
//	go run ./cmd/codicefiscale --validate RSSMRA80A01H501U
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/jhoicas/codicefiscale-api/internal/application/dto"
	"github.com/jhoicas/codicefiscale-api/internal/application/fiscalcode"
	"github.com/jhoicas/codicefiscale-api/internal/domain/fiscal"
	"github.com/jhoicas/codicefiscale-api/internal/infrastructure/catalog"
	"github.com/jhoicas/codicefiscale-api/pkg/codicefiscale"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("codicefiscale", pflag.ContinueOnError)
	var in dto.GenerateFiscalCodeRequest
	fs.StringVar(&in.Name, "name", "", "nombre")
	fs.StringVar(&in.Surname, "surname", "", "apellido")
	fs.StringVar(&in.Sex, "sex", "", "sexo (M|F)")
	fs.StringVar(&in.BirthDate, "birth-date", "", "fecha de nacimiento YYYY-MM-DD")
	fs.StringVar(&in.BirthNation, "nation", "Italia", "nación de nacimiento")
	fs.StringVar(&in.BirthCity, "city", "", "municipio de nacimiento")
	fs.IntVar(&in.Depth, "depth", 0, "nivel de omocodia (0 = ninguno)")
	citiesPath := fs.String("cities", "gi_comuni.json", "catálogo de municipios")
	nationsPath := fs.String("nations", "gi_nazioni.json", "catálogo de naciones")
	validate := fs.String("validate", "", "verificar un código en lugar de calcularlo")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *validate != "" {
		return printValidation(out, *validate)
	}

	cities, nations, err := catalog.LoadFiles(*citiesPath, *nationsPath)
	if err != nil {
		return err
	}
	lookup, err := catalog.NewLookup(catalog.NewMemoryCityRepository(cities), catalog.NewMemoryNationRepository(nations), 0)
	if err != nil {
		return err
	}
	return generate(out, fiscal.NewCodeGenerator(fiscal.NewPlaceCodeResolver(lookup)), in)
}

func generate(out io.Writer, gen *fiscal.CodeGenerator, in dto.GenerateFiscalCodeRequest) error {
	person, err := fiscalcode.PersonFromRequest(in)
	if err != nil {
		return err
	}
	code, err := gen.Generate(person, 0)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Code: %s\n", code)
	if in.Depth == 0 {
		return nil
	}
	homo, err := codicefiscale.Homocode(code, in.Depth)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Homocodic code: %s\n", homo)
	return nil
}

func printValidation(out io.Writer, raw string) error {
	code, err := codicefiscale.Parse(raw)
	if err != nil {
		return errors.Join(fmt.Errorf("código %q no válido", raw), err)
	}
	fmt.Fprintf(out, "Valid: %s\n", code)
	if codicefiscale.IsHomocode(code) {
		base, err := codicefiscale.BaseCode(code)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Base code: %s\n", base)
	}
	return nil
}
