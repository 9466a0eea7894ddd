// Package catalog carga los catálogos de municipios y naciones (gi_comuni.json,
// gi_nazioni.json de gardainformatica.it) y expone el contrato de búsqueda que
// usa el cálculo del código fiscal.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jhoicas/codicefiscale-api/internal/domain/entity"
)

// loadedCity registro de gi_comuni.json. Solo se usan nombre, código y provincia.
type loadedCity struct {
	ProvinceInitials  string `json:"sigla_provincia"`
	IstatCode         string `json:"codice_istat"`
	MixedName         string `json:"denominazione_ita_altra"`
	Name              string `json:"denominazione_ita"`
	AlternativeName   string `json:"denominazione_altra"`
	IsProvinceCapital string `json:"flag_capoluogo"`
	Code              string `json:"codice_belfiore"`
	Lat               string `json:"lat"`
	Lon               string `json:"lon"`
	Surface           string `json:"superficie_kmq"`
	OverMunicipalCode string `json:"codice_sovracomunale"`
}

// loadedNation registro de gi_nazioni.json.
type loadedNation struct {
	Initials    string `json:"sigla_nazione"`
	Code        string `json:"codice_belfiore"`
	Name        string `json:"denominazione_nazione"`
	CitizenName string `json:"denominazione_cittadinanza"`
}

// LoadCities decodifica el catálogo de municipios. Descarta registros sin nombre o sin código.
func LoadCities(r io.Reader) ([]*entity.City, error) {
	var raw []loadedCity
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("catalog: decodificar municipios: %w", err)
	}
	out := make([]*entity.City, 0, len(raw))
	for _, c := range raw {
		name := strings.TrimSpace(c.Name)
		code := strings.ToUpper(strings.TrimSpace(c.Code))
		if name == "" || code == "" {
			continue
		}
		out = append(out, &entity.City{
			Name:             name,
			Code:             code,
			ProvinceInitials: strings.TrimSpace(c.ProvinceInitials),
			IstatCode:        strings.TrimSpace(c.IstatCode),
		})
	}
	return out, nil
}

// LoadNations decodifica el catálogo de naciones.
// El registro de Italia no trae código Belfiore: se le asigna entity.ItalyNationCode.
func LoadNations(r io.Reader) ([]*entity.Nation, error) {
	var raw []loadedNation
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("catalog: decodificar naciones: %w", err)
	}
	out := make([]*entity.Nation, 0, len(raw))
	for _, n := range raw {
		name := strings.TrimSpace(n.Name)
		if name == "" {
			continue
		}
		code := strings.ToUpper(strings.TrimSpace(n.Code))
		if code == "" {
			code = entity.ItalyNationCode
		}
		out = append(out, &entity.Nation{
			Name:     name,
			Code:     code,
			Initials: strings.TrimSpace(n.Initials),
		})
	}
	return out, nil
}

// LoadFiles lee ambos catálogos desde disco.
func LoadFiles(citiesPath, nationsPath string) ([]*entity.City, []*entity.Nation, error) {
	cf, err := os.Open(citiesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("catalog: abrir %s: %w", citiesPath, err)
	}
	defer cf.Close()
	cities, err := LoadCities(cf)
	if err != nil {
		return nil, nil, err
	}

	nf, err := os.Open(nationsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("catalog: abrir %s: %w", nationsPath, err)
	}
	defer nf.Close()
	nations, err := LoadNations(nf)
	if err != nil {
		return nil, nil, err
	}
	return cities, nations, nil
}
