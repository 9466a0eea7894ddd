package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/codicefiscale-api/pkg/codicefiscale"
)

// Person datos personales para el cálculo del código fiscal. Inmutable: solo se
// construye con NewPerson, que rechaza combinaciones inválidas.
type Person struct {
	name        string
	surname     string
	sex         codicefiscale.Sex
	birthNation string
	birthCity   string
	birthDate   time.Time
}

// NewPerson valida y construye los datos personales.
// La ciudad es obligatoria aunque solo se use cuando la nación es Italia.
func NewPerson(name, surname string, sex codicefiscale.Sex, birthNation, birthCity string, birthDate time.Time) (*Person, error) {
	fields := map[string]string{
		"name":         name,
		"surname":      surname,
		"birth_nation": birthNation,
		"birth_city":   birthCity,
	}
	for _, key := range []string{"name", "surname", "birth_nation", "birth_city"} {
		if strings.TrimSpace(fields[key]) == "" {
			return nil, fmt.Errorf("%w: %s es obligatorio", codicefiscale.ErrMalformedInput, key)
		}
	}
	if !sex.Valid() {
		return nil, fmt.Errorf("%w: sexo %q", codicefiscale.ErrMalformedInput, sex)
	}
	if birthDate.IsZero() {
		return nil, fmt.Errorf("%w: birth_date es obligatorio", codicefiscale.ErrInvalidDate)
	}
	y, m, d := birthDate.Date()
	return &Person{
		name:        strings.TrimSpace(name),
		surname:     strings.TrimSpace(surname),
		sex:         sex,
		birthNation: strings.TrimSpace(birthNation),
		birthCity:   strings.TrimSpace(birthCity),
		birthDate:   time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}, nil
}

// NewBirthDate construye una fecha gregoriana; rechaza fechas que time.Date
// normalizaría (ej. 31 de febrero) y años que no tienen 4 cifras.
func NewBirthDate(year int, month time.Month, day int) (time.Time, error) {
	if year < 1000 || year > 9999 {
		return time.Time{}, fmt.Errorf("%w: año %d", codicefiscale.ErrInvalidDate, year)
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if y, m, d := t.Date(); y != year || m != month || d != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d no existe", codicefiscale.ErrInvalidDate, year, int(month), day)
	}
	return t, nil
}

// ParseBirthDate interpreta una fecha YYYY-MM-DD.
func ParseBirthDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: formato esperado YYYY-MM-DD", codicefiscale.ErrInvalidDate)
	}
	return NewBirthDate(t.Year(), t.Month(), t.Day())
}

func (p *Person) Name() string           { return p.name }
func (p *Person) Surname() string        { return p.surname }
func (p *Person) Sex() codicefiscale.Sex { return p.sex }
func (p *Person) BirthNation() string    { return p.birthNation }
func (p *Person) BirthCity() string      { return p.birthCity }
func (p *Person) BirthDate() time.Time   { return p.birthDate }
