package codicefiscale

import (
	"fmt"
	"strings"
	"time"
)

// Sex sexo de la persona, tal como se codifica en el día de nacimiento.
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// femaleDayOffset se suma al día de nacimiento de las mujeres (41..71).
const femaleDayOffset = 40

// monthLetters letra del mes (enero..diciembre). Tabla oficial, no secuencial.
var monthLetters = [12]byte{'A', 'B', 'C', 'D', 'E', 'H', 'L', 'M', 'P', 'R', 'S', 'T'}

// ParseSex acepta "M"/"F" sin distinguir mayúsculas.
func ParseSex(s string) (Sex, error) {
	switch Sex(strings.ToUpper(strings.TrimSpace(s))) {
	case SexMale:
		return SexMale, nil
	case SexFemale:
		return SexFemale, nil
	default:
		return "", fmt.Errorf("%w: sexo %q (se espera M o F)", ErrMalformedInput, s)
	}
}

// Valid indica si el valor es M o F.
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// DateSexCode devuelve las posiciones 7-11: AA + letra del mes + DD (DD+40 para mujeres).
func DateSexCode(date time.Time, sex Sex) (string, error) {
	if !sex.Valid() {
		return "", fmt.Errorf("%w: sexo %q", ErrMalformedInput, sex)
	}
	year, month, day := date.Date()
	if year < 1000 || year > 9999 {
		return "", fmt.Errorf("%w: año %d fuera de rango", ErrInvalidDate, year)
	}
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return "", fmt.Errorf("%w: %s", ErrInvalidDate, date.Format(time.DateOnly))
	}
	if sex == SexFemale {
		day += femaleDayOffset
	}
	return fmt.Sprintf("%02d%c%02d", year%100, monthLetters[month-1], day), nil
}

// monthFromLetter devuelve el mes (1..12) de la letra, o 0 si no existe.
func monthFromLetter(c byte) int {
	for i, l := range monthLetters {
		if l == c {
			return i + 1
		}
	}
	return 0
}
