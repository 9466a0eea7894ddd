package codicefiscale

import (
	"errors"
	"fmt"
	"strings"
)

// CodeLength longitud del Codice Fiscale completo.
const CodeLength = 16

// PlaceCodeLength longitud del código de lugar (codice Belfiore).
const PlaceCodeLength = 4

// digitPositions posiciones (base 1) que en un código base contienen dígitos.
// En un código omocódico pueden contener letras de homocodeLetters.
var digitPositions = [...]int{7, 8, 10, 11, 13, 14, 15}

// Code Codice Fiscale de 16 caracteres en mayúsculas.
type Code string

// String implementa fmt.Stringer.
func (c Code) String() string { return string(c) }

// Preliminary devuelve los 15 primeros caracteres (sin control).
func (c Code) Preliminary() string {
	if len(c) < PreliminaryLength {
		return string(c)
	}
	return string(c[:PreliminaryLength])
}

// Control devuelve el carácter de control (posición 16) o 0 si el código es corto.
func (c Code) Control() byte {
	if len(c) != CodeLength {
		return 0
	}
	return c[CodeLength-1]
}

func (c Code) segment(from, to int) string {
	if len(c) < to {
		return ""
	}
	return string(c[from-1 : to])
}

func (c Code) Surname() string    { return c.segment(1, 3) }
func (c Code) Name() string       { return c.segment(4, 6) }
func (c Code) BirthYear() string  { return c.segment(7, 8) }
func (c Code) BirthMonth() string { return c.segment(9, 9) }
func (c Code) BirthDay() string   { return c.segment(10, 11) }
func (c Code) Place() string      { return c.segment(12, 15) }

// WithControl recalcula el carácter de control sobre los 15 primeros caracteres.
// Acepta tanto el código preliminar (15) como el completo (16).
func (c Code) WithControl() (Code, error) {
	if len(c) != PreliminaryLength && len(c) != CodeLength {
		return "", fmt.Errorf("%w: se esperaban %d o %d caracteres, se recibieron %d", ErrInvalidLength, PreliminaryLength, CodeLength, len(c))
	}
	prelim := c.Preliminary()
	ctl, err := ControlChar(prelim)
	if err != nil {
		return "", err
	}
	return Code(prelim + string(ctl)), nil
}

// Compose concatena los segmentos (3+3+5+4) y agrega el carácter de control.
func Compose(surname, name, dateSex, place string) (Code, error) {
	if len(surname) != 3 || len(name) != 3 || len(dateSex) != 5 {
		return "", fmt.Errorf("%w: segmentos %q %q %q", ErrMalformedInput, surname, name, dateSex)
	}
	if !ValidPlaceCode(place) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPlaceCode, place)
	}
	return Code(surname + name + dateSex + place).WithControl()
}

// ValidPlaceCode verifica el invariante del código de lugar: 4 caracteres
// alfanuméricos en mayúsculas, el primero alfabético.
func ValidPlaceCode(place string) bool {
	if len(place) != PlaceCodeLength || !isUpperLetter(place[0]) {
		return false
	}
	for i := 1; i < len(place); i++ {
		if !isUpperAlnum(place[i]) {
			return false
		}
	}
	return true
}

// Parse limpia espacios, pasa a mayúsculas y valida el código.
func Parse(s string) (Code, error) {
	c := Code(strings.ToUpper(strings.TrimSpace(s)))
	if err := Validate(c); err != nil {
		return "", err
	}
	return c, nil
}

// Validate comprueba el layout (letras, dígitos o letras de omocodia según la
// posición), la letra del mes, el rango del día y el carácter de control.
func Validate(c Code) error {
	if len(c) != CodeLength {
		return fmt.Errorf("%w: %w: %d caracteres", ErrInvalidCode, ErrInvalidLength, len(c))
	}
	var errs []error
	for _, pos := range [...]int{1, 2, 3, 4, 5, 6, 9, 12, 16} {
		if !isUpperLetter(c[pos-1]) {
			errs = append(errs, fmt.Errorf("posición %d: se espera una letra, se recibió %q", pos, c[pos-1]))
		}
	}
	for _, pos := range digitPositions {
		ch := c[pos-1]
		if !isDigit(ch) && homocodeDigit(ch) < 0 {
			errs = append(errs, fmt.Errorf("posición %d: se espera un dígito o letra de omocodia, se recibió %q", pos, ch))
		}
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidCode}, errs...)...)
	}

	if monthFromLetter(c[8]) == 0 {
		return fmt.Errorf("%w: letra de mes %q", ErrInvalidCode, c[8])
	}
	base, _ := BaseCode(c)
	day := int(base[9]-'0')*10 + int(base[10]-'0')
	if day > femaleDayOffset {
		day -= femaleDayOffset
	}
	if day < 1 || day > 31 {
		return fmt.Errorf("%w: día %s", ErrInvalidCode, base.BirthDay())
	}

	ctl, err := ControlChar(c.Preliminary())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCode, err)
	}
	if ctl != c.Control() {
		return fmt.Errorf("%w: carácter de control esperado %c, recibido %c", ErrInvalidCode, ctl, c.Control())
	}
	return nil
}

// BaseCode revierte la omocodia: las letras en posiciones numéricas vuelven a
// ser dígitos y se recalcula el carácter de control.
func BaseCode(c Code) (Code, error) {
	if len(c) != CodeLength {
		return "", fmt.Errorf("%w: %d caracteres", ErrInvalidLength, len(c))
	}
	out := []byte(c)
	for _, pos := range digitPositions {
		if d := homocodeDigit(out[pos-1]); d >= 0 {
			out[pos-1] = byte('0' + d)
		}
	}
	return Code(out).WithControl()
}

// IsHomocode indica si alguna posición numérica contiene una letra.
func IsHomocode(c Code) bool {
	if len(c) != CodeLength {
		return false
	}
	for _, pos := range digitPositions {
		if isUpperLetter(c[pos-1]) {
			return true
		}
	}
	return false
}
