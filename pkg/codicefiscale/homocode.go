package codicefiscale

import "fmt"

// homocodePositions orden de recorrido (base 1) de las posiciones sustituibles:
// dígitos del año, del día y del código de lugar.
var homocodePositions = [...]int{7, 10, 11, 13, 14, 15}

// homocodeLetters dígito -> letra de omocodia.
var homocodeLetters = [10]byte{'L', 'M', 'N', 'P', 'Q', 'R', 'S', 'T', 'U', 'V'}

// Substitute reemplaza hasta depth dígitos por su letra de omocodia, recorriendo
// homocodePositions en orden. Las posiciones que ya son letras no cuentan.
// El carácter de control (posición 16) no se recalcula: ver Homocode.
func Substitute(code Code, depth int) (Code, error) {
	if len(code) != CodeLength {
		return "", fmt.Errorf("%w: se esperaban %d caracteres, se recibieron %d", ErrInvalidLength, CodeLength, len(code))
	}
	if depth < 0 {
		return "", fmt.Errorf("%w: profundidad negativa (%d)", ErrMalformedInput, depth)
	}
	if depth == 0 {
		return code, nil
	}

	out := []byte(code)
	done := 0
	for _, pos := range homocodePositions {
		if done == depth {
			break
		}
		c := out[pos-1]
		if !isDigit(c) {
			continue
		}
		out[pos-1] = homocodeLetters[c-'0']
		done++
	}
	if done < depth {
		return "", fmt.Errorf("%w: solicitadas %d, disponibles %d", ErrDepthExceeded, depth, done)
	}
	return Code(out), nil
}

// Homocode aplica Substitute y recalcula el carácter de control.
func Homocode(code Code, depth int) (Code, error) {
	substituted, err := Substitute(code, depth)
	if err != nil {
		return "", err
	}
	if depth == 0 {
		return substituted, nil
	}
	return substituted.WithControl()
}

// homocodeDigit devuelve el dígito de una letra de omocodia, o -1.
func homocodeDigit(c byte) int {
	for d, l := range homocodeLetters {
		if l == c {
			return d
		}
	}
	return -1
}
