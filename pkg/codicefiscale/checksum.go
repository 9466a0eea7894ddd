package codicefiscale

import "fmt"

// PreliminaryLength longitud del código sin el carácter de control.
const PreliminaryLength = 15

// oddValues valores de los caracteres en posiciones impares (1, 3, 5, ... 15).
// Tabla oficial del D.M. 23/12/1976; no se deriva de ninguna fórmula.
var oddValues = [...]int{
	'0': 1, '1': 0, '2': 5, '3': 7, '4': 9, '5': 13, '6': 15, '7': 17, '8': 19, '9': 21,
	'A': 1, 'B': 0, 'C': 5, 'D': 7, 'E': 9, 'F': 13, 'G': 15, 'H': 17, 'I': 19, 'J': 21,
	'K': 2, 'L': 4, 'M': 18, 'N': 20, 'O': 11, 'P': 3, 'Q': 6, 'R': 8, 'S': 12, 'T': 14,
	'U': 16, 'V': 10, 'W': 22, 'X': 25, 'Y': 24, 'Z': 23,
}

// evenValues valores de los caracteres en posiciones pares (2, 4, ... 14).
var evenValues = [...]int{
	'0': 0, '1': 1, '2': 2, '3': 3, '4': 4, '5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	'A': 0, 'B': 1, 'C': 2, 'D': 3, 'E': 4, 'F': 5, 'G': 6, 'H': 7, 'I': 8, 'J': 9,
	'K': 10, 'L': 11, 'M': 12, 'N': 13, 'O': 14, 'P': 15, 'Q': 16, 'R': 17, 'S': 18, 'T': 19,
	'U': 20, 'V': 21, 'W': 22, 'X': 23, 'Y': 24, 'Z': 25,
}

// controlLetters resto de la división por 26 -> carácter de control.
var controlLetters = [26]byte{
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M',
	'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
}

// ControlChar calcula el carácter de control (posición 16) sobre los 15 primeros caracteres.
// Solo se admiten A-Z y 0-9 en mayúsculas.
func ControlChar(code15 string) (byte, error) {
	if len(code15) != PreliminaryLength {
		return 0, fmt.Errorf("%w: se esperaban %d caracteres, se recibieron %d", ErrInvalidLength, PreliminaryLength, len(code15))
	}
	var sum int
	for i := 0; i < len(code15); i++ {
		c := code15[i]
		if !isUpperAlnum(c) {
			return 0, fmt.Errorf("%w: %q en la posición %d", ErrInvalidCharacter, c, i+1)
		}
		// i es base 0: i par corresponde a una posición impar.
		if i%2 == 0 {
			sum += oddValues[c]
		} else {
			sum += evenValues[c]
		}
	}
	return controlLetters[sum%26], nil
}

func isUpperAlnum(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isUpperLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
