package codicefiscale

import "strings"

// vocales según la regla de extracción: A, E, I, O, U e Y.
var vowels = [26]bool{
	'A' - 'A': true,
	'E' - 'A': true,
	'I' - 'A': true,
	'O' - 'A': true,
	'U' - 'A': true,
	'Y' - 'A': true,
}

const codePadding = 'X'

// SurnameCode devuelve las 3 letras del apellido (posiciones 1-3).
func SurnameCode(surname string) string {
	return ExtractCode(surname, true)
}

// NameCode devuelve las 3 letras del nombre (posiciones 4-6).
func NameCode(name string) string {
	return ExtractCode(name, false)
}

// ExtractCode aplica la regla de extracción sobre el texto normalizado.
// Apellido: consonantes, luego vocales, luego relleno con X.
// Nombre: con 4 o más consonantes se toman la 1ª, 3ª y 4ª; si no, igual que el apellido.
func ExtractCode(text string, isSurname bool) string {
	consonants, vowelsFound := splitLetters(Letters(text))

	if !isSurname && len(consonants) >= 4 {
		return string([]byte{consonants[0], consonants[2], consonants[3]})
	}

	code := make([]byte, 0, 3)
	code = append(code, consonants...)
	code = append(code, vowelsFound...)
	if len(code) > 3 {
		code = code[:3]
	}
	return string(code) + strings.Repeat(string(codePadding), 3-len(code))
}

// splitLetters separa las letras (A-Z) en consonantes y vocales conservando el orden.
func splitLetters(letters string) (consonants, vowelsFound []byte) {
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if vowels[c-'A'] {
			vowelsFound = append(vowelsFound, c)
			continue
		}
		consonants = append(consonants, c)
	}
	return consonants, vowelsFound
}
