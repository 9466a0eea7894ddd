package codicefiscale

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldDiacritics descompone (NFD), elimina las marcas combinantes y recompone (NFC).
// "Nicolò" -> "Nicolo", "Forlì" -> "Forli".
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Letters normaliza el texto para la extracción: sin acentos, en mayúsculas y
// solo con letras A-Z. Espacios, apóstrofes y guiones se descartan.
func Letters(s string) string {
	folded := strings.ToUpper(foldDiacritics(s))
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeKey construye la clave de búsqueda en catálogos: sin acentos, en
// mayúsculas, con los separadores reducidos a un único espacio.
// "Sant'Agata  di Militello" -> "SANT AGATA DI MILITELLO".
func NormalizeKey(s string) string {
	folded := strings.ToUpper(foldDiacritics(s))
	fields := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fields, " ")
}
