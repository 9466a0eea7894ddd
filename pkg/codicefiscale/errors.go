package codicefiscale

import "errors"

// Errores del cálculo. Se comparan con errors.Is.
var (
	ErrInvalidDate      = errors.New("codicefiscale: fecha de nacimiento inválida")
	ErrMalformedInput   = errors.New("codicefiscale: entrada mal formada")
	ErrDepthExceeded    = errors.New("codicefiscale: profundidad de sustitución mayor que los dígitos disponibles")
	ErrInvalidLength    = errors.New("codicefiscale: longitud inválida")
	ErrInvalidCharacter = errors.New("codicefiscale: carácter no permitido")
	ErrInvalidPlaceCode = errors.New("codicefiscale: código de lugar inválido")
	ErrInvalidCode      = errors.New("codicefiscale: código fiscal inválido")
)
