// Package codicefiscale implementa el cálculo del Codice Fiscale italiano
// (D.M. 23/12/1976): extracción de letras de apellido y nombre, codificación
// de fecha de nacimiento y sexo, carácter de control y sustitución de
// omocodia.
//
// Layout del código (posiciones 1..16):
//
//	┌─────┬─────┬────┬───┬────┬──────┬───┐
//	│ 1-3 │ 4-6 │7-8 │ 9 │10-11│12-15│16 │
//	│ APE │ NOM │AÑO │MES│DÍA │LUGAR │CTL│
//	└─────┴─────┴────┴───┴────┴──────┴───┘
//
// El paquete no tiene I/O: el código de lugar (codice Belfiore) lo resuelve
// quien llama, consultando el catálogo de municipios y naciones.
package codicefiscale
