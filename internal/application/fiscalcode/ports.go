package fiscalcode

import (
	"context"
	"time"
)

// CardData datos que se imprimen en la tarjeta del código fiscal.
type CardData struct {
	Code        string
	Homocode    string // vacío si no se pidió omocodia
	Surname     string
	Name        string
	Sex         string
	BirthDate   time.Time
	BirthPlace  string // municipio (Italia) o nación
	PlaceCode   string
	GeneratedAt time.Time
}

// CardRenderer genera la tarjeta en PDF.
type CardRenderer interface {
	RenderCard(ctx context.Context, data CardData) ([]byte, error)
}

// Recorder métricas del caso de uso. Implementado por metrics.Metrics.
type Recorder interface {
	IncGenerated(kind string)
	IncFailure(reason string)
	ObserveGenerate(start time.Time)
	IncValidation(valid bool)
	IncCard()
}

type nopRecorder struct{}

func (nopRecorder) IncGenerated(string)       {}
func (nopRecorder) IncFailure(string)         {}
func (nopRecorder) ObserveGenerate(time.Time) {}
func (nopRecorder) IncValidation(bool)        {}
func (nopRecorder) IncCard()                  {}
