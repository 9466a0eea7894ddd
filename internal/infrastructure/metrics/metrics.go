// Package metrics expone las métricas Prometheus del servicio.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics contadores e histogramas del cálculo de códigos fiscales.
// Cada instancia usa su propio registro, así varios servidores (o tests) no colisionan.
type Metrics struct {
	registry *prometheus.Registry

	CodesGenerated     *prometheus.CounterVec
	GenerationFailures *prometheus.CounterVec
	GenerateDuration   prometheus.Histogram
	Validations        *prometheus.CounterVec
	CardsRendered      prometheus.Counter
}

// New registra todas las métricas en un registro nuevo, junto con los colectores de Go y proceso.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		CodesGenerated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "codicefiscale_codes_generated_total",
			Help: "Códigos generados, por tipo (base u homocode)",
		}, []string{"kind"}),
		GenerationFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "codicefiscale_generation_failures_total",
			Help: "Generaciones fallidas, por motivo",
		}, []string{"reason"}),
		GenerateDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "codicefiscale_generate_duration_seconds",
			Help:    "Duración de la generación (incluye búsqueda en catálogo)",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
		Validations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "codicefiscale_validations_total",
			Help: "Validaciones de códigos recibidos, por resultado",
		}, []string{"result"}),
		CardsRendered: f.NewCounter(prometheus.CounterOpts{
			Name: "codicefiscale_cards_rendered_total",
			Help: "Tarjetas PDF generadas",
		}),
	}
}

// IncGenerated registra un código generado. kind: "base" u "homocode".
func (m *Metrics) IncGenerated(kind string) {
	m.CodesGenerated.WithLabelValues(kind).Inc()
}

// IncFailure registra una generación fallida.
func (m *Metrics) IncFailure(reason string) {
	m.GenerationFailures.WithLabelValues(reason).Inc()
}

// ObserveGenerate registra la duración de una generación.
// Llamar con time.Now() tomado al inicio de la operación.
func (m *Metrics) ObserveGenerate(start time.Time) {
	m.GenerateDuration.Observe(time.Since(start).Seconds())
}

// IncValidation registra el resultado de una validación ("valid" o "invalid").
func (m *Metrics) IncValidation(valid bool) {
	result := "invalid"
	if valid {
		result = "valid"
	}
	m.Validations.WithLabelValues(result).Inc()
}

func (m *Metrics) IncCard() {
	m.CardsRendered.Inc()
}

// Registry registro subyacente, para tests o colectores adicionales.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler handler HTTP del endpoint /metrics para este registro.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
