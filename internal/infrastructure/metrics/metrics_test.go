package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/codicefiscale-api/internal/infrastructure/metrics"
)

func TestMetrics_Counters(t *testing.T) {
	m := metrics.New()

	m.IncGenerated("base")
	m.IncGenerated("base")
	m.IncGenerated("homocode")
	m.IncFailure("unknown_city")
	m.IncValidation(true)
	m.IncValidation(false)
	m.IncValidation(false)
	m.IncCard()
	m.ObserveGenerate(time.Now())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CodesGenerated.WithLabelValues("base")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CodesGenerated.WithLabelValues("homocode")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GenerationFailures.WithLabelValues("unknown_city")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Validations.WithLabelValues("invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CardsRendered))
	assert.Equal(t, 1, testutil.CollectAndCount(m.GenerateDuration))
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a := metrics.New()
	b := metrics.New()
	a.IncCard()
	assert.Equal(t, 0.0, testutil.ToFloat64(b.CardsRendered))
	assert.NotNil(t, a.Handler())
}
