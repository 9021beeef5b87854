package metrics

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aretw0/enfa/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counter(t *testing.T, m *Metrics, outcome string) float64 {
	t.Helper()
	families, err := m.Registry.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "enfa_conversions_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "outcome" && label.GetValue() == outcome {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestHooks_CountOutcomes(t *testing.T) {
	m := New()
	done := m.Hooks().OnConvertDone
	ctx := context.Background()

	done(ctx, &domain.ConversionEvent{States: 3, Epsilon: true, Duration: time.Millisecond})
	done(ctx, &domain.ConversionEvent{States: 2, Epsilon: true, Duration: time.Millisecond})
	done(ctx, &domain.ConversionEvent{States: 2})
	done(ctx, &domain.ConversionEvent{States: 2, Epsilon: true, Err: errors.New("cancelled")})

	assert.Equal(t, 2.0, counter(t, m, OutcomeConverted))
	assert.Equal(t, 1.0, counter(t, m, OutcomeNoEpsilon))
	assert.Equal(t, 1.0, counter(t, m, OutcomeFailed))
}

func TestHandler(t *testing.T) {
	m := New()
	m.Hooks().OnConvertDone(context.Background(), &domain.ConversionEvent{States: 1, Epsilon: true})

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `enfa_conversions_total{outcome="converted"} 1`)
	assert.Contains(t, body, "enfa_conversion_duration_seconds_bucket")
	assert.Contains(t, body, "enfa_automaton_states_count 1")
}
