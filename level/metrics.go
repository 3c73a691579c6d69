// SPDX-License-Identifier: GPL-2.0-or-later

package level

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	tickDuration prometheus.Histogram
	subSteps     prometheus.Counter
	moves        prometheus.Counter
	touches      prometheus.Counter
	events       *prometheus.CounterVec
	actors       prometheus.Gauge
}

func newMetrics(r prometheus.Registerer) *metrics {
	f := promauto.With(r)
	return &metrics{
		tickDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "level_tick_duration_seconds",
			Help:    "Time spent in a level tick",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05},
		}),
		subSteps: f.NewCounter(prometheus.CounterOpts{
			Name: "level_physics_substeps_total",
			Help: "Physics sub-steps run",
		}),
		moves: f.NewCounter(prometheus.CounterOpts{
			Name: "level_moves_total",
			Help: "Calls to TryMove that swept",
		}),
		touches: f.NewCounter(prometheus.CounterOpts{
			Name: "level_touches_total",
			Help: "Touch relations created",
		}),
		// bounded: event names are a fixed set
		events: f.NewCounterVec(prometheus.CounterOpts{
			Name: "level_script_events_total",
			Help: "Script events dispatched",
		}, []string{"event"}),
		actors: f.NewGauge(prometheus.GaugeOpts{
			Name: "level_actor_count",
			Help: "Live actors",
		}),
	}
}
