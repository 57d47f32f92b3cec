package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	editorSessionsOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "cvlab",
			Subsystem: "editor",
			Name:      "sessions_open",
			Help:      "Websocket editor sessions currently connected.",
		},
	)

	autosaveTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cvlab",
			Subsystem: "editor",
			Name:      "autosaves_total",
			Help:      "Autosave attempts by outcome.",
		},
		[]string{"outcome"},
	)
)

// EditorSessionOpened tracks a new websocket editor connection.
func EditorSessionOpened() { editorSessionsOpen.Inc() }

// EditorSessionClosed tracks a websocket editor disconnect.
func EditorSessionClosed() { editorSessionsOpen.Dec() }

// AutosaveObserved records one autosave attempt.
func AutosaveObserved(err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	autosaveTotal.WithLabelValues(outcome).Inc()
}
