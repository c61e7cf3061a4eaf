package httpapi

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK       = "ok"
	outcomeInvalid  = "invalid_input"
	outcomeEmpty    = "empty_input"
	outcomeTooLarge = "too_large"
	outcomeMissing  = "missing_file"
	outcomeInternal = "internal_error"
)

// Metrics records upload outcomes and schedule sizes.
type Metrics struct {
	uploads     *prometheus.CounterVec
	tracks      prometheus.Histogram
	unscheduled prometheus.Counter
}

// NewMetrics registers the collectors on reg. A nil registerer defaults to the
// global Prometheus registerer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	uploads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tracker_uploads_total",
		Help: "Total number of talk list uploads by outcome",
	}, []string{"outcome"})
	tracks := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "tracker_schedule_tracks",
		Help:    "Number of tracks built per schedule",
		Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
	})
	unscheduled := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tracker_unscheduled_talks_total",
		Help: "Talks that could not be placed in any track",
	})

	var err error
	if uploads, err = register(reg, uploads); err != nil {
		return nil, err
	}
	if tracks, err = register(reg, tracks); err != nil {
		return nil, err
	}
	if unscheduled, err = register(reg, unscheduled); err != nil {
		return nil, err
	}

	return &Metrics{uploads: uploads, tracks: tracks, unscheduled: unscheduled}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *Metrics) recordOutcome(outcome string) {
	if m == nil {
		return
	}
	m.uploads.WithLabelValues(outcome).Inc()
}

func (m *Metrics) recordSchedule(tracks, unscheduled int) {
	if m == nil {
		return
	}
	m.tracks.Observe(float64(tracks))
	m.unscheduled.Add(float64(unscheduled))
}
