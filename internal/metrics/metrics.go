// Package metrics exposes domain counters for CV activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Publish transition labels.
const (
	PublishAssign    = "assign"
	PublishClear     = "clear"
	PublishRecompute = "recompute"
)

// Domain holds the CV domain collectors. A nil *Domain is valid and records nothing.
type Domain struct {
	cvsCreated   prometheus.Counter
	cvsDeleted   prometheus.Counter
	publishes    *prometheus.CounterVec
	publicEvents *prometheus.CounterVec
	validations  *prometheus.CounterVec
}

// NewDomain creates the collectors and registers them with reg.
func NewDomain(reg prometheus.Registerer) (*Domain, error) {
	d := &Domain{
		cvsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cv_created_total",
			Help: "Total number of CVs created.",
		}),
		cvsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cv_deleted_total",
			Help: "Total number of CVs deleted.",
		}),
		publishes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cv_publish_transitions_total",
			Help: "Slug lifecycle transitions by action.",
		}, []string{"action"}),
		publicEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cv_public_events_total",
			Help: "Events recorded against public CVs by kind.",
		}, []string{"kind"}),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cv_validations_total",
			Help: "Validation requests by outcome.",
		}, []string{"valid"}),
	}

	for _, c := range []prometheus.Collector{d.cvsCreated, d.cvsDeleted, d.publishes, d.publicEvents, d.validations} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Domain) CVCreated() {
	if d == nil {
		return
	}
	d.cvsCreated.Inc()
}

func (d *Domain) CVDeleted() {
	if d == nil {
		return
	}
	d.cvsDeleted.Inc()
}

// Published records a slug transition. action is one of the Publish* labels.
func (d *Domain) Published(action string) {
	if d == nil {
		return
	}
	d.publishes.WithLabelValues(action).Inc()
}

// PublicEvent records a view, download or share.
func (d *Domain) PublicEvent(kind string) {
	if d == nil {
		return
	}
	d.publicEvents.WithLabelValues(kind).Inc()
}

func (d *Domain) Validated(valid bool) {
	if d == nil {
		return
	}
	label := "false"
	if valid {
		label = "true"
	}
	d.validations.WithLabelValues(label).Inc()
}
