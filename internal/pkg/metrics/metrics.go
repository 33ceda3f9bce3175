package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "riad_booking"

// Outcome labels shared by the collectors below
const (
	OutcomeOK         = "ok"
	OutcomeFailed     = "failed"
	OutcomeSuperseded = "superseded"
	OutcomeSkipped    = "skipped"
	OutcomeRejected   = "rejected"
	OutcomeInvalid    = "invalid"
	OutcomeAvailable  = "available"
	OutcomeOccupied   = "unavailable"
)

type Metrics struct {
	Registry        *prometheus.Registry
	QuoteRequests   *prometheus.CounterVec
	Availability    *prometheus.CounterVec
	Submissions     *prometheus.CounterVec
	ActiveSessions  prometheus.Gauge
	UpstreamLatency *prometheus.HistogramVec
	HTTPRequests    *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		QuoteRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_refresh_total",
			Help:      "Price quote refreshes by outcome.",
		}, []string{"outcome"}),
		Availability: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_checks_total",
			Help:      "Availability gate results.",
		}, []string{"outcome"}),
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservation_submissions_total",
			Help:      "Reservation submission workflow results by final phase.",
		}, []string{"outcome"}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Open booking sessions.",
		}),
		UpstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "booking_api_request_seconds",
			Help:      "Latency of booking API calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "status"}),
		HTTPRequests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_seconds",
			Help:      "Latency of inbound HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	m.Registry.MustRegister(
		m.QuoteRequests,
		m.Availability,
		m.Submissions,
		m.ActiveSessions,
		m.UpstreamLatency,
		m.HTTPRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}
