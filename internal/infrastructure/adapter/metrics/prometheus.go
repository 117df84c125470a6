package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coreport "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/core"
)

const namespace = "greeting_bot"

// Recorder implements core.Metrics with Prometheus collectors on a private registry
type Recorder struct {
	registry *prometheus.Registry

	messages       *prometheus.CounterVec
	pointsAwarded  prometheus.Counter
	rewards        *prometheus.CounterVec
	ledgerDegraded *prometheus.CounterVec
	replyFailures  prometheus.Counter
	updateDuration *prometheus.HistogramVec
	httpRequests   *prometheus.CounterVec
}

// NewRecorder registers the bot collectors. constLabels are attached to every series.
func NewRecorder(constLabels prometheus.Labels) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "messages_total",
			Help:        "Processed chat messages by kind.",
			ConstLabels: constLabels,
		}, []string{"kind"}),
		pointsAwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "points_awarded_total",
			Help:        "Points credited to users.",
			ConstLabels: constLabels,
		}),
		rewards: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "rewards_total",
			Help:        "Rewards announced by label.",
			ConstLabels: constLabels,
		}, []string{"label"}),
		ledgerDegraded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "ledger_degraded_total",
			Help:        "Ledger calls answered without the account store.",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		replyFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "reply_failures_total",
			Help:        "Replies rejected by the chat platform.",
			ConstLabels: constLabels,
		}),
		updateDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "update_duration_seconds",
			Help:        "Time spent handling one update, reply included.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"source"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "http_requests_total",
			Help:        "HTTP requests by route and status code.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
	}

	r.registry.MustRegister(
		r.messages,
		r.pointsAwarded,
		r.rewards,
		r.ledgerDegraded,
		r.replyFailures,
		r.updateDuration,
		r.httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

func (r *Recorder) IncMessages(kind string) {
	r.messages.WithLabelValues(kind).Inc()
}

func (r *Recorder) AddPointsAwarded(points int64) {
	if points > 0 {
		r.pointsAwarded.Add(float64(points))
	}
}

func (r *Recorder) IncRewards(label string) {
	r.rewards.WithLabelValues(label).Inc()
}

func (r *Recorder) IncLedgerDegraded(operation string) {
	r.ledgerDegraded.WithLabelValues(operation).Inc()
}

func (r *Recorder) IncReplyFailures() {
	r.replyFailures.Inc()
}

func (r *Recorder) ObserveUpdate(source string, elapsed time.Duration) {
	r.updateDuration.WithLabelValues(source).Observe(elapsed.Seconds())
}

// ObserveRequest counts one served HTTP request
func (r *Recorder) ObserveRequest(method, route, status string) {
	r.httpRequests.WithLabelValues(method, route, status).Inc()
}

// Registry exposes the private registry, mainly for tests
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the exposition format for /metrics
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

var _ coreport.Metrics = (*Recorder)(nil)
