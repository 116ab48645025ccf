package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "todolists", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "todolists", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	// SeedsPerformed counts seed-item insertions by destination (default|custom).
	SeedsPerformed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "todolists", Name: "seeds_performed_total", Help: "Number of times seed items were written, by destination."},
		[]string{"destination"},
	)
	// ListsCreated counts lazily created custom lists by the operation that created them.
	ListsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "todolists", Name: "lists_created_total", Help: "Number of custom lists created, by trigger."},
		[]string{"trigger"},
	)
	DuplicateListRetries = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "todolists", Name: "duplicate_list_retries_total", Help: "List inserts that lost a creation race and were retried as a lookup."},
	)
	ArchivesWritten = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "todolists", Name: "archives_written_total", Help: "List archive uploads by result."},
		[]string{"result"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(SeedsPerformed)
	reg.MustRegister(ListsCreated)
	reg.MustRegister(DuplicateListRetries)
	reg.MustRegister(ArchivesWritten)
}
