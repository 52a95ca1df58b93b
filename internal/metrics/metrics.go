package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CandidatesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "candidates_created_total",
			Help: "Total number of candidates created",
		},
	)

	CandidatesDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "candidates_deleted_total",
			Help: "Total number of candidates deleted (with their comments)",
		},
	)

	StatusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "candidate_status_changes_total",
			Help: "Total number of candidate status changes",
		},
		[]string{"status"},
	)

	AssetsStored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assets_stored_total",
			Help: "Total number of binary assets written to the store",
		},
		[]string{"category"},
	)

	DerivativeFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "profile_picture_derivative_fallbacks_total",
			Help: "Profile picture uploads stored unmodified after derivative generation failed",
		},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Total number of assignee notifications attempted",
		},
		[]string{"kind", "outcome"},
	)
)
