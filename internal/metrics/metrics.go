package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "newsdesk_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method", "path"},
	)

	// Bot metrics
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_bot_commands_total",
			Help: "Inbound chat messages by matched command and sender authorization",
		},
		[]string{"command", "authorized"},
	)

	RepliesFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "newsdesk_bot_replies_failed_total",
			Help: "Replies that could not be delivered to Telegram",
		},
	)

	PostEventsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_post_events_failed_total",
			Help: "Post events that could not be published",
		},
		[]string{"action"},
	)

	// Website metrics
	ApplicationsReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "newsdesk_applications_received_total",
			Help: "Application forms stored",
		},
	)
)
