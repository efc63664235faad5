// Reelpin - Movie Discovery and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpin

// Package metrics provides Prometheus instrumentation for:
//   - API endpoint latency and throughput
//   - Engine query performance (recommendations, search, filter)
//   - Store persistence failures and watchlist size
//   - Chat widget lifecycle and message traffic
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// Engine Metrics
	EngineQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "engine_query_duration_seconds",
			Help:    "Duration of engine queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // "recommend", "search", "filter"
	)

	EngineResultSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "engine_result_size",
			Help:    "Number of movies returned by engine queries",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
		[]string{"operation"},
	)

	// Store Metrics
	StoreWriteErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_write_errors_total",
			Help: "Total number of failed store persistence writes",
		},
		[]string{"key"},
	)

	WatchlistSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "watchlist_size",
			Help: "Current number of bookmarked movies",
		},
	)

	// Chat Widget Metrics
	ChatState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chat_widget_state",
			Help: "Chat widget lifecycle state (0=loading, 1=ready, 2=failed)",
		},
	)

	ChatMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_messages_sent_total",
			Help: "Total number of messages submitted to the chat widget",
		},
	)

	ChatMessagesDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_messages_dropped_total",
			Help: "Total number of messages dropped because the widget was unavailable",
		},
	)

	ChatMessagesIncoming = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_messages_incoming_total",
			Help: "Total number of incoming chat messages",
		},
	)
)

// RecordAPIRequest records metrics for a completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordEngineQuery records the duration and result size of an engine query.
func RecordEngineQuery(operation string, duration time.Duration, results int) {
	EngineQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	EngineResultSize.WithLabelValues(operation).Observe(float64(results))
}

// RecordStoreWriteError counts a failed persistence write for a storage key.
func RecordStoreWriteError(key string) {
	StoreWriteErrors.WithLabelValues(key).Inc()
}

// SetWatchlistSize updates the watchlist size gauge.
func SetWatchlistSize(n int) {
	WatchlistSize.Set(float64(n))
}

// SetChatState updates the chat widget state gauge.
func SetChatState(state int) {
	ChatState.Set(float64(state))
}
