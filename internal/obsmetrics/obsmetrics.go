// Package obsmetrics exposes the Prometheus counters and histograms
// httpcore.Connection updates on every decode/encode cycle, modeled on
// packetd's controller/metrics.go promauto pattern.
package obsmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "httpcodec"

var (
	messagesDecoded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_decoded_total",
			Help:      "Messages successfully decoded, by kind.",
		},
		[]string{"kind"},
	)

	messagesEncoded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_encoded_total",
			Help:      "Messages successfully encoded, by kind.",
		},
		[]string{"kind"},
	)

	bodyBytes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "body_bytes_total",
			Help:      "Body bytes moved, by direction.",
		},
		[]string{"direction"},
	)

	parseErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parse_errors_total",
			Help:      "Parse failures, by error kind.",
		},
		[]string{"kind"},
	)

	chunkSizeBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chunk_size_bytes",
			Help:      "Size distribution of individual decoded chunks.",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 10),
		},
	)
)

// IncDecoded increments the decoded-message counter for kind ("request" or
// "response").
func IncDecoded(kind string) { messagesDecoded.WithLabelValues(kind).Inc() }

// IncEncoded increments the encoded-message counter for kind.
func IncEncoded(kind string) { messagesEncoded.WithLabelValues(kind).Inc() }

// AddBodyBytes adds n to the body-byte counter for direction ("decode" or
// "encode").
func AddBodyBytes(direction string, n uint64) {
	bodyBytes.WithLabelValues(direction).Add(float64(n))
}

// IncParseError increments the parse-error counter for kind, one of the
// error-kind labels in httpcore.Connection.errKind.
func IncParseError(kind string) { parseErrors.WithLabelValues(kind).Inc() }

// ObserveChunkSize records a decoded chunk's size.
func ObserveChunkSize(n uint64) { chunkSizeBytes.Observe(float64(n)) }
