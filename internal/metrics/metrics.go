// Package metrics provides Prometheus metrics for call submissions.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submission results. Labels are fixed; never label by user or call id.
const (
	ResultCreated  = "created"
	ResultInvalid  = "invalid"
	ResultFailed   = "failed"
	ResultReplayed = "replayed"
)

var (
	// SubmissionsTotal counts recorder form submissions by outcome.
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "callrecorder_submissions_total",
		Help: "Total number of call recording submissions, by result.",
	}, []string{"result"})

	// SubmissionAudioBytes tracks the size of accepted audio payloads.
	SubmissionAudioBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "callrecorder_submission_audio_bytes",
		Help:    "Size of submitted audio payloads in bytes (as encoded in the form).",
		Buckets: prometheus.ExponentialBuckets(16<<10, 4, 7), // 16KiB .. 64MiB
	})
)

// IncSubmission counts one submission with the given result.
func IncSubmission(result string) {
	SubmissionsTotal.WithLabelValues(result).Inc()
}

// ObserveAudioBytes records the encoded size of an accepted audio payload.
func ObserveAudioBytes(size int) {
	SubmissionAudioBytes.Observe(float64(size))
}
