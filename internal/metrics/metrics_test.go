package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncSubmission(t *testing.T) {
	before := testutil.ToFloat64(SubmissionsTotal.WithLabelValues(ResultCreated))

	IncSubmission(ResultCreated)
	IncSubmission(ResultCreated)

	after := testutil.ToFloat64(SubmissionsTotal.WithLabelValues(ResultCreated))
	assert.Equal(t, before+2, after)
}

func TestObserveAudioBytes(t *testing.T) {
	sampleCount := func() uint64 {
		m := &dto.Metric{}
		require.NoError(t, SubmissionAudioBytes.Write(m))
		return m.GetHistogram().GetSampleCount()
	}

	before := sampleCount()
	ObserveAudioBytes(32 << 10)

	assert.Equal(t, before+1, sampleCount())
	assert.Equal(t, 1, testutil.CollectAndCount(SubmissionAudioBytes))
}
