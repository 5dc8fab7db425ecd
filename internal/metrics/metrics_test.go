package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestTrackJob(t *testing.T) {
	errNoText := errors.New("no text")
	boom := errors.New("boom")

	count := func(outcome string) float64 {
		return testutil.ToFloat64(jobsProcessedTotal.WithLabelValues(outcome))
	}
	completed, failed, noText := count(OutcomeCompleted), count(OutcomeFailed), count(OutcomeNoText)

	assert.NoError(t, TrackJob(errNoText, func() error { return nil }))
	assert.ErrorIs(t, TrackJob(errNoText, func() error { return boom }), boom)
	assert.ErrorIs(t, TrackJob(errNoText, func() error { return errNoText }), errNoText)

	assert.Equal(t, completed+1, count(OutcomeCompleted))
	assert.Equal(t, failed+1, count(OutcomeFailed))
	assert.Equal(t, noText+1, count(OutcomeNoText))
	assert.Equal(t, float64(0), testutil.ToFloat64(jobsInProgress))
}

func TestEmptyText(t *testing.T) {
	before := testutil.ToFloat64(emptyTextTotal)
	EmptyText()
	assert.Equal(t, before+1, testutil.ToFloat64(emptyTextTotal))
}
