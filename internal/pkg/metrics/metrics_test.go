//go:build unit
// +build unit

package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveOperation(t *testing.T) {
	success := OperationsTotal.WithLabelValues("metrics_test", OutcomeSuccess)
	failure := OperationsTotal.WithLabelValues("metrics_test", OutcomeFailure)
	beforeSuccess := testutil.ToFloat64(success)
	beforeFailure := testutil.ToFloat64(failure)

	ObserveOperation("metrics_test", nil)
	ObserveOperation("metrics_test", nil)
	ObserveOperation("metrics_test", errors.New("boom"))

	assert.Equal(t, beforeSuccess+2, testutil.ToFloat64(success))
	assert.Equal(t, beforeFailure+1, testutil.ToFloat64(failure))
}
