package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveGateway(t *testing.T) {
	before := testutil.ToFloat64(gatewayRequests.WithLabelValues("get_ticket", OutcomeNotFound))

	ObserveGateway("get_ticket", OutcomeNotFound, 10*time.Millisecond)

	after := testutil.ToFloat64(gatewayRequests.WithLabelValues("get_ticket", OutcomeNotFound))
	assert.Equal(t, before+1, after)
}

func TestObserveStoreAndSize(t *testing.T) {
	before := testutil.ToFloat64(storeOperations.WithLabelValues("create", OutcomeOK))

	ObserveStore("create", OutcomeOK)
	SetStoreSize(11)

	assert.Equal(t, before+1, testutil.ToFloat64(storeOperations.WithLabelValues("create", OutcomeOK)))
	assert.Equal(t, float64(11), testutil.ToFloat64(storeTickets))
}

func TestObserveHTTP(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/tickets/:id", "404"))
	ObserveHTTP("GET", "/tickets/:id", 404, time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/tickets/:id", "404")))
}
