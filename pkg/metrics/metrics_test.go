package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestIncBookingRequest(t *testing.T) {
	m := NewWithRegistry("photostudio", prometheus.NewRegistry())

	m.IncBookingRequest("created")
	m.IncBookingRequest("created")
	m.IncBookingRequest("slot_not_available")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingRequestsTotal.WithLabelValues("photostudio", "created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingRequestsTotal.WithLabelValues("photostudio", "slot_not_available")))
}

func TestIncBookingRequest_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.IncBookingRequest("created") })
}
