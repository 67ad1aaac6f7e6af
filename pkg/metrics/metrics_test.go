package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("room-booking")

	m.ObserveBooking("success")
	m.ObserveBooking("success")
	m.ObserveBooking("validation_failed")
	m.ObserveNotification("ERROR")
	m.SetRooms(9, 7)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsTotal.WithLabelValues("validation_failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues("ERROR")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.RoomsAvailable))
	assert.Equal(t, 9.0, testutil.ToFloat64(m.RoomsTotal))
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New("a")
		New("b")
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New("room-booking")
	m.ObserveBooking("success")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `bookings_total{result="success",service="room-booking"} 1`)
}
