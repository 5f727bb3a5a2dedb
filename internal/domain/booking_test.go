package domain

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
)

func TestBookingRequest_CanTransitionTo(t *testing.T) {
	statuses := []BookingRequestStatus{StatusNew, StatusConfirmed, StatusDone, StatusCancelled}
	allowed := map[[2]BookingRequestStatus]bool{
		{StatusNew, StatusConfirmed}:       true,
		{StatusNew, StatusCancelled}:       true,
		{StatusConfirmed, StatusDone}:      true,
		{StatusConfirmed, StatusCancelled}: true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			req := &BookingRequest{Status: from}
			assert.Equal(t, allowed[[2]BookingRequestStatus{from, to}], req.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestBookingRequestStatus(t *testing.T) {
	assert.True(t, StatusNew.IsValid())
	assert.False(t, BookingRequestStatus("archived").IsValid())

	assert.True(t, StatusDone.IsFinal())
	assert.True(t, StatusCancelled.IsFinal())
	assert.False(t, StatusConfirmed.IsFinal())
}

func TestOpenRange_Contains(t *testing.T) {
	r := OpenRange{From: civil.Date{Year: 2025, Month: 7, Day: 1}, To: civil.Date{Year: 2025, Month: 7, Day: 5}}

	assert.True(t, r.Contains(civil.Date{Year: 2025, Month: 7, Day: 1}))
	assert.True(t, r.Contains(civil.Date{Year: 2025, Month: 7, Day: 5}))
	assert.False(t, r.Contains(civil.Date{Year: 2025, Month: 6, Day: 30}))
	assert.False(t, r.Contains(civil.Date{Year: 2025, Month: 7, Day: 6}))

	reversed := OpenRange{From: r.To, To: r.From}
	assert.False(t, reversed.Contains(civil.Date{Year: 2025, Month: 7, Day: 3}))
}

func TestAvailabilitySettings_Helpers(t *testing.T) {
	s := &AvailabilitySettings{StartTimes: []string{"10:00", "13:00"}}

	assert.Equal(t, DefaultAdvanceDays, s.EffectiveAdvanceDays())
	s.AdvanceDays = 14
	assert.Equal(t, 14, s.EffectiveAdvanceDays())

	assert.True(t, s.HasStartTime("13:00"))
	assert.False(t, s.HasStartTime("13:30"))
}

func TestAvailabilityDay_Times(t *testing.T) {
	day := &AvailabilityDay{Times: []TimeAvailability{
		{Time: "10:00", Available: true},
		{Time: "13:00", Available: false},
	}}

	assert.True(t, day.IsTimeAvailable("10:00"))
	assert.False(t, day.IsTimeAvailable("13:00"))
	assert.False(t, day.IsTimeAvailable("16:00"))
	assert.Equal(t, 1, day.AvailableCount())
}
