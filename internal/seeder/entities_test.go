package seeder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var departure = time.Date(2024, 6, 15, 22, 45, 10, 0, time.UTC)

func TestNewFlight_ArrivalIsDeparturePlusDuration(t *testing.T) {
	f, err := NewFlight(1, "AC123", departure, 95, FlightDelayed, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, departure.Add(95*time.Minute), f.Arrival)
	assert.Equal(t, 3, f.RouteID)
	assert.Equal(t, 4, f.AircraftID)
}

func TestNewFlight_NonPositiveDuration(t *testing.T) {
	_, err := NewFlight(1, "AC123", departure, 0, FlightScheduled, 1, 1)
	assert.Error(t, err)
}

func TestNewBooking(t *testing.T) {
	seats := NewSeatTracker()
	seats.AddSeat(4, 7)
	seats.AddSeat(5, 8)
	flight, err := NewFlight(9, "AC321", departure, 60, FlightOnTime, 1, 4)
	require.NoError(t, err)

	t.Run("same day as departure", func(t *testing.T) {
		sameDay := time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC)
		b, err := NewBooking(1, "BK100000", SeatBusiness, sameDay, 120.5, flight, 2, nil, BookingPending, seats)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), b.BookingDate)
		assert.Nil(t, b.SeatID)
		assert.Equal(t, 9, b.FlightID)
	})

	t.Run("after departure", func(t *testing.T) {
		_, err := NewBooking(1, "BK100000", SeatEconomy, departure.AddDate(0, 0, 1), 100, flight, 2, nil, BookingPending, seats)
		assert.Error(t, err)
	})

	t.Run("seat on flight aircraft", func(t *testing.T) {
		seat := 7
		b, err := NewBooking(1, "BK100000", SeatEconomy, departure, 100, flight, 2, &seat, BookingConfirmed, seats)
		require.NoError(t, err)
		require.NotNil(t, b.SeatID)
		assert.Equal(t, 7, *b.SeatID)
	})

	t.Run("seat on another aircraft", func(t *testing.T) {
		seat := 8
		_, err := NewBooking(1, "BK100000", SeatEconomy, departure, 100, flight, 2, &seat, BookingConfirmed, seats)
		assert.Error(t, err)
	})
}

func TestNewBaggage(t *testing.T) {
	zeroFloor := BaggageFeeBand{ID: 3, Type: BaggageChecked, MinWeightKG: 0, MaxWeightKG: 23}
	heavy := BaggageFeeBand{ID: 4, Type: BaggageChecked, MinWeightKG: 23.01, MaxWeightKG: 32}

	b, err := NewBaggage(1, 5, 100000, heavy, 23.01, BaggageLoaded)
	require.NoError(t, err)
	assert.Equal(t, BaggageChecked, b.Type)
	assert.Equal(t, 4, b.FeeID)

	_, err = NewBaggage(1, 5, 100000, heavy, 32, BaggageLoaded)
	assert.NoError(t, err)

	_, err = NewBaggage(1, 5, 100000, zeroFloor, 0, BaggageLoaded)
	assert.Error(t, err)

	_, err = NewBaggage(1, 5, 100000, heavy, 23.00, BaggageLoaded)
	assert.Error(t, err)

	_, err = NewBaggage(1, 5, 100000, heavy, 32.01, BaggageLoaded)
	assert.Error(t, err)
}

func TestSeatClassForRow(t *testing.T) {
	assert.Equal(t, SeatBusiness, SeatClassForRow(1))
	assert.Equal(t, SeatBusiness, SeatClassForRow(3))
	assert.Equal(t, SeatPremiumEconomy, SeatClassForRow(4))
	assert.Equal(t, SeatPremiumEconomy, SeatClassForRow(10))
	assert.Equal(t, SeatEconomy, SeatClassForRow(11))
}

func TestEnumLiterals(t *testing.T) {
	assert.Equal(t, "On Time", FlightOnTime.String())
	assert.Equal(t, "Premium Economy", SeatPremiumEconomy.String())
	assert.Equal(t, "FlightAttendant", CrewFlightAttendant.String())
	assert.Equal(t, "CarryOn", BaggageCarryOn.String())
	assert.Equal(t, "InTransit", BaggageInTransit.String())
	assert.Equal(t, "Maintenance", AircraftMaintenance.String())
	assert.Equal(t, "Cancelled", BookingCancelled.String())
}
