package seeder

import (
	"fmt"
	"time"
)

// NewFlight builds a flight whose arrival is exactly departure + durationMin.
func NewFlight(id int, number string, departure time.Time, durationMin int, status FlightStatus, routeID, aircraftID int) (Flight, error) {
	if durationMin <= 0 {
		return Flight{}, fmt.Errorf("flight %s: duration must be positive, got %d", number, durationMin)
	}
	return Flight{
		ID:           id,
		FlightNumber: number,
		Departure:    departure,
		Arrival:      departure.Add(time.Duration(durationMin) * time.Minute),
		Status:       status,
		RouteID:      routeID,
		AircraftID:   aircraftID,
	}, nil
}

// NewBooking builds a booking on flight. The booking date may not fall after
// the flight's departure date, and a non-nil seat must belong to the
// aircraft operating the flight.
func NewBooking(id int, code string, class SeatClass, bookingDate time.Time, price float64,
	flight Flight, passengerID int, seatID *int, status BookingStatus, seats *SeatTracker) (Booking, error) {
	date := truncateDay(bookingDate)
	if date.After(truncateDay(flight.Departure)) {
		return Booking{}, fmt.Errorf("booking %s: date %s is after departure of flight %d (%s)",
			code, date.Format(dateLayout), flight.ID, flight.Departure.Format(timestampLayout))
	}
	if seatID != nil && !seats.Owns(flight.AircraftID, *seatID) {
		return Booking{}, fmt.Errorf("booking %s: seat %d is not on aircraft %d of flight %d",
			code, *seatID, flight.AircraftID, flight.ID)
	}
	return Booking{
		ID:          id,
		BookingCode: code,
		SeatClass:   class,
		BookingDate: date,
		Price:       price,
		FlightID:    flight.ID,
		PassengerID: passengerID,
		SeatID:      seatID,
		Status:      status,
	}, nil
}

// NewBaggage builds a bag priced by band. The weight must be positive and
// inside the band, with a zero band floor read as minPositiveWeight.
func NewBaggage(id, bookingID, tagNumber int, band BaggageFeeBand, weightKG float64, status BaggageStatus) (Baggage, error) {
	floor := band.MinWeightKG
	if floor == 0 {
		floor = minPositiveWeight
	}
	if weightKG <= 0 || cents(weightKG) < cents(floor) || cents(weightKG) > cents(band.MaxWeightKG) {
		return Baggage{}, fmt.Errorf("baggage %d: weight %.2f outside fee band %d [%.2f, %.2f]",
			tagNumber, weightKG, band.ID, floor, band.MaxWeightKG)
	}
	return Baggage{
		ID:        id,
		BookingID: bookingID,
		TagNumber: tagNumber,
		FeeID:     band.ID,
		Type:      band.Type,
		WeightKG:  weightKG,
		Status:    status,
	}, nil
}
