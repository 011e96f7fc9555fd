package seeder

import (
	"fmt"
	"time"
)

type AircraftStatus int

const (
	AircraftActive AircraftStatus = iota
	AircraftMaintenance
	AircraftRetired
)

var aircraftStatuses = []AircraftStatus{AircraftActive, AircraftMaintenance, AircraftRetired}

func (s AircraftStatus) String() string {
	switch s {
	case AircraftActive:
		return "Active"
	case AircraftMaintenance:
		return "Maintenance"
	case AircraftRetired:
		return "Retired"
	}
	return fmt.Sprintf("AircraftStatus(%d)", int(s))
}

type FlightStatus int

const (
	FlightScheduled FlightStatus = iota
	FlightOnTime
	FlightDelayed
	FlightCancelled
)

var flightStatuses = []FlightStatus{FlightScheduled, FlightOnTime, FlightDelayed, FlightCancelled}

func (s FlightStatus) String() string {
	switch s {
	case FlightScheduled:
		return "Scheduled"
	case FlightOnTime:
		return "On Time"
	case FlightDelayed:
		return "Delayed"
	case FlightCancelled:
		return "Cancelled"
	}
	return fmt.Sprintf("FlightStatus(%d)", int(s))
}

type BookingStatus int

const (
	BookingConfirmed BookingStatus = iota
	BookingPending
	BookingCancelled
)

var bookingStatuses = []BookingStatus{BookingConfirmed, BookingPending, BookingCancelled}

func (s BookingStatus) String() string {
	switch s {
	case BookingConfirmed:
		return "Confirmed"
	case BookingPending:
		return "Pending"
	case BookingCancelled:
		return "Cancelled"
	}
	return fmt.Sprintf("BookingStatus(%d)", int(s))
}

type SeatClass int

const (
	SeatEconomy SeatClass = iota
	SeatPremiumEconomy
	SeatBusiness
)

var seatClasses = []SeatClass{SeatEconomy, SeatPremiumEconomy, SeatBusiness}

func (c SeatClass) String() string {
	switch c {
	case SeatEconomy:
		return "Economy"
	case SeatPremiumEconomy:
		return "Premium Economy"
	case SeatBusiness:
		return "Business"
	}
	return fmt.Sprintf("SeatClass(%d)", int(c))
}

// SeatClassForRow maps a cabin row to its class: rows 1-3 are Business,
// rows 4-10 Premium Economy, everything behind is Economy.
func SeatClassForRow(row int) SeatClass {
	switch {
	case row <= 3:
		return SeatBusiness
	case row <= 10:
		return SeatPremiumEconomy
	default:
		return SeatEconomy
	}
}

type BaggageType int

const (
	BaggageCarryOn BaggageType = iota
	BaggageChecked
	BaggageOversized
)

var baggageTypes = []BaggageType{BaggageCarryOn, BaggageChecked, BaggageOversized}

func (t BaggageType) String() string {
	switch t {
	case BaggageCarryOn:
		return "CarryOn"
	case BaggageChecked:
		return "Checked"
	case BaggageOversized:
		return "Oversized"
	}
	return fmt.Sprintf("BaggageType(%d)", int(t))
}

type BaggageStatus int

const (
	BaggageCheckedIn BaggageStatus = iota
	BaggageLoaded
	BaggageInTransit
	BaggageDelivered
)

var baggageStatuses = []BaggageStatus{BaggageCheckedIn, BaggageLoaded, BaggageInTransit, BaggageDelivered}

func (s BaggageStatus) String() string {
	switch s {
	case BaggageCheckedIn:
		return "CheckedIn"
	case BaggageLoaded:
		return "Loaded"
	case BaggageInTransit:
		return "InTransit"
	case BaggageDelivered:
		return "Delivered"
	}
	return fmt.Sprintf("BaggageStatus(%d)", int(s))
}

type CrewRole int

const (
	CrewPilot CrewRole = iota
	CrewCoPilot
	CrewFlightAttendant
)

var crewRoles = []CrewRole{CrewPilot, CrewCoPilot, CrewFlightAttendant}

func (r CrewRole) String() string {
	switch r {
	case CrewPilot:
		return "Pilot"
	case CrewCoPilot:
		return "CoPilot"
	case CrewFlightAttendant:
		return "FlightAttendant"
	}
	return fmt.Sprintf("CrewRole(%d)", int(r))
}

type Route struct {
	ID          int
	Origin      string
	Destination string
	DistanceKM  int
	DurationMin int
}

type Aircraft struct {
	ID       int
	Model    string
	Capacity int
	Status   AircraftStatus
}

type Passenger struct {
	ID             int
	FirstName      string
	LastName       string
	Phone          string
	Email          string
	PassportNumber string
	LoyaltyStatus  string
}

// BaggageFeeBand is one row of the fee table. Weight bounds are inclusive.
type BaggageFeeBand struct {
	ID          int
	Type        BaggageType
	MinWeightKG float64
	MaxWeightKG float64
	Fee         float64
}

type Flight struct {
	ID           int
	FlightNumber string
	Departure    time.Time
	Arrival      time.Time
	Status       FlightStatus
	RouteID      int
	AircraftID   int
}

type Seat struct {
	ID          int
	SeatNumber  string
	Class       SeatClass
	IsAvailable bool
	AircraftID  int
}

type CrewMember struct {
	ID            int
	Name          string
	Role          CrewRole
	Certification string
	Contact       string
}

type Booking struct {
	ID          int
	BookingCode string
	SeatClass   SeatClass
	BookingDate time.Time
	Price       float64
	FlightID    int
	PassengerID int
	SeatID      *int // nil when the flight's aircraft has no free seat left
	Status      BookingStatus
}

type FlightCrewAssignment struct {
	ID       int
	FlightID int
	CrewID   int
}

type Baggage struct {
	ID        int
	BookingID int
	TagNumber int
	FeeID     int
	Type      BaggageType
	WeightKG  float64
	Status    BaggageStatus
}

// Dataset holds every generated row, grouped per table in creation order.
type Dataset struct {
	Routes      []Route
	Aircraft    []Aircraft
	Passengers  []Passenger
	FeeBands    []BaggageFeeBand
	Flights     []Flight
	Seats       []Seat
	Crew        []CrewMember
	Bookings    []Booking
	Assignments []FlightCrewAssignment
	Baggage     []Baggage
}

// Table names as they appear in the AeroDB schema.
const (
	TableRoute                = "Route"
	TableAircraft             = "Aircraft"
	TablePassenger            = "Passenger"
	TableBaggageFee           = "BaggageFee"
	TableFlight               = "Flight"
	TableSeat                 = "Seat"
	TableCrewMember           = "CrewMember"
	TableBooking              = "Booking"
	TableFlightCrewAssignment = "FlightCrewAssignment"
	TableBaggage              = "Baggage"
)

// TableInfo describes one generated table and the tables whose ids it consumes.
type TableInfo struct {
	Name         string
	Dependencies []string
}
