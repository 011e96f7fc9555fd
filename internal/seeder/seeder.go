package seeder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/aerogen/internal/config"
	"github.com/fatih/color"
)

// ErrInvalidConfig marks settings that cannot produce a consistent dataset.
var ErrInvalidConfig = errors.New("invalid generation config")

const (
	distanceMinKM = 300
	distanceMaxKM = 8000

	durationMinMinutes = 45
	durationMaxMinutes = 800

	capacityMin = 120
	capacityMax = 300

	priceMin = 100.0
	priceMax = 2000.0

	loyaltyMax = 5

	passportBase    = 1000000
	bookingCodeBase = 100000
	firstTagNumber  = 100000
)

var seatLetters = []string{"A", "B", "C", "D", "E", "F"}

// DefaultFeeBands is the AeroDB baggage fee table. IDs are assigned in this order.
var DefaultFeeBands = []BaggageFeeBand{
	{Type: BaggageCarryOn, MinWeightKG: 0.00, MaxWeightKG: 10.00, Fee: 0.00},
	{Type: BaggageCarryOn, MinWeightKG: 10.01, MaxWeightKG: 23.00, Fee: 30.00},
	{Type: BaggageChecked, MinWeightKG: 0.00, MaxWeightKG: 23.00, Fee: 35.00},
	{Type: BaggageChecked, MinWeightKG: 23.01, MaxWeightKG: 32.00, Fee: 75.00},
	{Type: BaggageChecked, MinWeightKG: 32.01, MaxWeightKG: 45.00, Fee: 150.00},
	{Type: BaggageOversized, MinWeightKG: 0.00, MaxWeightKG: 32.00, Fee: 200.00},
	{Type: BaggageOversized, MinWeightKG: 32.01, MaxWeightKG: 45.00, Fee: 250.00},
}

// genContext is the state of one generation run. Each stage reads the id
// ranges of earlier stages and appends its own rows.
type genContext struct {
	gen         *DataGenerator
	ids         *IDAllocator
	seats       *SeatTracker
	data        *Dataset
	windowStart time.Time
	windowEnd   time.Time
}

type stage struct {
	table *TableInfo
	run   func(s *Seeder, c *genContext) error
}

type Seeder struct {
	config   *config.Config
	feeBands []BaggageFeeBand
	stages   map[string]stage
	graph    *DependencyGraph
}

// Result summarizes one Seed call.
type Result struct {
	Path       string
	Statements []string
	Counts     map[string]int
	Order      []string
}

func NewSeeder(cfg *config.Config) (*Seeder, error) {
	s := &Seeder{
		config:   cfg,
		feeBands: DefaultFeeBands,
		stages:   make(map[string]stage),
		graph:    NewDependencyGraph(),
	}

	s.register(TableRoute, nil, (*Seeder).seedRoutes)
	s.register(TableAircraft, nil, (*Seeder).seedAircraft)
	s.register(TablePassenger, nil, (*Seeder).seedPassengers)
	s.register(TableBaggageFee, nil, (*Seeder).seedFeeBands)
	s.register(TableFlight, []string{TableRoute, TableAircraft}, (*Seeder).seedFlights)
	s.register(TableSeat, []string{TableAircraft}, (*Seeder).seedSeats)
	s.register(TableCrewMember, nil, (*Seeder).seedCrew)
	s.register(TableBooking, []string{TableFlight, TablePassenger, TableSeat}, (*Seeder).seedBookings)
	s.register(TableFlightCrewAssignment, []string{TableFlight, TableCrewMember}, (*Seeder).seedAssignments)
	s.register(TableBaggage, []string{TableBooking, TableBaggageFee}, (*Seeder).seedBaggage)

	if _, err := s.graph.BuildInsertionOrder(); err != nil {
		return nil, fmt.Errorf("failed to build insertion order: %w", err)
	}

	return s, nil
}

func (s *Seeder) register(table string, deps []string, run func(*Seeder, *genContext) error) {
	info := &TableInfo{Name: table, Dependencies: deps}
	s.stages[table] = stage{table: info, run: run}
	s.graph.AddTable(info)
}

// Order returns the table order rows are generated and written in.
func (s *Seeder) Order() []string {
	return s.graph.GetOrder()
}

// Validate rejects configurations the pipeline could not satisfy, before
// any row is generated.
func (s *Seeder) Validate() error {
	if err := s.config.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if !isValidIdentifier(s.config.Database) {
		return fmt.Errorf("%w: invalid database name: %s", ErrInvalidConfig, s.config.Database)
	}

	c := s.config.Counts
	if pairs := routePairCount(len(s.config.Airports)); c.Routes > pairs {
		return fmt.Errorf("%w: %d routes requested but %d airports only form %d distinct pairs",
			ErrInvalidConfig, c.Routes, len(s.config.Airports), pairs)
	}
	if c.Flights > flightNumberSpace() {
		return fmt.Errorf("%w: %d flights requested but only %d unique flight numbers exist",
			ErrInvalidConfig, c.Flights, flightNumberSpace())
	}
	if c.Flights > 0 && (c.Routes == 0 || c.Aircraft == 0) {
		return fmt.Errorf("%w: flights need at least one route and one aircraft", ErrInvalidConfig)
	}
	if c.Flights > 0 && s.config.CrewPerFlight > c.Crew {
		return fmt.Errorf("%w: %d crew per flight requested but only %d crew members",
			ErrInvalidConfig, s.config.CrewPerFlight, c.Crew)
	}
	if c.Bookings > 0 && (c.Flights == 0 || c.Passengers == 0) {
		return fmt.Errorf("%w: bookings need at least one flight and one passenger", ErrInvalidConfig)
	}
	if c.Baggage > 0 && (c.Bookings == 0 || len(s.feeBands) == 0) {
		return fmt.Errorf("%w: baggage needs at least one booking and one fee band", ErrInvalidConfig)
	}
	for i, band := range s.feeBands {
		if band.MaxWeightKG <= 0 || band.MinWeightKG < 0 || band.MinWeightKG > band.MaxWeightKG {
			return fmt.Errorf("%w: fee band %d has invalid weight range [%.2f, %.2f]",
				ErrInvalidConfig, i+1, band.MinWeightKG, band.MaxWeightKG)
		}
	}

	return nil
}

// Generate validates the config and builds a fresh dataset. Repeated calls
// with the same config return identical datasets.
func (s *Seeder) Generate() (*Dataset, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	start, end, err := s.config.FlightWindow.Bounds()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	c := &genContext{
		gen:         NewDataGenerator(s.config.Seed),
		ids:         NewIDAllocator(),
		seats:       NewSeatTracker(),
		data:        &Dataset{},
		windowStart: start,
		windowEnd:   end,
	}

	for _, table := range s.Order() {
		if err := s.stages[table].run(s, c); err != nil {
			return nil, fmt.Errorf("failed to generate %s: %w", table, err)
		}
		s.logf(color.GreenString, "  ✅ %s (%d rows)", table, c.ids.Max(table))
	}

	return c.data, nil
}

// Seed generates the dataset, renders it and writes it to the configured output.
func (s *Seeder) Seed() (*Result, error) {
	s.logf(color.CyanString, "🌱 Generating %s dataset (seed %d)...", s.config.Database, s.config.Seed)
	s.logf(color.CyanString, "📋 Generation order: %s", strings.Join(s.Order(), " → "))

	ds, err := s.Generate()
	if err != nil {
		return nil, err
	}

	writer, err := NewWriter(s.config.Database)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	lines, err := writer.Statements(ds, s.Order())
	if err != nil {
		return nil, err
	}

	if err := WriteFile(s.config.OutputPath, lines); err != nil {
		return nil, err
	}

	return &Result{
		Path:       s.config.OutputPath,
		Statements: lines,
		Counts:     ds.Counts(),
		Order:      s.Order(),
	}, nil
}

func (s *Seeder) logf(style func(string, ...interface{}) string, format string, args ...interface{}) {
	if s.config.Quiet {
		return
	}
	fmt.Fprintln(color.Error, style(format, args...))
}

// Counts returns the number of rows per table.
func (d *Dataset) Counts() map[string]int {
	return map[string]int{
		TableRoute:                len(d.Routes),
		TableAircraft:             len(d.Aircraft),
		TablePassenger:            len(d.Passengers),
		TableBaggageFee:           len(d.FeeBands),
		TableFlight:               len(d.Flights),
		TableSeat:                 len(d.Seats),
		TableCrewMember:           len(d.Crew),
		TableBooking:              len(d.Bookings),
		TableFlightCrewAssignment: len(d.Assignments),
		TableBaggage:              len(d.Baggage),
	}
}

func (s *Seeder) seedRoutes(c *genContext) error {
	pairs, err := uniqueRoutePairs(c.gen, s.config.Airports, s.config.Counts.Routes)
	if err != nil {
		return err
	}

	for _, p := range pairs {
		c.data.Routes = append(c.data.Routes, Route{
			ID:          c.ids.Next(TableRoute),
			Origin:      p.origin,
			Destination: p.destination,
			DistanceKM:  c.gen.IntBetween(distanceMinKM, distanceMaxKM),
			DurationMin: c.gen.IntBetween(durationMinMinutes, durationMaxMinutes),
		})
	}
	return nil
}

func (s *Seeder) seedAircraft(c *genContext) error {
	for i := 0; i < s.config.Counts.Aircraft; i++ {
		c.data.Aircraft = append(c.data.Aircraft, Aircraft{
			ID:       c.ids.Next(TableAircraft),
			Model:    pick(c.gen, aircraftModels),
			Capacity: c.gen.IntBetween(capacityMin, capacityMax),
			Status:   pick(c.gen, aircraftStatuses),
		})
	}
	return nil
}

func (s *Seeder) seedPassengers(c *genContext) error {
	for i := 0; i < s.config.Counts.Passengers; i++ {
		first, last := c.gen.generateName()
		c.data.Passengers = append(c.data.Passengers, Passenger{
			ID:             c.ids.Next(TablePassenger),
			FirstName:      first,
			LastName:       last,
			Phone:          c.gen.generatePhone(),
			Email:          c.gen.generateEmail(first, last, i, "example.com"),
			PassportNumber: fmt.Sprintf("P%d", passportBase+i),
			LoyaltyStatus:  strconv.Itoa(c.gen.IntBetween(0, loyaltyMax)),
		})
	}
	return nil
}

func (s *Seeder) seedFeeBands(c *genContext) error {
	for _, band := range s.feeBands {
		band.ID = c.ids.Next(TableBaggageFee)
		c.data.FeeBands = append(c.data.FeeBands, band)
	}
	return nil
}

func (s *Seeder) seedFlights(c *genContext) error {
	numbers, err := uniqueFlightNumbers(c.gen, s.config.Counts.Flights)
	if err != nil {
		return err
	}

	for _, number := range numbers {
		departure := c.gen.TimeBetween(c.windowStart, c.windowEnd)
		duration := c.gen.IntBetween(durationMinMinutes, durationMaxMinutes)
		status := pick(c.gen, flightStatuses)
		routeID := c.gen.IntBetween(1, c.ids.Max(TableRoute))
		aircraftID := c.gen.IntBetween(1, c.ids.Max(TableAircraft))

		flight, err := NewFlight(c.ids.Next(TableFlight), number, departure, duration, status, routeID, aircraftID)
		if err != nil {
			return err
		}
		c.data.Flights = append(c.data.Flights, flight)
	}
	return nil
}

// seedSeats lays out Capacity seats per aircraft, six letters per row.
func (s *Seeder) seedSeats(c *genContext) error {
	for _, aircraft := range c.data.Aircraft {
		for n := 0; n < aircraft.Capacity; n++ {
			row := n/len(seatLetters) + 1
			seat := Seat{
				ID:          c.ids.Next(TableSeat),
				SeatNumber:  fmt.Sprintf("%d%s", row, seatLetters[n%len(seatLetters)]),
				Class:       SeatClassForRow(row),
				IsAvailable: true,
				AircraftID:  aircraft.ID,
			}
			c.data.Seats = append(c.data.Seats, seat)
			c.seats.AddSeat(aircraft.ID, seat.ID)
		}
	}
	return nil
}

func (s *Seeder) seedCrew(c *genContext) error {
	for i := 0; i < s.config.Counts.Crew; i++ {
		first, last := c.gen.generateName()
		role := pick(c.gen, crewRoles)
		c.data.Crew = append(c.data.Crew, CrewMember{
			ID:            c.ids.Next(TableCrewMember),
			Name:          first + " " + last,
			Role:          role,
			Certification: c.gen.generateCertification(role),
			Contact:       c.gen.generateEmail(first, last, i, "airlinecrew.com"),
		})
	}
	return nil
}

func (s *Seeder) seedBookings(c *genContext) error {
	for i := 0; i < s.config.Counts.Bookings; i++ {
		code := fmt.Sprintf("BK%d", bookingCodeBase+i)
		class := pick(c.gen, seatClasses)

		flight := c.data.Flights[c.gen.IntBetween(1, c.ids.Max(TableFlight))-1]
		bookingDate := c.gen.DateBetween(c.windowStart, flight.Departure)
		price := c.gen.Decimal(priceMin, priceMax)
		passengerID := c.gen.IntBetween(1, c.ids.Max(TablePassenger))
		status := pick(c.gen, bookingStatuses)
		seatID := c.seats.Assign(c.gen, flight.ID, flight.AircraftID)

		booking, err := NewBooking(c.ids.Next(TableBooking), code, class, bookingDate, price,
			flight, passengerID, seatID, status, c.seats)
		if err != nil {
			return err
		}
		c.data.Bookings = append(c.data.Bookings, booking)
	}
	return nil
}

// seedAssignments staffs every flight with CrewPerFlight distinct crew
// members. Overlapping flights may share crew.
func (s *Seeder) seedAssignments(c *genContext) error {
	maxCrew := c.ids.Max(TableCrewMember)
	for flightID := 1; flightID <= c.ids.Max(TableFlight); flightID++ {
		for _, crewID := range c.gen.Distinct(s.config.CrewPerFlight, maxCrew) {
			c.data.Assignments = append(c.data.Assignments, FlightCrewAssignment{
				ID:       c.ids.Next(TableFlightCrewAssignment),
				FlightID: flightID,
				CrewID:   crewID,
			})
		}
	}
	return nil
}

func (s *Seeder) seedBaggage(c *genContext) error {
	for i := 0; i < s.config.Counts.Baggage; i++ {
		bookingID := c.gen.IntBetween(1, c.ids.Max(TableBooking))
		band := pick(c.gen, c.data.FeeBands)
		weight := c.gen.WeightIn(band)
		status := pick(c.gen, baggageStatuses)

		bag, err := NewBaggage(c.ids.Next(TableBaggage), bookingID, firstTagNumber+i, band, weight, status)
		if err != nil {
			return err
		}
		c.data.Baggage = append(c.data.Baggage, bag)
	}
	return nil
}
