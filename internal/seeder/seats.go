package seeder

// SeatTracker remembers which seats each aircraft owns and which of them
// are already taken on each flight.
type SeatTracker struct {
	seatsByAircraft map[int][]int
	owner           map[int]int
	used            map[int]map[int]bool
}

func NewSeatTracker() *SeatTracker {
	return &SeatTracker{
		seatsByAircraft: make(map[int][]int),
		owner:           make(map[int]int),
		used:            make(map[int]map[int]bool),
	}
}

// AddSeat registers seatID as part of aircraftID's cabin.
func (t *SeatTracker) AddSeat(aircraftID, seatID int) {
	t.seatsByAircraft[aircraftID] = append(t.seatsByAircraft[aircraftID], seatID)
	t.owner[seatID] = aircraftID
}

// Owns reports whether seatID belongs to aircraftID.
func (t *SeatTracker) Owns(aircraftID, seatID int) bool {
	owner, ok := t.owner[seatID]
	return ok && owner == aircraftID
}

// Available lists the seats of aircraftID still free on flightID, in seat id order.
func (t *SeatTracker) Available(flightID, aircraftID int) []int {
	used := t.used[flightID]
	var free []int
	for _, seatID := range t.seatsByAircraft[aircraftID] {
		if !used[seatID] {
			free = append(free, seatID)
		}
	}
	return free
}

// Assign picks a free seat for a booking on flightID and marks it taken.
// It returns nil once the aircraft is full; that booking simply has no seat.
func (t *SeatTracker) Assign(g *DataGenerator, flightID, aircraftID int) *int {
	free := t.Available(flightID, aircraftID)
	if len(free) == 0 {
		return nil
	}

	seatID := pick(g, free)
	if t.used[flightID] == nil {
		t.used[flightID] = make(map[int]bool)
	}
	t.used[flightID][seatID] = true
	return &seatID
}
