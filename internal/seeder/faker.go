package seeder

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
)

// minPositiveWeight replaces a zero band floor; the schema rejects WeightKG = 0.
const minPositiveWeight = 0.01

var (
	firstNames = []string{"Alex", "Jordan", "Taylor", "Chris", "Sam", "Jamie", "Morgan", "Riley", "Casey", "Drew"}
	lastNames  = []string{"Smith", "Johnson", "Lee", "Patel", "Wong", "Brown", "Garcia", "Martin", "Kim", "Singh"}

	aircraftModels = []string{"Boeing 737", "Airbus A320", "Boeing 787", "Airbus A350", "Embraer E190"}
)

// DataGenerator draws every random value of a run from one seeded source,
// so the same seed always yields the same dataset.
type DataGenerator struct {
	rand *rand.Rand
}

func NewDataGenerator(seed int64) *DataGenerator {
	return &DataGenerator{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// IntBetween returns a uniform integer in [min, max].
func (g *DataGenerator) IntBetween(min, max int) int {
	return min + g.rand.Intn(max-min+1)
}

// Decimal returns a uniform value in [min, max] rounded to two places.
func (g *DataGenerator) Decimal(min, max float64) float64 {
	return roundCents(min + g.rand.Float64()*(max-min))
}

// TimeBetween returns a uniform instant in [start, end] at second resolution.
func (g *DataGenerator) TimeBetween(start, end time.Time) time.Time {
	span := int64(end.Sub(start) / time.Second)
	if span <= 0 {
		return start
	}
	return start.Add(time.Duration(g.rand.Int63n(span+1)) * time.Second)
}

// DateBetween samples like TimeBetween and drops the time of day.
func (g *DataGenerator) DateBetween(start, end time.Time) time.Time {
	return truncateDay(g.TimeBetween(start, end))
}

// WeightIn samples a weight inside band. A zero floor is lifted to
// minPositiveWeight and the rounded result never drops to zero.
func (g *DataGenerator) WeightIn(band BaggageFeeBand) float64 {
	floor := band.MinWeightKG
	if floor == 0 {
		floor = minPositiveWeight
	}
	w := g.Decimal(floor, band.MaxWeightKG)
	if w <= 0 {
		w = minPositiveWeight
	}
	return w
}

// Distinct returns k distinct ids drawn without replacement from [1, n].
func (g *DataGenerator) Distinct(k, n int) []int {
	perm := g.rand.Perm(n)[:k]
	ids := make([]int, k)
	for i, p := range perm {
		ids[i] = p + 1
	}
	return ids
}

func pick[T any](g *DataGenerator, items []T) T {
	return items[g.rand.Intn(len(items))]
}

func (g *DataGenerator) generateName() (string, string) {
	return pick(g, firstNames), pick(g, lastNames)
}

func (g *DataGenerator) generatePhone() string {
	return fmt.Sprintf("+1-416-%d-%d", g.IntBetween(200, 999), g.IntBetween(1000, 9999))
}

func (g *DataGenerator) generateEmail(first, last string, index int, domain string) string {
	return fmt.Sprintf("%s.%s%d@%s", strings.ToLower(first), strings.ToLower(last), index, domain)
}

func (g *DataGenerator) generateCertification(role CrewRole) string {
	switch role {
	case CrewPilot, CrewCoPilot:
		return fmt.Sprintf("ATPL-%d", g.IntBetween(1000, 9999))
	default:
		return fmt.Sprintf("FA-%d", g.IntBetween(1000, 9999))
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func cents(v float64) int64 {
	return int64(math.Round(v * 100))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
