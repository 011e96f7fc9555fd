package seeder

import "fmt"

const (
	flightNumberPrefix = "AC"
	flightNumberMin    = 100
	flightNumberMax    = 999

	// flightNumberAttemptsPerValue bounds rejection sampling of flight numbers.
	flightNumberAttemptsPerValue = 1000
)

type airportPair struct {
	origin      string
	destination string
}

// routePairCount is the number of ordered pairs without self-pairs.
func routePairCount(airports int) int {
	return airports * (airports - 1)
}

// uniqueRoutePairs draws n distinct ordered (origin, destination) pairs
// with origin != destination.
func uniqueRoutePairs(g *DataGenerator, airports []string, n int) ([]airportPair, error) {
	if n > routePairCount(len(airports)) {
		return nil, fmt.Errorf("%w: %d routes requested but only %d airport pairs exist",
			ErrInvalidConfig, n, routePairCount(len(airports)))
	}

	pairs := make([]airportPair, 0, routePairCount(len(airports)))
	for _, o := range airports {
		for _, d := range airports {
			if o != d {
				pairs = append(pairs, airportPair{origin: o, destination: d})
			}
		}
	}

	g.rand.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})
	return pairs[:n], nil
}

func flightNumberSpace() int {
	return flightNumberMax - flightNumberMin + 1
}

// uniqueFlightNumbers collects n distinct flight numbers by rejection
// sampling. It gives up after a bounded number of draws.
func uniqueFlightNumbers(g *DataGenerator, n int) ([]string, error) {
	if n > flightNumberSpace() {
		return nil, fmt.Errorf("%w: %d flights requested but only %d flight numbers exist",
			ErrInvalidConfig, n, flightNumberSpace())
	}

	used := make(map[string]bool, n)
	numbers := make([]string, 0, n)
	maxAttempts := n * flightNumberAttemptsPerValue

	for attempts := 0; len(numbers) < n; attempts++ {
		if attempts >= maxAttempts {
			return nil, fmt.Errorf("%w: gave up after %d draws with %d of %d flight numbers",
				ErrInvalidConfig, attempts, len(numbers), n)
		}
		num := fmt.Sprintf("%s%d", flightNumberPrefix, g.IntBetween(flightNumberMin, flightNumberMax))
		if used[num] {
			continue
		}
		used[num] = true
		numbers = append(numbers, num)
	}
	return numbers, nil
}
