package seeder

// IDAllocator hands out 1-based, gapless identifiers per table.
type IDAllocator struct {
	last map[string]int
}

func NewIDAllocator() *IDAllocator {
	return &IDAllocator{last: make(map[string]int)}
}

// Next allocates the next identifier for table.
func (a *IDAllocator) Next(table string) int {
	a.last[table]++
	return a.last[table]
}

// Max returns the highest identifier allocated for table, or 0 if none.
func (a *IDAllocator) Max(table string) int {
	return a.last[table]
}
