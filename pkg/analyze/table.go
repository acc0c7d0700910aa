package analyze

import "fmt"

// FrequencyTable counts occurrences of a bounded category. Slot i
// holds the count for category i; slots below lo are never written.
type FrequencyTable struct {
	name   string
	counts []uint64
	lo     int
}

func newTable(name string, size, lo int) FrequencyTable {
	return FrequencyTable{name: name, counts: make([]uint64, size), lo: lo}
}

func newHourTable() FrequencyTable {
	return newTable("hour", 24, 0)
}

// Legacy tables keep the historical sizes (31 days, 12 months, both
// indexed directly), so day 31 and December are out of range there.
func newDayTable(legacy bool) FrequencyTable {
	if legacy {
		return newTable("day", 31, 1)
	}
	return newTable("day", 32, 1)
}

func newMonthTable(legacy bool) FrequencyTable {
	if legacy {
		return newTable("month", 12, 1)
	}
	return newTable("month", 13, 1)
}

func (t *FrequencyTable) Add(v int) error {
	if v < t.lo || v >= len(t.counts) {
		return fmt.Errorf("%s %d not in [%d, %d]: %w", t.name, v, t.lo, len(t.counts)-1, ErrOutOfRange)
	}
	t.counts[v]++
	return nil
}

// Count returns the count for category v, or 0 outside the table.
func (t FrequencyTable) Count(v int) uint64 {
	if v < 0 || v >= len(t.counts) {
		return 0
	}
	return t.counts[v]
}

func (t FrequencyTable) Total() uint64 {
	var total uint64
	for _, c := range t.counts {
		total += c
	}
	return total
}

// Len is the number of slots, including the unused ones below Lo.
func (t FrequencyTable) Len() int {
	return len(t.counts)
}

// Lo is the lowest valid category.
func (t FrequencyTable) Lo() int {
	return t.lo
}

func (t FrequencyTable) clone() FrequencyTable {
	c := t
	c.counts = append([]uint64(nil), t.counts...)
	return c
}

// Busiest returns the category with the highest count, scanning
// upwards from seed. Only a strictly higher count replaces the current
// candidate, so ties go to the lowest index.
func (t FrequencyTable) Busiest(seed int) int {
	best := seed
	for i := seed + 1; i < len(t.counts); i++ {
		if t.counts[i] > t.counts[best] {
			best = i
		}
	}
	return best
}

// Quietest is Busiest with the comparison reversed.
func (t FrequencyTable) Quietest(seed int) int {
	best := seed
	for i := seed + 1; i < len(t.counts); i++ {
		if t.counts[i] < t.counts[best] {
			best = i
		}
	}
	return best
}

// BusiestWindow returns the first slot of the width-wide run of slots
// with the highest sum. The running best starts at a sum of 0 at slot
// 0, so an all-zero table yields 0.
func (t FrequencyTable) BusiestWindow(width int) int {
	best := 0
	var bestSum uint64
	for start := 0; start+width <= len(t.counts); start++ {
		var sum uint64
		for _, c := range t.counts[start : start+width] {
			sum += c
		}
		if sum > bestSum {
			best, bestSum = start, sum
		}
	}
	return best
}

// Buckets lists the valid categories with their counts.
func (t FrequencyTable) Buckets() []Bucket {
	buckets := make([]Bucket, 0, len(t.counts)-t.lo)
	for i := t.lo; i < len(t.counts); i++ {
		buckets = append(buckets, Bucket{Key: i, Count: t.counts[i]})
	}
	return buckets
}
