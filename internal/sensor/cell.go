package sensor

import (
	"math"
	"sync/atomic"
	"time"
)

// Cell is a single-slot, last-value-wins holder for the latest reading.
// It is written by one background source and read by the frame loop.
type Cell struct {
	bits    atomic.Uint64
	updated atomic.Int64 // unix nanos of the last accepted write
	writes  atomic.Uint64
}

// NewCell creates a cell holding zero.
func NewCell() *Cell {
	return &Cell{}
}

// Store replaces the current value.
func (c *Cell) Store(v float64) {
	c.bits.Store(math.Float64bits(v))
	c.updated.Store(time.Now().UnixNano())
	c.writes.Add(1)
}

// Load returns the most recent value.
func (c *Cell) Load() float64 {
	return math.Float64frombits(c.bits.Load())
}

// Accept parses a raw line and stores it when valid.
// Returns false for malformed or out-of-range input, leaving the cell untouched.
func (c *Cell) Accept(line string, max float64) bool {
	v, ok := ParseReading(line, max)
	if !ok {
		return false
	}
	c.Store(v)
	return true
}

// Writes returns how many values have been stored.
func (c *Cell) Writes() uint64 {
	return c.writes.Load()
}

// LastUpdate returns when the cell was last written, or zero.
func (c *Cell) LastUpdate() time.Time {
	ns := c.updated.Load()
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns)
}
