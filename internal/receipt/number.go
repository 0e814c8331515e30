package receipt

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Generator produces receipt numbers. A fresh number is generated once
// per session creation and again on every reset after finalize.
type Generator interface {
	Generate() string
}

// DateGenerator produces human-readable, roughly date-sortable receipt
// numbers of the form PREFIX-YYMMDD-NNN, where NNN is a zero-padded
// random value in [0, 999].
//
// The format is deliberately not collision-proof: two numbers generated
// on the same day collide with probability 1/1000. That is adequate for
// a single low-volume register and is documented as an accepted
// limitation rather than checked against history.
type DateGenerator struct {
	prefix string
	now    func() time.Time
	intn   func(int) int
}

// NewDateGenerator creates a generator using wall-clock time and the
// default random source.
func NewDateGenerator(prefix string) *DateGenerator {
	return &DateGenerator{
		prefix: prefix,
		now:    time.Now,
		intn:   rand.Intn,
	}
}

// NewDateGeneratorAt creates a generator with injected time and
// randomness for deterministic tests.
func NewDateGeneratorAt(prefix string, now func() time.Time, intn func(int) int) *DateGenerator {
	return &DateGenerator{prefix: prefix, now: now, intn: intn}
}

// Generate returns the next receipt number.
func (g *DateGenerator) Generate() string {
	t := g.now()
	return fmt.Sprintf("%s-%02d%02d%02d-%03d",
		g.prefix, t.Year()%100, int(t.Month()), t.Day(), g.intn(1000))
}

// FixedGenerator returns predetermined receipt numbers for testing.
//
// This enables deterministic session tests and golden tape comparison.
//
// Thread-safety: safe for concurrent use via internal mutex.
type FixedGenerator struct {
	mu      sync.Mutex
	numbers []string
	idx     int
}

// NewFixedGenerator creates a generator that returns numbers in order.
//
// Example:
//
//	gen := NewFixedGenerator("FSE-240101-001", "FSE-240101-002")
//	gen.Generate() // "FSE-240101-001"
//	gen.Generate() // "FSE-240101-002"
//	gen.Generate() // panic: all numbers exhausted
func NewFixedGenerator(numbers ...string) *FixedGenerator {
	return &FixedGenerator{numbers: numbers}
}

// Generate returns the next predetermined number.
//
// Panics if all numbers have been consumed. This is a fail-fast approach
// to catch test misconfiguration.
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.numbers) {
		panic("FixedGenerator: all numbers exhausted")
	}
	n := g.numbers[g.idx]
	g.idx++
	return n
}
