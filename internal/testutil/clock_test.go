package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	c := NewFixedClock(start)

	assert.Equal(t, start, c.Now())
	assert.Equal(t, start, c.Now(), "Now() must not advance the clock")

	c.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), c.Now())

	c.Set(start)
	assert.Equal(t, start, c.Now())
}

func TestStaticIntn(t *testing.T) {
	intn := StaticIntn(42)

	assert.Equal(t, 42, intn(1000))
	assert.Equal(t, 42, intn(7))
}
