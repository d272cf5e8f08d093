package clock

import "time"

// Clock supplies epoch-millisecond timestamps
type Clock interface {
	NowMillis() int64
}

// MonotonicClock anchors the wall clock once and advances it with the
// runtime's monotonic reading, so successive values never decrease even if
// the system clock is stepped backwards.
type MonotonicClock struct {
	start time.Time
}

func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

func (c *MonotonicClock) NowMillis() int64 {
	return c.start.UnixMilli() + time.Since(c.start).Milliseconds()
}

// FixedClock always returns the same instant. Used in tests.
type FixedClock int64

func (c FixedClock) NowMillis() int64 {
	return int64(c)
}
