package pet

import "time"

// Clock reports elapsed whole seconds since an arbitrary epoch. It is
// only used to stamp interaction times, never for tick cadence.
type Clock func() uint32

// MonotonicClock returns a Clock anchored at the moment it is created,
// the host-side equivalent of the device's seconds-since-boot timer.
func MonotonicClock() Clock {
	start := time.Now()
	return func() uint32 {
		return uint32(time.Since(start) / time.Second)
	}
}
