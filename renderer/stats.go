package renderer

import "time"

type FrameStats struct {
	// Number of completed render ticks.
	Ticks uint64

	// Number of times accumulated samples were discarded.
	Resets uint64

	// Frame index used by the last dispatch.
	FrameIndex uint32

	// Largest frame index dispatched in any accumulation epoch. A reset tick
	// and the tick after it both dispatch index 1, so an epoch that starts
	// with a reset spans one tick more than its peak index.
	PeakFrameIndex uint32

	// Total time spent in the render loop and time spent in the last tick.
	RenderTime time.Duration
	LastTick   time.Duration
}

// Average time per tick.
func (s FrameStats) MeanTickTime() time.Duration {
	if s.Ticks == 0 {
		return 0
	}
	return s.RenderTime / time.Duration(s.Ticks)
}
