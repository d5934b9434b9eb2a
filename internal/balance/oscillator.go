package balance

import (
	"math"
	"time"
)

const (
	// DefaultRate is the sweep frequency in Hz: one full left-right-left
	// cycle every five seconds.
	DefaultRate = 0.2

	// DefaultDepth is the peak-to-peak sweep, in percent, around the 50/50
	// center.
	DefaultDepth = 80

	// The step interval is derived from the rate so every cycle gets the
	// same number of discrete samples regardless of frequency.
	samplesPerCycle = 50
)

// Start8D begins sweeping the balance sinusoidally between the channels in a
// background goroutine. rateHz must be positive. Starting while already
// running is a no-op. While the oscillator runs it should be the only writer;
// the tray enforces that by disabling manual controls.
func (c *Controller) Start8D(rateHz float64, depthPercent int) {
	c.oscMu.Lock()
	defer c.oscMu.Unlock()

	if c.running.Load() {
		return
	}

	c.oscInterval = time.Duration(float64(time.Second) / (rateHz * samplesPerCycle))
	c.oscStop = make(chan struct{})
	c.oscDone = make(chan struct{})
	c.running.Store(true)

	c.log.Info().
		Float64("rate_hz", rateHz).
		Int("depth", depthPercent).
		Int("cap", int(c.oscCap.Load())).
		Msg("Starting 8D mode")

	go c.run(rateHz, depthPercent, c.oscInterval, c.oscStop, c.oscDone)
}

func (c *Controller) run(rateHz float64, depthPercent int, interval time.Duration, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	step := interval.Seconds()
	for t := 0.0; ; t += step {
		select {
		case <-stop:
			return
		default:
		}

		sample := oscillatorSample(t, rateHz, depthPercent, int(c.oscCap.Load()))
		if err := c.SetBalance(sample); err != nil {
			// A single dropped sample is inaudible; keep sweeping.
			c.log.Error().Err(err).Msg("8D sample dropped")
		}

		select {
		case <-stop:
			return
		case <-time.After(interval):
		}
	}
}

// oscillatorSample computes the balance at sweep time t. The channels are
// complementary around the 50/50 center (one panning position, not two
// independent envelopes), scaled by the cap, then truncated. Truncation here
// versus rounding in GetBalance is deliberate; changing either would shift
// the audible sample values.
func oscillatorSample(t, rateHz float64, depthPercent, capPercent int) Intensity {
	v := math.Sin(2 * math.Pi * rateHz * t)
	rawLeft := 50 + v*float64(depthPercent)/2
	rawRight := 100 - rawLeft

	scale := float64(capPercent) / 100
	return NewIntensity(int(rawLeft*scale), int(rawRight*scale))
}

// Stop8D signals the oscillator to stop and waits up to one sample interval
// for the goroutine to exit, then abandons it. The last applied balance stays
// in effect; stopping does not recenter. Stopping while idle is a no-op.
func (c *Controller) Stop8D() {
	c.oscMu.Lock()
	defer c.oscMu.Unlock()

	if !c.running.Load() {
		return
	}
	c.running.Store(false)
	close(c.oscStop)

	select {
	case <-c.oscDone:
	case <-time.After(c.oscInterval):
		c.log.Warn().Msg("8D loop slow to exit, abandoning")
	}

	c.oscStop = nil
	c.oscDone = nil
	c.log.Info().Msg("Stopped 8D mode")
}

// Running8D reports whether the oscillator is active.
func (c *Controller) Running8D() bool {
	return c.running.Load()
}

// Set8DCap clamps percent to [0, 100] and stores it as the multiplier applied
// to every subsequent oscillator sample. Safe to call whether or not the
// oscillator is running.
func (c *Controller) Set8DCap(percent int) {
	c.oscCap.Store(int32(clampPercent(percent)))
}

// Cap8D returns the current oscillator intensity cap in percent.
func (c *Controller) Cap8D() int {
	return int(c.oscCap.Load())
}
