package balance

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/soundbal/balance-tray/internal/endpoint"
)

// UnknownDevice is returned by InterfaceName when the endpoint identifier
// cannot be resolved.
const UnknownDevice = "Unknown Device"

// Controller owns the default output endpoint and adjusts its per-channel
// volume. One Controller per process. All endpoint reads and writes are
// serialized behind a single mutex, including writes from the 8D oscillator,
// so a manual set racing an oscillator step cannot interleave channels.
type Controller struct {
	sys endpoint.System
	dev endpoint.Device
	log zerolog.Logger

	mu sync.Mutex // serializes endpoint access

	oscMu       sync.Mutex // guards oscillator start/stop transitions
	running     atomic.Bool
	oscStop     chan struct{}
	oscDone     chan struct{}
	oscInterval time.Duration
	oscCap      atomic.Int32 // percent multiplier applied to oscillator samples
}

// New acquires the default output device and its volume control. A missing
// device or failed activation is fatal: the error wraps
// endpoint.ErrUnavailable and no Controller is returned.
func New(sys endpoint.System, log zerolog.Logger) (*Controller, error) {
	dev, err := sys.DefaultDevice()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire default output device: %w", err)
	}

	c := &Controller{sys: sys, dev: dev, log: log}
	c.oscCap.Store(100)
	return c, nil
}

// SetBalance applies a new left/right balance, writing the left channel
// scalar before the right.
func (c *Controller) SetBalance(i Intensity) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.dev.SetChannelScalar(endpoint.ChannelLeft, float32(i.Left)/100); err != nil {
		return fmt.Errorf("failed to set left channel: %w", err)
	}
	if err := c.dev.SetChannelScalar(endpoint.ChannelRight, float32(i.Right)/100); err != nil {
		return fmt.Errorf("failed to set right channel: %w", err)
	}
	return nil
}

// GetBalance reads the current left/right balance as percentages. Scalars
// are rounded half away from zero (math.Round).
func (c *Controller) GetBalance() (Intensity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	left, err := c.dev.GetChannelScalar(endpoint.ChannelLeft)
	if err != nil {
		return Intensity{}, fmt.Errorf("failed to get left channel: %w", err)
	}
	right, err := c.dev.GetChannelScalar(endpoint.ChannelRight)
	if err != nil {
		return Intensity{}, fmt.Errorf("failed to get right channel: %w", err)
	}

	return NewIntensity(
		int(math.Round(float64(left)*100)),
		int(math.Round(float64(right)*100)),
	), nil
}

// InterfaceName returns the friendly name of the default output endpoint.
// It never fails: an unresolvable endpoint ID degrades to "Unknown Device",
// and a failed or empty enumeration lookup degrades to the raw endpoint ID.
func (c *Controller) InterfaceName() string {
	id, err := c.dev.ID()
	if err != nil {
		return UnknownDevice
	}

	devices, err := c.sys.ListDevices()
	if err == nil {
		for _, d := range devices {
			if d.ID == id {
				return d.Name
			}
		}
	}

	return id
}

// Close stops the oscillator if it is running and releases the device handle.
func (c *Controller) Close() error {
	c.Stop8D()

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dev.Close()
}
