package endpoint

import "errors"

// ErrUnavailable is returned when no default audio output device exists or
// the endpoint volume interface cannot be activated on it.
var ErrUnavailable = errors.New("audio endpoint unavailable")

// Channel indices as the platform numbers them.
const (
	ChannelLeft  = 0
	ChannelRight = 1
)

// DeviceInfo identifies one render endpoint known to the platform.
type DeviceInfo struct {
	ID   string
	Name string
}

// Device is an open handle to an output endpoint's per-channel volume control.
type Device interface {
	SetChannelScalar(channel int, scalar float32) error
	GetChannelScalar(channel int) (float32, error)
	ID() (string, error)
	Close() error
}

// System is the platform audio subsystem as the controller sees it.
type System interface {
	DefaultDevice() (Device, error)
	ListDevices() ([]DeviceInfo, error)
	Close() error
}

// New returns the platform audio system binding.
func New() (System, error) {
	return newSystem()
}
