package balance

import (
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/soundbal/balance-tray/internal/endpoint"
)

// Mock implementations for testing

type mockDevice struct {
	mu      sync.Mutex
	scalars [2]float32
	order   []int
	writes  int
	id      string
	idErr   error
	setErr  error
}

func (m *mockDevice) SetChannelScalar(channel int, scalar float32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.scalars[channel] = scalar
	m.order = append(m.order, channel)
	m.writes++
	return nil
}

func (m *mockDevice) GetChannelScalar(channel int) (float32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scalars[channel], nil
}

func (m *mockDevice) ID() (string, error) {
	if m.idErr != nil {
		return "", m.idErr
	}
	return m.id, nil
}

func (m *mockDevice) Close() error {
	return nil
}

func (m *mockDevice) writeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

func (m *mockDevice) snapshot() (left, right float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scalars[0], m.scalars[1]
}

type mockSystem struct {
	dev        *mockDevice
	defaultErr error
	devices    []endpoint.DeviceInfo
	listErr    error
}

func (m *mockSystem) DefaultDevice() (endpoint.Device, error) {
	if m.defaultErr != nil {
		return nil, m.defaultErr
	}
	return m.dev, nil
}

func (m *mockSystem) ListDevices() ([]endpoint.DeviceInfo, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.devices, nil
}

func (m *mockSystem) Close() error {
	return nil
}

func newTestController(t *testing.T, sys *mockSystem) *Controller {
	t.Helper()
	c, err := New(sys, zerolog.Nop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c
}

func TestNewFailsWithoutDefaultDevice(t *testing.T) {
	sys := &mockSystem{defaultErr: endpoint.ErrUnavailable}

	c, err := New(sys, zerolog.Nop())
	if c != nil {
		t.Error("expected no controller when the default device is missing")
	}
	if !errors.Is(err, endpoint.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestSetBalanceWritesLeftBeforeRight(t *testing.T) {
	dev := &mockDevice{}
	c := newTestController(t, &mockSystem{dev: dev})

	if err := c.SetBalance(NewIntensity(40, 8)); err != nil {
		t.Fatalf("SetBalance failed: %v", err)
	}

	if len(dev.order) != 2 || dev.order[0] != endpoint.ChannelLeft || dev.order[1] != endpoint.ChannelRight {
		t.Errorf("expected write order [left right], got %v", dev.order)
	}
	if dev.scalars[0] != 0.4 {
		t.Errorf("expected left scalar 0.4, got %f", dev.scalars[0])
	}
	if dev.scalars[1] != 0.08 {
		t.Errorf("expected right scalar 0.08, got %f", dev.scalars[1])
	}
}

func TestSetBalancePropagatesEndpointError(t *testing.T) {
	writeErr := errors.New("endpoint write failed")
	dev := &mockDevice{setErr: writeErr}
	c := newTestController(t, &mockSystem{dev: dev})

	if err := c.SetBalance(NewIntensity(50, 50)); !errors.Is(err, writeErr) {
		t.Errorf("expected wrapped write error, got %v", err)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	dev := &mockDevice{}
	c := newTestController(t, &mockSystem{dev: dev})

	for _, in := range []Intensity{
		{Left: 0, Right: 0},
		{Left: 40, Right: 8},
		{Left: 33, Right: 67},
		{Left: 100, Right: 100},
	} {
		if err := c.SetBalance(in); err != nil {
			t.Fatalf("SetBalance(%v) failed: %v", in, err)
		}
		got, err := c.GetBalance()
		if err != nil {
			t.Fatalf("GetBalance failed: %v", err)
		}
		if got != in {
			t.Errorf("round trip mismatch: set %v, got %v", in, got)
		}
	}
}

func TestInterfaceNameResolvesFriendlyName(t *testing.T) {
	dev := &mockDevice{id: "dev-7"}
	sys := &mockSystem{
		dev: dev,
		devices: []endpoint.DeviceInfo{
			{ID: "dev-3", Name: "HDMI Output"},
			{ID: "dev-7", Name: "Speakers (Realtek High Definition Audio)"},
		},
	}
	c := newTestController(t, sys)

	if got := c.InterfaceName(); got != "Speakers (Realtek High Definition Audio)" {
		t.Errorf("expected friendly name, got %q", got)
	}
}

func TestInterfaceNameFallsBackToUnknownDevice(t *testing.T) {
	dev := &mockDevice{idErr: errors.New("id lookup failed")}
	c := newTestController(t, &mockSystem{dev: dev})

	if got := c.InterfaceName(); got != UnknownDevice {
		t.Errorf("expected %q, got %q", UnknownDevice, got)
	}
}

func TestInterfaceNameFallsBackToRawID(t *testing.T) {
	tests := []struct {
		name string
		sys  *mockSystem
	}{
		{
			name: "enumeration fails",
			sys: &mockSystem{
				dev:     &mockDevice{id: "dev-7"},
				listErr: errors.New("enumeration failed"),
			},
		},
		{
			name: "no matching device",
			sys: &mockSystem{
				dev:     &mockDevice{id: "dev-7"},
				devices: []endpoint.DeviceInfo{{ID: "dev-3", Name: "HDMI Output"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(t, tt.sys)
			if got := c.InterfaceName(); got != "dev-7" {
				t.Errorf("expected raw ID dev-7, got %q", got)
			}
		})
	}
}
