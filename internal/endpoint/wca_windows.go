//go:build windows

package endpoint

import (
	"fmt"

	"github.com/go-ole/go-ole"
	"github.com/moutend/go-wca/pkg/wca"
)

// wcaSystem binds to Windows Core Audio through go-wca. COM is initialized
// once for the lifetime of the system handle and torn down on Close.
type wcaSystem struct {
	enumerator *wca.IMMDeviceEnumerator
}

func newSystem() (System, error) {
	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		return nil, fmt.Errorf("failed to initialize COM: %w", err)
	}

	var enumerator *wca.IMMDeviceEnumerator
	if err := wca.CoCreateInstance(wca.CLSID_MMDeviceEnumerator, 0, wca.CLSCTX_ALL, wca.IID_IMMDeviceEnumerator, &enumerator); err != nil {
		ole.CoUninitialize()
		return nil, fmt.Errorf("failed to create device enumerator: %w", err)
	}

	return &wcaSystem{enumerator: enumerator}, nil
}

func (s *wcaSystem) DefaultDevice() (Device, error) {
	var mmd *wca.IMMDevice
	if err := s.enumerator.GetDefaultAudioEndpoint(wca.ERender, wca.EConsole, &mmd); err != nil {
		return nil, fmt.Errorf("%w: no default render endpoint: %v", ErrUnavailable, err)
	}

	var volume *wca.IAudioEndpointVolume
	if err := mmd.Activate(wca.IID_IAudioEndpointVolume, wca.CLSCTX_ALL, nil, &volume); err != nil {
		mmd.Release()
		return nil, fmt.Errorf("%w: endpoint volume activation failed: %v", ErrUnavailable, err)
	}

	return &wcaDevice{device: mmd, volume: volume}, nil
}

func (s *wcaSystem) ListDevices() ([]DeviceInfo, error) {
	var collection *wca.IMMDeviceCollection
	if err := s.enumerator.EnumAudioEndpoints(wca.ERender, wca.DEVICE_STATE_ACTIVE, &collection); err != nil {
		return nil, fmt.Errorf("failed to enumerate render endpoints: %w", err)
	}
	defer collection.Release()

	var count uint32
	if err := collection.GetCount(&count); err != nil {
		return nil, fmt.Errorf("failed to count render endpoints: %w", err)
	}

	devices := make([]DeviceInfo, 0, count)
	for i := uint32(0); i < count; i++ {
		var mmd *wca.IMMDevice
		if err := collection.Item(i, &mmd); err != nil {
			continue
		}
		info, err := describeDevice(mmd)
		mmd.Release()
		if err != nil {
			continue
		}
		devices = append(devices, info)
	}

	return devices, nil
}

func describeDevice(mmd *wca.IMMDevice) (DeviceInfo, error) {
	var id string
	if err := mmd.GetId(&id); err != nil {
		return DeviceInfo{}, fmt.Errorf("failed to read device ID: %w", err)
	}

	var store *wca.IPropertyStore
	if err := mmd.OpenPropertyStore(wca.STGM_READ, &store); err != nil {
		return DeviceInfo{}, fmt.Errorf("failed to open property store: %w", err)
	}
	defer store.Release()

	var value wca.PROPVARIANT
	if err := store.GetValue(&wca.PKEY_Device_FriendlyName, &value); err != nil {
		return DeviceInfo{}, fmt.Errorf("failed to read friendly name: %w", err)
	}

	return DeviceInfo{ID: id, Name: value.String()}, nil
}

func (s *wcaSystem) Close() error {
	s.enumerator.Release()
	ole.CoUninitialize()
	return nil
}

type wcaDevice struct {
	device *wca.IMMDevice
	volume *wca.IAudioEndpointVolume
}

func (d *wcaDevice) SetChannelScalar(channel int, scalar float32) error {
	if err := d.volume.SetChannelVolumeLevelScalar(uint32(channel), scalar, nil); err != nil {
		return fmt.Errorf("failed to set channel %d scalar: %w", channel, err)
	}
	return nil
}

func (d *wcaDevice) GetChannelScalar(channel int) (float32, error) {
	var level float32
	if err := d.volume.GetChannelVolumeLevelScalar(uint32(channel), &level); err != nil {
		return 0, fmt.Errorf("failed to get channel %d scalar: %w", channel, err)
	}
	return level, nil
}

func (d *wcaDevice) ID() (string, error) {
	var id string
	if err := d.device.GetId(&id); err != nil {
		return "", fmt.Errorf("failed to read endpoint ID: %w", err)
	}
	return id, nil
}

func (d *wcaDevice) Close() error {
	d.volume.Release()
	d.device.Release()
	return nil
}
