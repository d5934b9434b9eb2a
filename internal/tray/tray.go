package tray

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/getlantern/systray"
	"github.com/rs/zerolog"

	"github.com/soundbal/balance-tray/internal/balance"
	"github.com/soundbal/balance-tray/internal/config"
)

type UI struct {
	ctrl    *balance.Controller
	cfg     *config.Config
	version string
	commit  string
	log     zerolog.Logger

	// Menu items
	mDevice  *systray.MenuItem
	m8D      *systray.MenuItem
	mPresets *systray.MenuItem
	mCap     *systray.MenuItem

	presetItems []*systray.MenuItem
}

// Balance presets offered in place of sliders; a tray menu has no continuous
// control, so these cover the common positions.
var presets = []struct {
	label string
	value balance.Intensity
}{
	{"Center (50/50)", balance.NewIntensity(50, 50)},
	{"Full Left (100/0)", balance.NewIntensity(100, 0)},
	{"Full Right (0/100)", balance.NewIntensity(0, 100)},
	{"Both Full (100/100)", balance.NewIntensity(100, 100)},
}

var capOptions = []int{100, 75, 50, 25}

func New(ctrl *balance.Controller, cfg *config.Config, version, commit string, log zerolog.Logger) *UI {
	return &UI{
		ctrl:    ctrl,
		cfg:     cfg,
		version: version,
		commit:  commit,
		log:     log,
	}
}

func (u *UI) Run(ctx context.Context) error {
	systray.Run(u.onReady, u.onExit)
	return nil
}

func (u *UI) onReady() {
	u.updateTitle()
	systray.SetTooltip("Left/right balance control")

	deviceName := u.ctrl.InterfaceName()
	u.mDevice = systray.AddMenuItem(deviceName, "Default output device")
	u.mDevice.Disable()
	mCopyDevice := systray.AddMenuItem("Copy Device Name", "Copy the device name to the clipboard")
	systray.AddSeparator()

	u.m8D = systray.AddMenuItem("Start 8D Mode", "Sweep the balance between the channels")
	u.mCap = systray.AddMenuItem("8D Intensity Cap", "Scale down the sweep amplitude")
	u.buildCapMenu()
	systray.AddSeparator()

	u.mPresets = systray.AddMenuItem("Balance", "Set a fixed balance")
	u.buildPresetMenu()

	systray.AddSeparator()
	mAbout := systray.AddMenuItem("About", "About BalanceTray")
	mQuit := systray.AddMenuItem("Quit", "Exit application")

	// Event loop
	go u.handleEvents(mCopyDevice, mAbout, mQuit)
}

func (u *UI) handleEvents(mCopyDevice, mAbout, mQuit *systray.MenuItem) {
	for {
		select {
		case <-u.m8D.ClickedCh:
			u.toggle8D()
		case <-mCopyDevice.ClickedCh:
			u.copyDeviceName()
		case <-mAbout.ClickedCh:
			u.showAbout()
		case <-mQuit.ClickedCh:
			systray.Quit()
			return
		}
	}
}

func (u *UI) buildPresetMenu() {
	for _, p := range presets {
		item := u.mPresets.AddSubMenuItem(p.label, "")
		u.presetItems = append(u.presetItems, item)

		go func(value balance.Intensity, label string) {
			for {
				<-item.ClickedCh
				if u.ctrl.Running8D() {
					// The oscillator is the only writer while 8D runs.
					continue
				}
				if err := u.ctrl.SetBalance(value); err != nil {
					u.log.Error().Err(err).Str("preset", label).Msg("Failed to apply preset")
					continue
				}
				u.log.Info().Str("preset", label).Msg("Applied balance preset")
			}
		}(p.value, p.label)
	}
}

func (u *UI) buildCapMenu() {
	capItems := make(map[int]*systray.MenuItem)

	for _, pct := range capOptions {
		item := u.mCap.AddSubMenuItem(capLabel(pct), "")
		if pct == u.cfg.Oscillator.CapPercent {
			item.Check()
		}
		capItems[pct] = item

		go func(pct int, menuItem *systray.MenuItem) {
			for {
				<-menuItem.ClickedCh
				// Uncheck all other items
				for p, itm := range capItems {
					if p != pct {
						itm.Uncheck()
					}
				}
				menuItem.Check()
				u.ctrl.Set8DCap(pct)
				u.cfg.Oscillator.CapPercent = pct
				u.cfg.Save()
				u.log.Info().Int("cap", pct).Msg("Changed 8D intensity cap")
			}
		}(pct, item)
	}
}

func (u *UI) toggle8D() {
	if u.ctrl.Running8D() {
		u.ctrl.Stop8D()
		u.m8D.SetTitle("Start 8D Mode")
		u.setPresetsEnabled(true)
	} else {
		u.ctrl.Start8D(u.cfg.Oscillator.RateHz, u.cfg.Oscillator.DepthPercent)
		u.m8D.SetTitle("Stop 8D Mode")
		u.setPresetsEnabled(false)
	}
	u.updateTitle()
}

// setPresetsEnabled keeps manual balance edits out of the oscillator's way.
func (u *UI) setPresetsEnabled(enabled bool) {
	for _, item := range u.presetItems {
		if enabled {
			item.Enable()
		} else {
			item.Disable()
		}
	}
}

func (u *UI) copyDeviceName() {
	name := u.ctrl.InterfaceName()
	if err := clipboard.WriteAll(name); err != nil {
		u.log.Error().Err(err).Msg("Failed to copy device name")
		return
	}
	u.log.Info().Str("device", name).Msg("Copied device name")
}

func (u *UI) showAbout() {
	fmt.Printf("BalanceTray %s (%s)\nLeft/right balance control with 8D mode\n", u.version, u.commit)
}

func (u *UI) onExit() {
	u.ctrl.Stop8D()
}

func (u *UI) updateTitle() {
	systray.SetTitle(titleForState(u.ctrl.Running8D()))
}

func capLabel(percent int) string {
	return fmt.Sprintf("%d%%", percent)
}

// titleForState marks the tray entry while the oscillator sweeps
func titleForState(running bool) string {
	if running {
		return "🎧 🌀"
	}
	return "🎧"
}
