// Package evdevback delivers back signals from a dedicated hardware
// button exposed through the Linux input subsystem (/dev/input/eventN).
// Most handheld custom firmwares report the back button as KEY_BACK on
// the first event device.
package evdevback

import (
	"sync"
	"time"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/indietro/pkg/indietro"
	"github.com/BrandonKowalski/indietro/pkg/indietro/constants"
	"github.com/BrandonKowalski/indietro/pkg/indietro/internal"
)

// Config describes the back-button input device.
type Config struct {
	DevicePath string        // Input device path, e.g. /dev/input/event1
	ButtonCode evdev.EvCode  // Key code reported for the back button
	CoolDown   time.Duration // Minimum interval between two accepted presses
}

func (c Config) withDefaults() Config {
	if c.DevicePath == "" {
		c.DevicePath = constants.DefaultBackDevicePath
	}
	if c.ButtonCode == 0 {
		c.ButtonCode = constants.DefaultBackButtonCode
	}
	if c.CoolDown == 0 {
		c.CoolDown = constants.DefaultCoolDown
	}
	return c
}

// Watcher reads the back-button device on its own goroutine and invokes
// the trigger for each accepted press.
type Watcher struct {
	dev    *evdev.InputDevice
	closed atomic.Bool
	wg     sync.WaitGroup
}

// Watch opens the configured device and starts watching it. The returned
// Watcher keeps running until Close or a device read error.
func Watch(cfg Config, trigger func()) (*Watcher, error) {
	cfg = cfg.withDefaults()

	dev, err := evdev.Open(cfg.DevicePath)
	if err != nil {
		return nil, indietro.NewInfrastructureError("open_device", err)
	}

	w := &Watcher{dev: dev}
	w.wg.Add(1)
	go w.run(cfg, trigger)
	return w, nil
}

func (w *Watcher) run(cfg Config, trigger func()) {
	defer w.wg.Done()

	log := internal.GetInternalLogger()
	var lastFire time.Time

	for {
		event, err := w.dev.ReadOne()
		if err != nil {
			if !w.closed.Load() {
				log.Error("back button device read failed", "device", cfg.DevicePath, "error", err)
			}
			return
		}

		// Only key-down events for the configured code count; Value 2
		// is auto-repeat, which must not fire a second signal.
		if event.Type != evdev.EV_KEY || event.Code != cfg.ButtonCode || event.Value != 1 {
			continue
		}

		if time.Since(lastFire) < cfg.CoolDown {
			continue
		}
		lastFire = time.Now()

		trigger()
	}
}

// Close stops the watcher and releases the device. Idempotent.
func (w *Watcher) Close() {
	if !w.closed.CompareAndSwap(false, true) {
		return
	}
	w.dev.Close()
	w.wg.Wait()
}

// Bind returns an installer suitable for indietro.Options.Bind. A device
// that cannot be opened is logged and skipped rather than crashing the
// host application; desktop development machines rarely have the button.
func Bind(cfg Config) func(trigger func()) {
	cfg = cfg.withDefaults()
	return func(trigger func()) {
		if _, err := Watch(cfg, trigger); err != nil {
			internal.GetInternalLogger().Error("failed to bind back button device", "device", cfg.DevicePath, "error", err)
		}
	}
}
