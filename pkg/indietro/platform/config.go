// Package platform selects and configures the source of back signals.
// The binding is described by a small TOML file so the same binary can
// run on different devices:
//
//	driver = "evdev"
//	device = "/dev/input/event1"
//	button_code = 158
//	cooldown_ms = 200
//
// or, for SDL-driven builds:
//
//	driver = "sdl"
//	keys = ["AC Back", "Escape"]
//	buttons = ["b"]
package platform

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/holoplot/go-evdev"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/indietro/pkg/indietro"
	"github.com/BrandonKowalski/indietro/pkg/indietro/constants"
	"github.com/BrandonKowalski/indietro/pkg/indietro/platform/evdevback"
	"github.com/BrandonKowalski/indietro/pkg/indietro/platform/sdlback"
)

// Driver identifies a back-signal source implementation.
type Driver string

const (
	DriverEvdev Driver = "evdev" // Dedicated hardware button via /dev/input
	DriverSDL   Driver = "sdl"   // SDL keyboard/controller events
)

// Config describes how back signals reach the stack on this device.
type Config struct {
	Driver Driver `toml:"driver"`

	// evdev driver fields
	Device     string `toml:"device"`
	ButtonCode uint16 `toml:"button_code"`
	CoolDownMS int    `toml:"cooldown_ms"`

	// sdl driver fields; names as understood by SDL_GetKeyFromName and
	// SDL_GameControllerGetButtonFromString
	Keys    []string `toml:"keys"`
	Buttons []string `toml:"buttons"`
}

// DefaultConfig returns the evdev binding most handheld firmwares need.
func DefaultConfig() Config {
	return Config{
		Driver:     DriverEvdev,
		Device:     constants.DefaultBackDevicePath,
		ButtonCode: constants.DefaultBackButtonCode,
		CoolDownMS: int(constants.DefaultCoolDown / time.Millisecond),
	}
}

// Load reads a binding config file. The INDIETRO_BINDING_CONFIG
// environment variable overrides path when set.
func Load(path string) (Config, error) {
	if env := os.Getenv(constants.BindingConfigEnvVar); env != "" {
		path = env
	}

	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, indietro.NewInfrastructureError("load_config", err)
	}
	return cfg, nil
}

// Source builds the indietro.Options.Bind installer for the configured
// driver.
func (c Config) Source() (func(trigger func()), error) {
	switch c.Driver {
	case DriverEvdev:
		return evdevback.Bind(evdevback.Config{
			DevicePath: c.Device,
			ButtonCode: evdev.EvCode(c.ButtonCode),
			CoolDown:   time.Duration(c.CoolDownMS) * time.Millisecond,
		}), nil

	case DriverSDL:
		sdlCfg := sdlback.Config{}
		for _, name := range c.Keys {
			key := sdl.GetKeyFromName(name)
			if key == sdl.K_UNKNOWN {
				return nil, indietro.NewInfrastructureError("resolve_key",
					fmt.Errorf("unknown SDL key name %q", name))
			}
			sdlCfg.Keys = append(sdlCfg.Keys, key)
		}
		for _, name := range c.Buttons {
			button := sdl.GameControllerGetButtonFromString(name)
			if button == sdl.CONTROLLER_BUTTON_INVALID {
				return nil, indietro.NewInfrastructureError("resolve_button",
					fmt.Errorf("unknown SDL controller button %q", name))
			}
			sdlCfg.Buttons = append(sdlCfg.Buttons, uint8(button))
		}
		return sdlback.Bind(sdlCfg), nil

	default:
		return nil, indietro.NewInfrastructureError("select_driver",
			fmt.Errorf("unknown driver %q", c.Driver))
	}
}
