// Package sdlback translates SDL input events into back signals: the
// controller B button, the Escape key, and the AC Back key Android-style
// devices report.
package sdlback

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Config selects which SDL inputs count as a back signal. Leaving both
// lists empty selects the defaults (AC Back, Escape, controller B).
type Config struct {
	Keys    []sdl.Keycode // Keyboard keys treated as back
	Buttons []uint8       // Controller buttons treated as back
}

func (c Config) withDefaults() Config {
	if len(c.Keys) == 0 && len(c.Buttons) == 0 {
		c.Keys = []sdl.Keycode{sdl.K_AC_BACK, sdl.K_ESCAPE}
		c.Buttons = []uint8{uint8(sdl.CONTROLLER_BUTTON_B)}
	}
	return c
}

// Translator recognizes back inputs inside an application-owned SDL event
// loop. Call Process on each polled event; it invokes the trigger and
// reports true when the event was a back signal.
type Translator struct {
	cfg     Config
	trigger func()
}

// NewTranslator creates a Translator that invokes trigger for each back
// input it recognizes.
func NewTranslator(cfg Config, trigger func()) *Translator {
	return &Translator{
		cfg:     cfg.withDefaults(),
		trigger: trigger,
	}
}

// Process inspects one SDL event. Key repeats and releases are ignored so
// holding the button fires a single signal.
func (t *Translator) Process(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return false
		}
		for _, key := range t.cfg.Keys {
			if e.Keysym.Sym == key {
				t.trigger()
				return true
			}
		}

	case *sdl.ControllerButtonEvent:
		if e.Type != sdl.CONTROLLERBUTTONDOWN {
			return false
		}
		for _, button := range t.cfg.Buttons {
			if e.Button == button {
				t.trigger()
				return true
			}
		}
	}

	return false
}

// Bind returns an installer suitable for indietro.Options.Bind. It
// registers a persistent SDL event watch, so back inputs are recognized
// regardless of which component currently owns the event loop. The watch
// observes events without consuming them.
func Bind(cfg Config) func(trigger func()) {
	return func(trigger func()) {
		translator := NewTranslator(cfg, trigger)
		sdl.AddEventWatchFunc(func(event sdl.Event, _ interface{}) bool {
			translator.Process(event)
			return true
		}, nil)
	}
}
