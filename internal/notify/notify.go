// Package notify raises best-effort desktop notifications for routing changes.
//
// Failures here are cosmetic: callers log and discard them so a missing
// notification daemon never affects exit status or an applied routing change.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/rbright/sinkswitch/internal/config"
)

// Desktop sends notifications through the freedesktop notification bus.
type Desktop struct {
	cfg config.NotifyConfig
}

// NewDesktop creates a notifier from config.
func NewDesktop(cfg config.NotifyConfig) *Desktop {
	return &Desktop{cfg: cfg}
}

// DeviceChanged announces the newly active output device.
func (d *Desktop) DeviceChanged(label, icon string) error {
	return d.send("Changed audio sink", "New audio sink is "+label, icon)
}

// NoMatch announces a filter that matched no device.
func (d *Desktop) NoMatch(filter string) error {
	return d.send("Audio sink unchanged", fmt.Sprintf("No device found with name %q", filter), "")
}

func (d *Desktop) send(title, body, icon string) error {
	if !d.cfg.Enable {
		return nil
	}

	originalAppName := beeep.AppName
	beeep.AppName = d.cfg.AppName
	defer func() {
		beeep.AppName = originalAppName
	}()

	if err := beeep.Notify(title, body, icon); err != nil {
		return fmt.Errorf("desktop notify: %w", err)
	}
	return nil
}
