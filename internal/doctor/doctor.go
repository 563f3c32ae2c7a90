// Package doctor runs readiness diagnostics for config, PulseAudio, and notifications.
package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rbright/sinkswitch/internal/audio"
	"github.com/rbright/sinkswitch/internal/config"
	"github.com/rbright/sinkswitch/internal/toggle"
)

// Check is one doctor assertion result.
type Check struct {
	Name    string
	Pass    bool
	Message string
}

// Report is the full doctor output contract.
type Report struct {
	Checks []Check
}

// OK returns true when all checks pass.
func (r Report) OK() bool {
	for _, check := range r.Checks {
		if !check.Pass {
			return false
		}
	}
	return true
}

// String renders the report as user-facing text output.
func (r Report) String() string {
	var b strings.Builder
	for _, check := range r.Checks {
		status := "OK"
		if !check.Pass {
			status = "FAIL"
		}
		b.WriteString(fmt.Sprintf("[%s] %s: %s\n", status, check.Name, check.Message))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Run executes environment/config/runtime checks for a loaded config.
func Run(ctx context.Context, cfg config.Loaded) Report {
	checks := []Check{configCheck(cfg)}

	client, err := audio.Connect()
	if err != nil {
		checks = append(checks, Check{Name: "pulse", Pass: false, Message: err.Error()})
	} else {
		defer client.Close()
		sinks, sinksErr := client.Sinks(ctx)
		if sinksErr != nil {
			checks = append(checks, Check{Name: "pulse", Pass: false, Message: sinksErr.Error()})
		} else {
			checks = append(checks, Check{Name: "pulse", Pass: true, Message: fmt.Sprintf("%d sinks visible", len(sinks))})
			checks = append(checks, sinkChecks(cfg.Config, sinks)...)
		}
	}

	checks = append(checks, notificationBusCheck())
	return Report{Checks: checks}
}

// configCheck reports where config came from.
func configCheck(cfg config.Loaded) Check {
	message := fmt.Sprintf("loaded %q", cfg.Path)
	if !cfg.Exists {
		message = fmt.Sprintf("%q not found; built-in defaults in effect", cfg.Path)
	}
	return Check{Name: "config", Pass: true, Message: message}
}

// sinkChecks validates both device filters against live sinks.
func sinkChecks(cfg config.Config, sinks []audio.Sink) []Check {
	checks := make([]Check, 0, 3)

	sinkA, errA := resolveCheck(&checks, "device_a", cfg.DeviceA.Filter, sinks)
	sinkB, errB := resolveCheck(&checks, "device_b", cfg.DeviceB.Filter, sinks)

	if errA == nil && errB == nil {
		if sinkA.Name == sinkB.Name {
			checks = append(checks, Check{
				Name:    "devices.distinct",
				Pass:    false,
				Message: fmt.Sprintf("both filters resolve to %q; the toggle would be a no-op", sinkA.Name),
			})
		} else {
			checks = append(checks, Check{Name: "devices.distinct", Pass: true, Message: "filters resolve to distinct sinks"})
		}
	}

	return checks
}

func resolveCheck(checks *[]Check, name, filter string, sinks []audio.Sink) (audio.Sink, error) {
	sink, err := toggle.Resolve(sinks, filter)
	if err != nil {
		*checks = append(*checks, Check{Name: name, Pass: false, Message: err.Error()})
		return audio.Sink{}, err
	}
	*checks = append(*checks, Check{Name: name, Pass: true, Message: fmt.Sprintf("filter %q resolves to %q", filter, sink.Name)})
	return sink, nil
}

// notificationBusCheck looks for a session bus to deliver notifications on.
func notificationBusCheck() Check {
	if strings.TrimSpace(os.Getenv("DBUS_SESSION_BUS_ADDRESS")) != "" {
		return Check{Name: "notify.bus", Pass: true, Message: "DBUS_SESSION_BUS_ADDRESS is set"}
	}
	if runtimeDir := strings.TrimSpace(os.Getenv("XDG_RUNTIME_DIR")); runtimeDir != "" {
		busPath := filepath.Join(runtimeDir, "bus")
		if _, err := os.Stat(busPath); err == nil {
			return Check{Name: "notify.bus", Pass: true, Message: fmt.Sprintf("session bus at %s", busPath)}
		}
	}
	return Check{Name: "notify.bus", Pass: false, Message: "no session bus found; notifications will fail"}
}
