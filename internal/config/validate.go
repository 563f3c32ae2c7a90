package config

import (
	"fmt"
	"strings"
)

// Validate enforces config invariants and returns non-fatal warnings.
func Validate(cfg Config) ([]Warning, error) {
	warnings := make([]Warning, 0)

	if strings.TrimSpace(cfg.DeviceA.Filter) == "" {
		return nil, fmt.Errorf("device_a.filter must not be empty")
	}
	if strings.TrimSpace(cfg.DeviceB.Filter) == "" {
		return nil, fmt.Errorf("device_b.filter must not be empty")
	}
	if strings.EqualFold(strings.TrimSpace(cfg.DeviceA.Filter), strings.TrimSpace(cfg.DeviceB.Filter)) {
		return nil, fmt.Errorf("device_a.filter and device_b.filter must differ")
	}
	if strings.TrimSpace(cfg.DeviceA.Label) == "" {
		return nil, fmt.Errorf("device_a.label must not be empty")
	}
	if strings.TrimSpace(cfg.DeviceB.Label) == "" {
		return nil, fmt.Errorf("device_b.label must not be empty")
	}

	fallback := strings.ToLower(strings.TrimSpace(cfg.Toggle.Fallback))
	if fallback != "a" && fallback != "b" {
		return nil, fmt.Errorf("toggle.fallback must be one of: a, b")
	}

	if cfg.Notify.Enable && strings.TrimSpace(cfg.Notify.AppName) == "" {
		return nil, fmt.Errorf("notify.app_name must not be empty when notify.enable=true")
	}

	if strings.TrimSpace(cfg.DeviceA.Icon) == "" {
		warnings = append(warnings, Warning{Message: "device_a.icon is empty; notifications will use the server default icon"})
	}
	if strings.TrimSpace(cfg.DeviceB.Icon) == "" {
		warnings = append(warnings, Warning{Message: "device_b.icon is empty; notifications will use the server default icon"})
	}

	return warnings, nil
}
