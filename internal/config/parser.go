package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads key=value configuration content and applies it over base.
//
// Lines are `key = value`; keys are dotted (`device_a.filter`), values may be
// double-quoted, `#` starts a comment. Unknown keys are rejected with their
// line number.
func Parse(content string, base Config) (Config, []Warning, error) {
	cfg := base

	for i, raw := range strings.Split(content, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return Config{}, nil, fmt.Errorf("line %d: expected key = value", lineNo)
		}

		key = strings.TrimSpace(key)
		value = unquote(strings.TrimSpace(value))

		if err := applyKey(&cfg, key, value); err != nil {
			return Config{}, nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	warnings, err := Validate(cfg)
	if err != nil {
		return Config{}, nil, err
	}
	return cfg, warnings, nil
}

// applyKey assigns one parsed key/value pair into cfg.
func applyKey(cfg *Config, key, value string) error {
	switch key {
	case "device_a.filter":
		cfg.DeviceA.Filter = value
	case "device_a.label":
		cfg.DeviceA.Label = value
	case "device_a.icon":
		cfg.DeviceA.Icon = value
	case "device_b.filter":
		cfg.DeviceB.Filter = value
	case "device_b.label":
		cfg.DeviceB.Label = value
	case "device_b.icon":
		cfg.DeviceB.Icon = value
	case "toggle.fallback":
		cfg.Toggle.Fallback = strings.ToLower(value)
	case "toggle.move_streams":
		parsed, err := parseBool(key, value)
		if err != nil {
			return err
		}
		cfg.Toggle.MoveStreams = parsed
	case "notify.enable":
		parsed, err := parseBool(key, value)
		if err != nil {
			return err
		}
		cfg.Notify.Enable = parsed
	case "notify.app_name":
		cfg.Notify.AppName = value
	default:
		return fmt.Errorf("unknown key %q", key)
	}
	return nil
}

func parseBool(key, value string) (bool, error) {
	parsed, err := strconv.ParseBool(strings.ToLower(value))
	if err != nil {
		return false, fmt.Errorf("%s expects true or false, got %q", key, value)
	}
	return parsed, nil
}

// unquote strips one level of surrounding double quotes when present.
func unquote(value string) string {
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		return value[1 : len(value)-1]
	}
	return value
}
