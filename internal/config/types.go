// Package config resolves, parses, validates, and defaults sinkswitch configuration.
package config

// Config is the fully materialized runtime configuration used by sinkswitch.
type Config struct {
	DeviceA DeviceConfig
	DeviceB DeviceConfig
	Toggle  ToggleConfig
	Notify  NotifyConfig
}

// DeviceConfig describes one of the two sinks the toggle alternates between.
type DeviceConfig struct {
	// Filter is matched case-insensitively against sink names and descriptions.
	Filter string
	Label  string
	Icon   string
}

// ToggleConfig controls toggle decision policy.
type ToggleConfig struct {
	// Fallback selects the target ("a" or "b") when the current default
	// matches neither configured device.
	Fallback string
	// MoveStreams migrates active playback streams to the new default sink.
	MoveStreams bool
}

// NotifyConfig controls desktop notification behavior.
type NotifyConfig struct {
	Enable  bool
	AppName string
}

// Warning is a non-fatal parse/validation message.
type Warning struct {
	Line    int
	Message string
}
