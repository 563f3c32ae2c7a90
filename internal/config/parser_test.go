package config

import (
	"strings"
	"testing"
)

func TestParseValidConfig(t *testing.T) {
	input := `
# comment
device_a.filter = "Shure MV7 Analog Stereo"
device_a.label  = "Shure MV7"
device_b.filter = "PCM2704"
device_b.label  = "DAC (PCM2704)"
toggle.fallback = b
toggle.move_streams = false
notify.enable = true
notify.app_name = "sinkswitch"
`

	cfg, _, err := Parse(input, Default())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.DeviceA.Filter != "Shure MV7 Analog Stereo" {
		t.Fatalf("unexpected device_a.filter: %s", cfg.DeviceA.Filter)
	}
	if cfg.DeviceB.Label != "DAC (PCM2704)" {
		t.Fatalf("unexpected device_b.label: %s", cfg.DeviceB.Label)
	}
	if cfg.Toggle.Fallback != "b" {
		t.Fatalf("unexpected toggle.fallback: %s", cfg.Toggle.Fallback)
	}
	if cfg.Toggle.MoveStreams {
		t.Fatal("expected toggle.move_streams=false")
	}
}

func TestParseEmptyContentKeepsDefaults(t *testing.T) {
	cfg, _, err := Parse("", Default())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestParseUnknownKeyFails(t *testing.T) {
	_, _, err := Parse(`foo.bar = 1`, Default())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "unknown key") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseLineNumberOnError(t *testing.T) {
	_, _, err := Parse("\n\nthis is bad", Default())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("expected line number in error, got %v", err)
	}
}

func TestParseBadBoolFails(t *testing.T) {
	_, _, err := Parse(`notify.enable = maybe`, Default())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "true or false") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseEmptyIconWarns(t *testing.T) {
	_, warnings, err := Parse(`device_a.icon = ""`, Default())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(warnings) == 0 {
		t.Fatal("expected warning for empty icon")
	}
	if !strings.Contains(warnings[0].Message, "device_a.icon") {
		t.Fatalf("unexpected warning: %v", warnings[0].Message)
	}
}
