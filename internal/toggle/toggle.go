// Package toggle decides which sink becomes the default and applies the change.
package toggle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rbright/sinkswitch/internal/audio"
	"github.com/rbright/sinkswitch/internal/config"
)

// NoMatchError reports a device filter that matched no live sink.
type NoMatchError struct {
	Filter string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no sink matches filter %q", e.Filter)
}

// IsNoMatch reports whether err wraps a NoMatchError.
func IsNoMatch(err error) bool {
	var noMatch *NoMatchError
	return errors.As(err, &noMatch)
}

// Result describes one applied routing change.
type Result struct {
	Previous audio.Sink
	Target   audio.Sink
	Label    string
	Icon     string
	// MovedStreams counts playback streams migrated to the new default.
	MovedStreams int
}

// Resolve returns the first sink whose name or description contains filter,
// case-insensitively.
func Resolve(sinks []audio.Sink, filter string) (audio.Sink, error) {
	term := strings.ToLower(strings.TrimSpace(filter))
	if term == "" {
		return audio.Sink{}, &NoMatchError{Filter: filter}
	}
	for _, sink := range sinks {
		if strings.Contains(strings.ToLower(sink.Name), term) ||
			strings.Contains(strings.ToLower(sink.Description), term) {
			return sink, nil
		}
	}
	return audio.Sink{}, &NoMatchError{Filter: filter}
}

// Decide picks the toggle target. current==a flips to b, current==b flips to
// a, and anything else (including a missing default) lands on the configured
// fallback device.
func Decide(current, a, b audio.Sink, fallback string) audio.Sink {
	switch current.Name {
	case a.Name:
		return b
	case b.Name:
		return a
	}
	if strings.EqualFold(strings.TrimSpace(fallback), "b") {
		return b
	}
	return a
}

// Toggler orchestrates sink resolution, the toggle decision, and routing.
type Toggler struct {
	ctl    audio.Controller
	cfg    config.Config
	logger *slog.Logger
}

// New creates a Toggler over an audio controller.
func New(ctl audio.Controller, cfg config.Config, logger *slog.Logger) *Toggler {
	return &Toggler{ctl: ctl, cfg: cfg, logger: logger}
}

// Toggle flips the default sink between the two configured devices.
//
// Both filters must resolve before any routing change is attempted; a filter
// matching nothing aborts with a NoMatchError and the default sink untouched.
func (t *Toggler) Toggle(ctx context.Context) (Result, error) {
	sinks, err := t.ctl.Sinks(ctx)
	if err != nil {
		return Result{}, err
	}

	sinkA, err := Resolve(sinks, t.cfg.DeviceA.Filter)
	if err != nil {
		return Result{}, err
	}
	sinkB, err := Resolve(sinks, t.cfg.DeviceB.Filter)
	if err != nil {
		return Result{}, err
	}

	current := currentDefault(sinks)
	target := Decide(current, sinkA, sinkB, t.cfg.Toggle.Fallback)

	result, err := t.apply(ctx, current, target)
	if err != nil {
		return Result{}, err
	}
	if target.Name == sinkA.Name {
		result.Label = t.cfg.DeviceA.Label
		result.Icon = t.cfg.DeviceA.Icon
	} else {
		result.Label = t.cfg.DeviceB.Label
		result.Icon = t.cfg.DeviceB.Icon
	}
	return result, nil
}

// SetByFilter switches to the first sink matching an ad-hoc filter.
func (t *Toggler) SetByFilter(ctx context.Context, filter string) (Result, error) {
	sinks, err := t.ctl.Sinks(ctx)
	if err != nil {
		return Result{}, err
	}

	target, err := Resolve(sinks, filter)
	if err != nil {
		return Result{}, err
	}

	result, err := t.apply(ctx, currentDefault(sinks), target)
	if err != nil {
		return Result{}, err
	}
	result.Label = t.describe(target)
	result.Icon = t.iconFor(target)
	return result, nil
}

// Next cycles to the sink after the current default in server order, wrapping.
func (t *Toggler) Next(ctx context.Context) (Result, error) {
	sinks, err := t.ctl.Sinks(ctx)
	if err != nil {
		return Result{}, err
	}
	if len(sinks) == 0 {
		return Result{}, errors.New("no sinks available")
	}

	current := currentDefault(sinks)
	target := sinks[0]
	for i, sink := range sinks {
		if sink.Name == current.Name {
			target = sinks[(i+1)%len(sinks)]
			break
		}
	}

	result, err := t.apply(ctx, current, target)
	if err != nil {
		return Result{}, err
	}
	result.Label = t.describe(target)
	result.Icon = t.iconFor(target)
	return result, nil
}

// apply sets the default sink and migrates playback streams when configured.
// Stream migration failures do not undo the routing change; they are logged
// and the change stands.
func (t *Toggler) apply(ctx context.Context, current, target audio.Sink) (Result, error) {
	if err := t.ctl.SetDefaultSink(ctx, target.Name); err != nil {
		return Result{}, err
	}

	result := Result{Previous: current, Target: target}
	if !t.cfg.Toggle.MoveStreams {
		return result, nil
	}

	streams, err := t.ctl.PlaybackStreams(ctx)
	if err != nil {
		t.log("list playback streams failed", err)
		return result, nil
	}
	for _, stream := range streams {
		if err := t.ctl.MoveStream(ctx, stream, target); err != nil {
			t.log("move playback stream failed", err)
			continue
		}
		result.MovedStreams++
	}
	return result, nil
}

// describe maps a sink back to a configured label, or its own description.
func (t *Toggler) describe(sink audio.Sink) string {
	if matches(sink, t.cfg.DeviceA.Filter) {
		return t.cfg.DeviceA.Label
	}
	if matches(sink, t.cfg.DeviceB.Filter) {
		return t.cfg.DeviceB.Label
	}
	if sink.Description != "" {
		return sink.Description
	}
	return sink.Name
}

func (t *Toggler) iconFor(sink audio.Sink) string {
	if matches(sink, t.cfg.DeviceA.Filter) {
		return t.cfg.DeviceA.Icon
	}
	if matches(sink, t.cfg.DeviceB.Filter) {
		return t.cfg.DeviceB.Icon
	}
	return ""
}

func matches(sink audio.Sink, filter string) bool {
	resolved, err := Resolve([]audio.Sink{sink}, filter)
	return err == nil && resolved.Name == sink.Name
}

// currentDefault returns the default sink, or a zero Sink when the server
// reports none; a zero current simply routes the decision to the fallback.
func currentDefault(sinks []audio.Sink) audio.Sink {
	for _, sink := range sinks {
		if sink.Default {
			return sink
		}
	}
	return audio.Sink{}
}

func (t *Toggler) log(message string, err error) {
	if t.logger == nil || err == nil {
		return
	}
	t.logger.Warn(message, "error", err.Error())
}
