// Package audio talks to the PulseAudio server for sink discovery and routing.
package audio

import "context"

// Sink describes one Pulse output device surfaced to sinkswitch.
type Sink struct {
	Index       uint32
	Name        string
	Description string
	State       string
	Available   bool
	Default     bool
}

// Stream is one active playback stream attached to a sink.
type Stream struct {
	Index       uint32
	Application string
	SinkIndex   uint32
}

// Controller is the audio-subsystem contract consumed by toggle and doctor.
// The Pulse implementation is the only production one; tests inject fakes.
type Controller interface {
	Sinks(ctx context.Context) ([]Sink, error)
	DefaultSink(ctx context.Context) (Sink, error)
	SetDefaultSink(ctx context.Context, name string) error
	PlaybackStreams(ctx context.Context) ([]Stream, error)
	MoveStream(ctx context.Context, stream Stream, target Sink) error
}
