package audio

import (
	"context"
	"errors"
	"fmt"

	"github.com/jfreymuth/pulse"
	pulseproto "github.com/jfreymuth/pulse/proto"
)

// Pulse implements Controller against a live PulseAudio server.
type Pulse struct {
	client *pulse.Client
}

// Connect opens a native-protocol connection to the Pulse server.
func Connect() (*Pulse, error) {
	client, err := pulse.NewClient(
		pulse.ClientApplicationName("sinkswitch"),
		pulse.ClientApplicationIconName("audio-card"),
	)
	if err != nil {
		return nil, fmt.Errorf("connect pulse server: %w", err)
	}
	return &Pulse{client: client}, nil
}

// Close releases the server connection.
func (p *Pulse) Close() {
	p.client.Close()
}

// Sinks returns all output devices with default/state metadata.
func (p *Pulse) Sinks(_ context.Context) ([]Sink, error) {
	defaultSink, err := p.client.DefaultSink()
	if err != nil {
		return nil, fmt.Errorf("read default sink: %w", err)
	}
	defaultID := defaultSink.ID()

	var sinkInfos pulseproto.GetSinkInfoListReply
	if err := p.client.RawRequest(&pulseproto.GetSinkInfoList{}, &sinkInfos); err != nil {
		return nil, fmt.Errorf("list sinks: %w", err)
	}

	sinks := make([]Sink, 0, len(sinkInfos))
	for _, info := range sinkInfos {
		if info == nil {
			continue
		}
		sinks = append(sinks, Sink{
			Index:       info.SinkIndex,
			Name:        info.SinkName,
			Description: info.Device,
			State:       sinkStateString(info.State),
			Available:   sinkAvailable(info),
			Default:     info.SinkName == defaultID,
		})
	}
	return sinks, nil
}

// DefaultSink returns the sink the server currently routes output to.
func (p *Pulse) DefaultSink(ctx context.Context) (Sink, error) {
	sinks, err := p.Sinks(ctx)
	if err != nil {
		return Sink{}, err
	}
	for _, sink := range sinks {
		if sink.Default {
			return sink, nil
		}
	}
	return Sink{}, errors.New("pulse reported no default sink")
}

// SetDefaultSink makes the named sink the server-wide default output.
func (p *Pulse) SetDefaultSink(_ context.Context, name string) error {
	if err := p.client.RawRequest(&pulseproto.SetDefaultSink{SinkName: name}, nil); err != nil {
		return fmt.Errorf("set default sink %q: %w", name, err)
	}
	return nil
}

// PlaybackStreams lists active sink inputs with their owning application.
func (p *Pulse) PlaybackStreams(_ context.Context) ([]Stream, error) {
	var inputInfos pulseproto.GetSinkInputInfoListReply
	if err := p.client.RawRequest(&pulseproto.GetSinkInputInfoList{}, &inputInfos); err != nil {
		return nil, fmt.Errorf("list playback streams: %w", err)
	}

	streams := make([]Stream, 0, len(inputInfos))
	for _, info := range inputInfos {
		if info == nil {
			continue
		}
		stream := Stream{
			Index:       info.SinkInputIndex,
			SinkIndex:   info.SinkIndex,
			Application: info.MediaName,
		}
		if info.Properties != nil {
			if app, ok := info.Properties["application.name"]; ok {
				stream.Application = app.String()
			}
		}
		streams = append(streams, stream)
	}
	return streams, nil
}

// MoveStream reattaches one playback stream to the target sink.
func (p *Pulse) MoveStream(_ context.Context, stream Stream, target Sink) error {
	err := p.client.RawRequest(&pulseproto.MoveSinkInput{
		SinkInputIndex: stream.Index,
		DeviceIndex:    pulseproto.Undefined,
		DeviceName:     target.Name,
	}, nil)
	if err != nil {
		return fmt.Errorf("move stream %d to %q: %w", stream.Index, target.Name, err)
	}
	return nil
}

// sinkStateString maps Pulse sink state constants to human-readable values.
func sinkStateString(state uint32) string {
	switch state {
	case 0:
		return "running"
	case 1:
		return "idle"
	case 2:
		return "suspended"
	default:
		return fmt.Sprintf("unknown(%d)", state)
	}
}

// sinkAvailable maps Pulse sink port availability to a simple boolean.
func sinkAvailable(sink *pulseproto.GetSinkInfoReply) bool {
	if sink == nil {
		return false
	}
	if len(sink.Ports) == 0 {
		return true
	}
	for _, port := range sink.Ports {
		if port.Name != sink.ActivePortName {
			continue
		}
		// PulseAudio values: unknown=0, no=1, yes=2.
		return port.Available == 0 || port.Available == 2
	}
	return true
}
