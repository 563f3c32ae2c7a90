package audio

import (
	"testing"

	pulseproto "github.com/jfreymuth/pulse/proto"
	"github.com/stretchr/testify/require"
)

var _ Controller = (*Pulse)(nil)

func TestConnectFailsWhenPulseUnavailable(t *testing.T) {
	t.Setenv("PULSE_SERVER", "unix:/tmp/definitely-missing-pulse-server")
	_, err := Connect()
	require.Error(t, err)
}

func TestSinkStateString(t *testing.T) {
	require.Equal(t, "running", sinkStateString(0))
	require.Equal(t, "idle", sinkStateString(1))
	require.Equal(t, "suspended", sinkStateString(2))
	require.Equal(t, "unknown(99)", sinkStateString(99))
}

func TestSinkAvailableWithoutPorts(t *testing.T) {
	require.False(t, sinkAvailable(nil))
	require.True(t, sinkAvailable(&pulseproto.GetSinkInfoReply{}))
}
