//go:build integration

package audio

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSinksIntegration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	client, err := Connect()
	require.NoError(t, err)
	defer client.Close()

	sinks, err := client.Sinks(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, sinks)

	defaultSink, err := client.DefaultSink(ctx)
	require.NoError(t, err)
	require.True(t, defaultSink.Default)
}
