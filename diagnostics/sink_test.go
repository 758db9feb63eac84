package diagnostics_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ismaili-ziad/GP2/diagnostics"
)

func TestZapSink_Console(t *testing.T) {
	var buf bytes.Buffer
	sink := diagnostics.NewSink(&buf, zap.NewNop())

	sink.Console("hello there")
	require.Equal(t, "hello there\n", buf.String())
}

func TestZapSink_Log(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	sink := diagnostics.NewSink(&bytes.Buffer{}, zap.New(core))

	sink.Log(diagnostics.LevelInfo, "node added", diagnostics.Int("index", 3))
	sink.Log(diagnostics.LevelDebug, "should not appear")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "node added", entries[0].Message)
	require.Len(t, entries[0].Context, 1)
	require.Equal(t, "index", entries[0].Context[0].Key)
}
