package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"
)

func TestZapForwardsFieldsAndErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := Wrap(zap.New(core))

	log.Debug("collecting answers", map[string]interface{}{"source": "flags"})
	log.Warn("history save failed", map[string]interface{}{"path": "/tmp/h.db"})
	log.Error("render failed", errors.New("boom"), nil)

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "collecting answers", entries[0].Message)
	assert.Equal(t, "flags", entries[0].ContextMap()["source"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[2].ContextMap()["error"])
}

func TestNopDiscards(t *testing.T) {
	log := NewNop()
	log.Info("ignored", map[string]interface{}{"k": 1})
	assert.NoError(t, log.Sync())
}
