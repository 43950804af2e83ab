package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"villagejoin/internal/diagnostic"
)

func TestDiagnostics(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core))

	var d diagnostic.Diagnostics
	d.AddWarning(diagnostic.CodeUnparseable, "no match", "boundary", "嘉義市東區各里平地、山地原住民")
	d.AddInfo(diagnostic.CodeResidual, "skipped summary row", "income", "合計")

	log.Diagnostics(d)

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "no match", entries[0].Message)
	assert.Equal(t, "嘉義市東區各里平地、山地原住民", entries[0].ContextMap()["raw"])
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
}

func TestWith(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := FromZap(zap.New(core)).With("stage", "merge")

	log.Info("merged", "joined", 3)
	log.Debug("hidden")

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, "merge", entries[0].ContextMap()["stage"])
	assert.Equal(t, int64(3), entries[0].ContextMap()["joined"])
}

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"dev", "prod"} {
		log, err := New(mode)
		require.NoError(t, err)
		require.NotNil(t, log)
	}

	Nop().Info("discarded")
}
