// SPDX-License-Identifier: MIT

package logger_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/taxasum/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	l, err := logger.New(logger.Config{Level: "debug", Encoding: "json"})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = logger.New(logger.DefaultConfig())
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))

	_, err = logger.New(logger.Config{Level: "chatty"})
	require.Error(t, err)
}

func TestInit_KeepsPreviousOnError(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	prev := zap.New(core)
	logger.Set(prev)

	require.Error(t, logger.Init(logger.Config{Level: "chatty"}))
	assert.Same(t, prev, logger.Get())
}

func TestWithContext(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger.Set(zap.New(core))

	ctx := context.WithValue(context.Background(), logger.CommandKey, "summarize")
	ctx = context.WithValue(ctx, logger.InputKey, "otu_table.tsv")
	logger.WithContext(ctx).Info("loaded")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "summarize", fields["command"])
	assert.Equal(t, "otu_table.tsv", fields["input"])
}
