// SPDX-License-Identifier: MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLogLevel_Zap(t *testing.T) {
	cases := []struct {
		in   LogLevel
		want zapcore.Level
	}{
		{LogLevelDebug, zapcore.DebugLevel},
		{"trace", zapcore.DebugLevel},
		{LogLevelInfo, zapcore.InfoLevel},
		{LogLevelWarn, zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{LogLevelError, zapcore.ErrorLevel},
		{"bogus", zapcore.ErrorLevel},
	}
	for _, tc := range cases {
		t.Run(tc.in.String(), func(t *testing.T) {
			require.Equal(t, tc.want, tc.in.Zap().Level())
		})
	}
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger(LogLevelWarn)
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zapcore.InfoLevel))
	require.True(t, log.Core().Enabled(zapcore.WarnLevel))
}
