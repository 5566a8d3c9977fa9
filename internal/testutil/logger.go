// Package testutil provides shared test helpers for shirtsearch packages.
package testutil

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// Logger returns a Zap logger that writes through tb.Log, so engine output
// only shows up for failing or verbose tests.
func Logger(tb testing.TB) *zap.Logger {
	return zaptest.NewLogger(tb, zaptest.Level(zap.DebugLevel))
}
