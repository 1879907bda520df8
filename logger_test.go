package glint

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopHandlerDisabled(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, h.Enabled(context.Background(), level))
	}
	assert.NoError(t, h.Handle(context.Background(), slog.Record{}))
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	Logger().Info("hello", "n", 1)
	assert.True(t, strings.Contains(buf.String(), "hello"))

	SetLogger(nil)
	buf.Reset()
	Logger().Info("silent")
	assert.Empty(t, buf.String())
}
