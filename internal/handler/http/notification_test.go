package http

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// deadlineRecorder is a recorder whose connection refuses deadline changes.
type deadlineRecorder struct {
	*httptest.ResponseRecorder
	err error
}

func (d *deadlineRecorder) SetWriteDeadline(time.Time) error {
	return d.err
}

func captureDebugLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestClearWriteDeadline_LogsFailure(t *testing.T) {
	logs := captureDebugLogs(t)

	clearWriteDeadline(&deadlineRecorder{ResponseRecorder: httptest.NewRecorder(), err: errors.New("connection hijacked")})

	assert.Contains(t, logs.String(), "failed to clear stream write deadline")
	assert.Contains(t, logs.String(), "connection hijacked")
}

func TestClearWriteDeadline_SilentWhenUnsupported(t *testing.T) {
	logs := captureDebugLogs(t)

	clearWriteDeadline(httptest.NewRecorder())
	clearWriteDeadline(&deadlineRecorder{ResponseRecorder: httptest.NewRecorder()})

	assert.Empty(t, logs.String())
}
