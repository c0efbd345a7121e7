package log

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingWriter 항상 쓰기에 실패하는 Writer입니다.
type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

// safeBuffer 동시 쓰기에 안전한 bytes.Buffer입니다.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestEntry(level Level, msg string) *Entry {
	e := logrus.NewEntry(logrus.New())
	e.Level = level
	e.Message = msg
	return e
}

func TestHook_Routing(t *testing.T) {
	tests := []struct {
		level        Level
		wantMain     bool
		wantCritical bool
		wantVerbose  bool
	}{
		{PanicLevel, true, true, false},
		{FatalLevel, true, true, false},
		{ErrorLevel, true, true, false},
		{WarnLevel, true, false, false},
		{InfoLevel, true, false, false},
		{DebugLevel, false, false, true},
		{TraceLevel, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var mainBuf, criticalBuf, verboseBuf, consoleBuf safeBuffer
			h := &hook{
				mainWriter:     &mainBuf,
				criticalWriter: &criticalBuf,
				verboseWriter:  &verboseBuf,
				consoleWriter:  &consoleBuf,
				formatter:      &logrus.TextFormatter{DisableTimestamp: true},
			}

			require.NoError(t, h.Fire(newTestEntry(tt.level, "routed")))

			assert.Equal(t, tt.wantMain, mainBuf.String() != "")
			assert.Equal(t, tt.wantCritical, criticalBuf.String() != "")
			assert.Equal(t, tt.wantVerbose, verboseBuf.String() != "")
			assert.Contains(t, consoleBuf.String(), "routed", "console은 모든 레벨을 기록해야 합니다")
		})
	}
}

func TestHook_WriteFailureDoesNotBlockOtherChannels(t *testing.T) {
	errWrite := errors.New("disk full")
	var mainBuf safeBuffer
	h := &hook{
		mainWriter:     &mainBuf,
		criticalWriter: failingWriter{err: errWrite},
		formatter:      &logrus.TextFormatter{DisableTimestamp: true},
	}

	err := h.Fire(newTestEntry(ErrorLevel, "clock moved backwards"))
	assert.ErrorIs(t, err, errWrite)
	assert.Contains(t, mainBuf.String(), "clock moved backwards")
}

func TestHook_Closed(t *testing.T) {
	var mainBuf safeBuffer
	h := &hook{
		mainWriter: &mainBuf,
		formatter:  &logrus.TextFormatter{},
	}

	require.NoError(t, h.Close())
	require.NoError(t, h.Fire(newTestEntry(InfoLevel, "ignored")))
	assert.Empty(t, mainBuf.String())
	assert.Equal(t, AllLevels, h.Levels())
}

func TestHook_ConcurrentFireAndClose(t *testing.T) {
	var mainBuf safeBuffer
	h := &hook{
		mainWriter: &mainBuf,
		formatter:  &logrus.TextFormatter{},
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = h.Fire(newTestEntry(InfoLevel, "concurrent"))
			}
		}()
	}
	_ = h.Close()
	wg.Wait()

	assert.True(t, h.closed)
}
