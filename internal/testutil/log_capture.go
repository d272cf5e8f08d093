package testutil

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogCapture is a zap core that keeps every message it receives, with its
// fields flattened to key=value pairs
type LogCapture struct {
	zapcore.LevelEnabler
	mu       sync.Mutex
	messages []string
}

func NewLogCapture(level zapcore.Level) *LogCapture {
	return &LogCapture{
		LevelEnabler: level,
		messages:     make([]string, 0),
	}
}

// NewCapturingLogger returns a logger writing only to a fresh LogCapture
func NewCapturingLogger(level zapcore.Level) (*zap.Logger, *LogCapture) {
	logCapture := NewLogCapture(level)
	return zap.New(logCapture), logCapture
}

func (lc *LogCapture) Enabled(level zapcore.Level) bool {
	return lc.LevelEnabler.Enabled(level)
}

func (lc *LogCapture) With(fields []zapcore.Field) zapcore.Core {
	return lc
}

func (lc *LogCapture) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if lc.Enabled(entry.Level) {
		return checked.AddCore(entry, lc)
	}
	return checked
}

func (lc *LogCapture) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, field := range fields {
		field.AddTo(enc)
	}

	var buf bytes.Buffer
	buf.WriteString(entry.Message)
	for _, field := range fields {
		buf.WriteString(" ")
		buf.WriteString(field.Key)
		buf.WriteString("=")
		buf.WriteString(fmt.Sprintf("%v", enc.Fields[field.Key]))
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()
	lc.messages = append(lc.messages, buf.String())
	return nil
}

func (lc *LogCapture) Sync() error {
	return nil
}

func (lc *LogCapture) GetMessages() []string {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	result := make([]string, len(lc.messages))
	copy(result, lc.messages)
	return result
}

func (lc *LogCapture) Contains(pattern string) bool {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	for _, msg := range lc.messages {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// IndexOf returns the position of the first message containing pattern, or -1
func (lc *LogCapture) IndexOf(pattern string) int {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	for i, msg := range lc.messages {
		if strings.Contains(msg, pattern) {
			return i
		}
	}
	return -1
}
