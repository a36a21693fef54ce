package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{"debug", true, true},
		{"INFO", false, true},
		{"error", false, false},
		{"bogus", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(&buf, tt.level)
			l.Debug("d %d", 1)
			l.Info("i %d", 2)
			l.Error("e %d", 3)

			out := buf.String()
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("DEBUG: ")), out)
			assert.Equal(t, tt.wantInfo, bytes.Contains(buf.Bytes(), []byte("INFO: i 2")), out)
			assert.Contains(t, out, "ERROR: ")
			assert.Contains(t, out, "e 3")
		})
	}
}

func TestStd(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "info")
	std := l.Std()
	if assert.NotNil(t, std) {
		std.Printf("hello")
		assert.Contains(t, buf.String(), "INFO: hello")
	}
	assert.Nil(t, New(&buf, "error").Std())
	assert.Nil(t, NewDiscard().Std())
}
