package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LevelFallback(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("debug").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("chatty").GetLevel())
}

func TestLogError_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput("info", &buf)

	LogError(l, "registration", "Approve", "save", map[string]string{"id": "r1"}, errors.New("boom"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "boom", line["msg"])
	assert.Equal(t, "registration", line["module"])
	assert.Equal(t, "Approve", line["funcName"])
	assert.Equal(t, "save", line["context"])
	assert.Equal(t, map[string]any{"id": "r1"}, line["data"])
	assert.Equal(t, "error", line["level"])
}

func TestLogError_NilErrorIsSilent(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput("info", &buf)
	LogError(l, "m", "f", "c", nil, nil)
	assert.Zero(t, buf.Len())
}
