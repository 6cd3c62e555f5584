package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProdWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("prod", &buf)

	log.Debug("hidden")
	log.Info("point charged", "user_id", 1, "amount", 100)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "point charged", entry["msg"])
	assert.Equal(t, "point-ledger", entry["service"])
	assert.EqualValues(t, 100, entry["amount"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_DevWritesDebugText(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("dev", &buf)

	log.Debug("lock acquired", "user_id", 5)

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, `msg="lock acquired"`)
	assert.Contains(t, out, "user_id=5")
}
