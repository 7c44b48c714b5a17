package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/kristofferme/leader/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductionWritesJSONAtInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, false, "")

	log.Debug("hidden")
	log.Info("pulse logged", "score", 4)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "pulse logged", entry["msg"])
	assert.Equal(t, float64(4), entry["score"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewDevelopmentWritesTextAtDebug(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, true, "")

	log.Debug("timeline rebuilt", "points", 3)

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), `msg="timeline rebuilt"`)
	assert.Contains(t, buf.String(), "points=3")
}
