package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := make(map[string]interface{})
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestNewLevels(t *testing.T) {
	var quiet, loud bytes.Buffer

	New(&quiet, false).Debug("hidden")
	New(&loud, true).Debug("shown")

	assert.Empty(t, decodeLines(t, &quiet))

	entries := decodeLines(t, &loud)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["msg"])
	assert.Equal(t, "debug", entries[0]["level"])
	assert.Contains(t, entries[0], "caller")
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	restore := SetLogger(New(&buf, false))
	Logger().Info("swapped")
	restore()
	Logger().Info("not captured")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "swapped", entries[0]["msg"])
}

func TestDurationsFlush(t *testing.T) {
	var buf bytes.Buffer
	var d Durations
	d.Record("parse", 2*time.Millisecond)
	d.Record("build", time.Millisecond)
	require.Len(t, d.Fields(), 2)

	d.Flush(New(&buf, false), "timings", zap.Int("length", 3))
	assert.Empty(t, d)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "timings", entries[0]["msg"])
	assert.Contains(t, entries[0], "parse")
	assert.Contains(t, entries[0], "build")
	assert.EqualValues(t, 3, entries[0]["length"])
}
