package logging

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := New("cvapi", Options{Output: &buf, Location: time.UTC})

	log.Info("cv_created", "cv_id", "abc", "public", true)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["@level"])
	assert.Equal(t, "cv_created", entry["@message"])
	assert.Equal(t, "cvapi", entry["@module"])
	assert.Equal(t, "abc", entry["cv_id"])
	assert.Equal(t, true, entry["public"])
	assert.NotEmpty(t, entry["@timestamp"])
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New("cvapi", Options{Output: &buf, Level: "warn"})

	log.Info("hidden")
	assert.Zero(t, buf.Len())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New("cvapi", Options{Output: &buf, Level: "verbose-ish"})

	log.Debug("hidden")
	log.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
