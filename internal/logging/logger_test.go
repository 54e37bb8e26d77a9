package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund-ledger/internal/config/configs"
)

func TestJSONHandler(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, configs.Logger{Level: "info", Format: "json"})
	logger := slog.New(h)
	logger.Debug("hidden")
	logger.Info("shown", "campaign_id", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.EqualValues(t, 3, rec["campaign_id"])
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.log")
	logger, closer := New(configs.Logger{Level: "info", Format: "text", File: path, MaxSizeMB: 1})
	logger.Info("written to file")
	require.NoError(t, closer.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "written to file")
}
