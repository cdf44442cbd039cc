package logging_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jeondoksi/jeondoksi-cli/internal/logging"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "jeondoksi.log")

	logger, err := logging.New(logging.Config{Level: "debug", OutputPath: path})
	require.NoError(t, err)

	logger.Debug("tracker decision", zap.Int64("boss_id", 3), zap.Bool("damage_pending", true))
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &line))
	assert.Equal(t, "DEBUG", line["level"])
	assert.Equal(t, "tracker decision", line["msg"])
	assert.Equal(t, float64(3), line["boss_id"])
	assert.Contains(t, line, "timestamp")
}

func TestNewInvalidLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")

	logger, err := logging.New(logging.Config{Level: "loud", Encoding: "xml", OutputPath: path})
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
	assert.True(t, logger.Core().Enabled(zap.InfoLevel))
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, logging.OrNop(nil))

	logger := zap.NewExample()
	assert.Same(t, logger, logging.OrNop(logger))
}
