// api/logging/logger_test.go
package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	logger "github.com/muralehq/murale/api/logging"
)

func TestInitLogger(t *testing.T) {
	dir := t.TempDir()

	logger.InitLogger(dir)
	assert.NotNil(t, logger.Log)

	_, err := os.Stat(filepath.Join(dir, "murale.log"))
	assert.NoError(t, err)

	logger.Info("logger initialized")
	logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "murale.log"))
	assert.NoError(t, err)
	assert.Contains(t, string(data), "logger initialized")
}
