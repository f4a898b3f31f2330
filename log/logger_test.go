package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logcomm "github.com/TopiaNetwork/signer/log/common"
)

func TestCreateMainLogger(t *testing.T) {
	log, err := CreateMainLogger(logcomm.DebugLevel, JSONFormat, StdErrOutput, "")
	require.NoError(t, err)
	log.Debug("TestCreateMainLogger ok")
	log.Infof("TestCreateMainLogger ok i=%d, str=%s", 100, "TestCreate")

	log.UpdateLoggerLevel(logcomm.InfoLevel)
	log.Debug("TestCreateMainLogger ok after update")
}

func TestCreateWriterLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log, err := CreateWriterLogger(logcomm.InfoLevel, JSONFormat, &buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "info", entry["level"])
}

func TestCreateModuleLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := CreateWriterLogger(logcomm.DebugLevel, JSONFormat, &buf)
	require.NoError(t, err)

	ml := CreateModuleLogger(logcomm.InfoLevel, "Wallet", log)
	ml = WithField(ml, "identity", "identity1")
	ml.Debug("dropped by module level")
	ml.Info("module logger ok")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "Wallet", entry["module"])
	assert.Equal(t, "identity1", entry["identity"])
}

func TestFileOutput(t *testing.T) {
	file := filepath.Join(t.TempDir(), "signer.log")
	log, err := CreateMainLogger(logcomm.InfoLevel, TextFormat, FileLogOutput, file)
	require.NoError(t, err)
	log.Info("written to file")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")

	_, err = CreateMainLogger(logcomm.InfoLevel, TextFormat, FileLogOutput, "")
	assert.Error(t, err)
}

func TestParsers(t *testing.T) {
	f, err := ParseLogFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, JSONFormat, f)

	o, err := ParseLogOutput("file")
	require.NoError(t, err)
	assert.Equal(t, FileLogOutput, o)

	l, err := logcomm.ParseLogLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, logcomm.WarnLevel, l)

	_, err = logcomm.ParseLogLevel("loud")
	assert.Error(t, err)
}

func TestCreateNopLogger(t *testing.T) {
	CreateNopLogger().Error("nothing happens")
}
