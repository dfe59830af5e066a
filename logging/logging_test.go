package logging

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupLoggingDisabledWithoutFile(t *testing.T) {
	cleanup, err := SetupLogging("")
	require.NoError(t, err)
	defer cleanup()

	require.False(t, IsDebugMode())
}

func TestSetupLoggingWritesLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := SetupLogging(path)
	require.NoError(t, err)
	require.True(t, IsDebugMode())

	Infof("dialog %s opened", "key_1")
	Logger{}.Printf("dialog %s failed", "key_2")
	cleanup()
	log.SetOutput(os.Stderr)

	require.False(t, IsDebugMode())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	require.True(t, strings.Contains(out, "INFO dialog key_1 opened"), out)
	require.True(t, strings.Contains(out, "ERROR dialog key_2 failed"), out)
}
