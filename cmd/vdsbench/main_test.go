package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	directory := t.TempDir()
	logFile := filepath.Join(directory, "vdsbench.log")
	configFile := filepath.Join(directory, "config.yaml")

	require.NoError(t, os.WriteFile(configFile, []byte(`
workload:
  kinds: [queue, orderedmap]
  size: 4
logger:
  level: debug
`), 0o600))

	t.Setenv("VDS_WORKLOAD_SIZE", "16")

	require.NoError(t, run(context.Background(), []string{
		"--config", configFile,
		"--workload.iterations=2",
		"--workload.kinds=queue,sort",
		"--logger.outputPaths", logFile,
	}))

	logs, err := os.ReadFile(logFile)
	require.NoError(t, err)

	// the command line wins over the file
	require.Contains(t, string(logs), "queue: 64 operations")
	require.Contains(t, string(logs), "sort: 32 operations")
	require.NotContains(t, string(logs), "orderedmap:")

	// the level from the file is applied
	require.Contains(t, string(logs), "Parameters loaded")
}

func TestRun_MissingConfigFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")

	require.Error(t, run(context.Background(), []string{"--config", missing}))
}

func TestRun_InvalidParameters(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "vdsbench.log")

	require.Error(t, run(context.Background(), []string{"--workload.workers=0", "--logger.outputPaths", logFile}))
	require.Error(t, run(context.Background(), []string{"--workload.kinds=heap", "--logger.outputPaths", logFile}))
}

func TestRun_Help(t *testing.T) {
	require.NoError(t, run(context.Background(), []string{"--help"}))
}
