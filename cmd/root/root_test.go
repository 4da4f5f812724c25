package root_test

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/bank-statement/cmd/root"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "bank-statement", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "QFX/OFX and CSV bank statements")
	assert.Contains(t, root.Cmd.Long, "normalizes every entry")
	assert.NotNil(t, root.Cmd.RunE)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.NotNil(t, root.Cmd.PersistentPostRunE)
}

func TestRootCommand_Flags(t *testing.T) {
	root.Init()
	root.Init()

	tests := []struct {
		name      string
		shorthand string
	}{
		{"input", "i"},
		{"output", "o"},
		{"format", "f"},
		{"validate", "v"},
		{"output-format", ""},
		{"config", ""},
		{"log-level", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := root.Cmd.PersistentFlags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
		})
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0600))

	cfg, err := root.LoadConfig(root.CommonFlags{
		ConfigFile:   path,
		LogLevel:     "debug",
		OutputFormat: "json",
		Validate:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Parse.Validate)
}

func TestLoadConfig_InvalidOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: info\n"), 0600))

	_, err := root.LoadConfig(root.CommonFlags{ConfigFile: path, OutputFormat: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestGetLogger_BeforeSetup(t *testing.T) {
	assert.NotNil(t, root.GetLogger())
}
