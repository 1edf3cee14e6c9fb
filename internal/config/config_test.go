package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	config, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "tmp/types.h", config.TypedefsPath)
	assert.Equal(t, "tmp/functions.h", config.FunctionsPath)
	assert.Equal(t, "../functions.java", config.OutputPath)
	assert.Equal(t, "meos", config.LibraryName)
	assert.Equal(t, "", config.GoOutputPath)
	assert.Nil(t, config.NativeVersion)
	assert.Equal(t, "", config.Banner())
	assert.Equal(t, slog.LevelInfo, config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
}

func TestLoadPrefersFlagsOverEnvironment(t *testing.T) {
	t.Setenv("MEOSGEN_OUTPUT", "env/functions.java")
	t.Setenv("MEOSGEN_TYPEDEFS", "env/types.h")
	t.Setenv("MEOSGEN_LOG_FORMAT", "json")

	config, err := Load([]string{"-output", "flag/functions.java", "-log-level", "debug"})
	require.NoError(t, err)

	assert.Equal(t, "flag/functions.java", config.OutputPath)
	assert.Equal(t, "env/types.h", config.TypedefsPath)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, slog.LevelDebug, config.Log.Level)
}

func TestLoadNativeVersion(t *testing.T) {
	config, err := Load([]string{"-meos-version", "v1.1"})
	require.NoError(t, err)

	require.NotNil(t, config.NativeVersion)
	assert.Equal(t, "Generated against meos 1.1.0", config.Banner())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := [][]string{
		{"-meos-version", "not-a-version"},
		{"-log-level", "loud"},
		{"-log-format", "xml"},
		{"-library", " "},
		{"-go-output", "meos.go", "-go-package", ""},
		{"-unknown"},
	}

	for _, args := range tests {
		_, err := Load(args)
		assert.Error(t, err, args)
	}
}
