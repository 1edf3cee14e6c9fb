package main

import (
	"meosgen/internal/config"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInputs(t *testing.T, directory string) (string, string) {
	typedefs := filepath.Join(directory, "types.h")
	functions := filepath.Join(directory, "functions.h")
	require.NoError(t, os.WriteFile(typedefs, []byte("typedef int64 TimestampTz;\n"), 0644))
	require.NoError(t, os.WriteFile(functions, []byte("extern bool meos_initialize(const char *tz_str);\nextern void meos_finish(void);\n"), 0644))
	return typedefs, functions
}

func TestRunWritesArtifacts(t *testing.T) {
	directory := t.TempDir()
	typedefs, functions := writeInputs(t, directory)
	output := filepath.Join(directory, "functions.java")
	goOutput := filepath.Join(directory, "meos.go")

	cfg, err := config.Load([]string{"-typedefs", typedefs, "-functions", functions, "-output", output, "-go-output", goOutput})
	require.NoError(t, err)
	require.True(t, run(cfg))

	java, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(java), "public static boolean meos_initialize(byte[] tz_str) {")

	goBindings, err := os.ReadFile(goOutput)
	require.NoError(t, err)
	assert.Contains(t, string(goBindings), "func MeosFinish() {")

	first := java
	require.True(t, run(cfg))
	second, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRunTreatsMissingInputsAsEmpty(t *testing.T) {
	directory := t.TempDir()
	output := filepath.Join(directory, "functions.java")

	cfg, err := config.Load([]string{"-typedefs", filepath.Join(directory, "none.h"), "-functions", filepath.Join(directory, "none.h"), "-output", output})
	require.NoError(t, err)
	require.True(t, run(cfg))

	java, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(java), "public interface MeosLibrary {")
}

func TestRunFailsWhenOutputCannotBeWritten(t *testing.T) {
	directory := t.TempDir()
	typedefs, functions := writeInputs(t, directory)

	cfg, err := config.Load([]string{"-typedefs", typedefs, "-functions", functions, "-output", filepath.Join(directory, "missing", "functions.java")})
	require.NoError(t, err)

	assert.False(t, run(cfg))
}
