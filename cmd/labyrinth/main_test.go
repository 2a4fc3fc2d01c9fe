package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCLI(t, "")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "Usage:")

	code, stdout, _ := runCLI(t, "", "help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "labyrinth generate")

	code, _, stderr = runCLI(t, "", "explode")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, `unknown command "explode"`)
}

func TestRun_Generate(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", "generate", "-size", "11", "-players", "1", "-seed", "3", "-log-level", "error")
	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 11+2)
	for _, row := range lines[:11] {
		assert.Len(t, row, 22)
	}
	assert.Contains(t, lines[11], "seed 3, regions 1")
	assert.True(t, strings.HasPrefix(lines[12], "player 1 start"))
}

func TestRun_GenerateDeterministic(t *testing.T) {
	_, a, _ := runCLI(t, "", "generate", "-size", "9", "-players", "1", "-seed", "8", "-layout")
	_, b, _ := runCLI(t, "", "generate", "-size", "9", "-players", "1", "-seed", "8", "-layout")
	assert.Equal(t, a, b)
}

func TestRun_GenerateConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.hcl")
	require.NoError(t, os.WriteFile(path, []byte("maze {\n  size = 4\n}\n"), 0o600))

	code, _, stderr := runCLI(t, "", "generate", "-config", path)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "size 4 is below 5")

	// A flag overrides the file.
	code, _, stderr = runCLI(t, "", "generate", "-config", path, "-size", "9", "-players", "1", "-seed", "2")
	assert.Equal(t, 0, code, stderr)
}

func TestRun_GenerateBadFlag(t *testing.T) {
	code, _, _ := runCLI(t, "", "generate", "-players", "nine")
	assert.Equal(t, 2, code)

	code, _, stderr := runCLI(t, "", "generate", "-log-format", "xml")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "log format")
}

func TestRun_Validate(t *testing.T) {
	valid := "##########\n" +
		"##@1A1B1!1\n" +
		"##      ##\n" +
		"##@2A2  !2\n" +
		"##########\n"
	code, stdout, _ := runCLI(t, valid, "validate")
	assert.Equal(t, 0, code)
	assert.Equal(t, "valid\n", stdout)

	broken := strings.Replace(valid, "!2", "  ", 1)
	code, stdout, _ = runCLI(t, broken, "validate")
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "error: Player 2 has no finish position")
}

func TestRun_ValidatePathsFromFile(t *testing.T) {
	walled := "##########/" +
		"##@1##!1##/" +
		"##########/" +
		"##########/" +
		"##########"
	path := filepath.Join(t.TempDir(), "level.txt")
	require.NoError(t, os.WriteFile(path, []byte(walled), 0o600))

	code, _, _ := runCLI(t, "", "validate", "-file", path)
	assert.Equal(t, 0, code)

	code, stdout, _ := runCLI(t, "", "validate", "-file", path, "-paths")
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "Player 1 cannot reach finish (3,1) from start (1,1)")
}

func TestRun_ValidateErrors(t *testing.T) {
	code, _, stderr := runCLI(t, "####/###", "validate")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "parse layout")

	code, _, stderr = runCLI(t, "", "validate", "-file", filepath.Join(t.TempDir(), "none.txt"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "read layout")
}

func TestNormalizeLayout(t *testing.T) {
	assert.Equal(t, "##  /@1!1", normalizeLayout("##  \r\n@1!1\n"))
	assert.Equal(t, "##/##", normalizeLayout("##/##"))
}
