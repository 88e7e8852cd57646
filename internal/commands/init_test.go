package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/stmt2csv/internal/config"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "stmt2csv-test-*")
	if err != nil {
		panic(err)
	}

	binaryPath = filepath.Join(tmpDir, "stmt2csv")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/stmt2csv")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		_ = os.RemoveAll(tmpDir)
		panic("failed to build binary: " + err.Error())
	}

	code := m.Run()
	_ = os.RemoveAll(tmpDir)
	os.Exit(code)
}

func runStmt2csv(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestInit_WritesConfig(t *testing.T) {
	dir := t.TempDir()
	out, err := runStmt2csv(t, "init", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, config.FileName)

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestInit_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "new", "project")
	_, err := runStmt2csv(t, "init", dir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
}

func TestInit_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("layout: mine\n"), 0o644))

	out, err := runStmt2csv(t, "init", dir)
	require.Error(t, err)
	assert.Contains(t, out, "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "layout: mine\n", string(data))

	_, err = runStmt2csv(t, "init", dir, "--force")
	require.NoError(t, err)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Layout)
}

func TestVersion(t *testing.T) {
	out, err := runStmt2csv(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "stmt2csv version dev")
}
