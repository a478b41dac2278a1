package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// env holds the directories one test runs homebiz against.
type env struct {
	configDir string
	dataDir   string
}

func newEnv(t *testing.T) env {
	t.Helper()
	t.Setenv("HOMEBIZ_LOG_LEVEL", "")
	t.Setenv("HOMEBIZ_BACKEND", "")
	root := t.TempDir()
	return env{
		configDir: filepath.Join(root, "config"),
		dataDir:   filepath.Join(root, "data"),
	}
}

// run executes homebiz with the env's directories and returns stdout,
// stderr and the exit code.
func (e env) run(t *testing.T, stdin string, args ...string) (string, string, int) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))

	full := append([]string{"--config-dir", e.configDir, "--data-dir", e.dataDir}, args...)
	code := execute(root, full, &errOut)
	return out.String(), errOut.String(), code
}

func TestVersion(t *testing.T) {
	out, _, code := newEnv(t).run(t, "", "version")
	assert.Equal(t, exitSuccess, code)
	assert.Contains(t, out, "homebiz v"+Version)
}

func TestInit(t *testing.T) {
	e := newEnv(t)
	out, stderr, code := e.run(t, "", "init")
	require.Equal(t, exitSuccess, code, stderr)
	assert.Contains(t, out, "homebiz initialized")
	assert.FileExists(t, filepath.Join(e.dataDir, "homebiz.db"))

	data, err := os.ReadFile(filepath.Join(e.configDir, "config.yaml"))
	require.NoError(t, err)
	var cfg configFile
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, "sqlite", cfg.Backend)
	assert.Equal(t, e.dataDir, cfg.DataDir)

	// A second init leaves config.yaml alone.
	_, _, code = e.run(t, "", "init")
	assert.Equal(t, exitSuccess, code)
	again, err := os.ReadFile(filepath.Join(e.configDir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestRun_PersistsBetweenInvocations(t *testing.T) {
	e := newEnv(t)

	out, stderr, code := e.run(t, "", "run", "addcli", "n/Alice", "Tan", "p/91234567", "e/alice@example.com")
	require.Equal(t, exitSuccess, code, stderr)
	assert.Contains(t, out, "New client added: Alice Tan")

	out, stderr, code = e.run(t, "", "run", "listcli")
	require.Equal(t, exitSuccess, code, stderr)
	assert.Contains(t, out, "[clients]")
	assert.Contains(t, out, "  1. Alice Tan; Phone: 91234567")
}

func TestRun_UserErrors(t *testing.T) {
	e := newEnv(t)

	_, stderr, code := e.run(t, "", "run", "bogus")
	assert.Equal(t, exitUserError, code)
	assert.Contains(t, stderr, "Unknown command")

	_, stderr, code = e.run(t, "", "run", "addcli n/Alice")
	assert.Equal(t, exitUserError, code)
	assert.Contains(t, stderr, "Invalid command format!")

	_, _, code = e.run(t, "", "run")
	assert.Equal(t, exitUserError, code)
}

func TestRun_BadConfigIsSystemError(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, os.MkdirAll(e.configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(e.configDir, "config.yaml"), []byte("backend: postgres\n"), 0o644))

	_, stderr, code := e.run(t, "", "run", "listcli")
	assert.Equal(t, exitSysError, code)
	assert.Contains(t, stderr, "unknown backend")
}

func TestRun_LogLevelFlag(t *testing.T) {
	e := newEnv(t)
	_, stderr, code := e.run(t, "", "--log-level", "loud", "run", "listcli")
	assert.Equal(t, exitSysError, code)
	assert.Contains(t, stderr, "unknown log level")
}

func TestShell(t *testing.T) {
	e := newEnv(t)
	input := strings.Join([]string{
		"addsvc t/Manicure du/1 pr/30",
		"",
		"bogus",
		"listsvc",
		"exit",
		"listcli",
	}, "\n") + "\n"

	out, stderr, code := e.run(t, input, "shell")
	require.Equal(t, exitSuccess, code, stderr)
	assert.Contains(t, out, "New service added: SC000")
	assert.Contains(t, out, "  1. SC000")
	assert.Contains(t, out, "Exiting homebiz")
	assert.NotContains(t, out, "[clients]", "input after exit is not read")
	assert.Contains(t, stderr, "Unknown command")
}

func TestShell_LongLine(t *testing.T) {
	e := newEnv(t)
	input := "help" + strings.Repeat(" x", 40_000) + "\n" +
		"addsvc t/Manicure du/1 pr/30\n" +
		"exit\n"

	out, stderr, code := e.run(t, input, "shell")
	require.Equal(t, exitSuccess, code, stderr)
	assert.Contains(t, out, "addcli:")
	assert.Contains(t, out, "New service added: SC000")
}

func TestShell_EndOfInput(t *testing.T) {
	e := newEnv(t)
	_, stderr, code := e.run(t, "listcli\n", "shell")
	assert.Equal(t, exitSuccess, code, stderr)
}

func TestExportImport(t *testing.T) {
	src := newEnv(t)
	_, stderr, code := src.run(t, "", "run", "addcli n/Alice Tan p/91234567 e/alice@example.com")
	require.Equal(t, exitSuccess, code, stderr)
	_, stderr, code = src.run(t, "", "run", "addexp d/Rent v/800 dt/01-10-2026 f/y")
	require.Equal(t, exitSuccess, code, stderr)

	dir := filepath.Join(t.TempDir(), "backup")
	out, stderr, code := src.run(t, "", "export", dir)
	require.Equal(t, exitSuccess, code, stderr)
	assert.Contains(t, out, "Exported 1 clients, 0 services, 1 expenses")

	dst := newEnv(t)
	out, stderr, code = dst.run(t, "", "import", dir)
	require.Equal(t, exitSuccess, code, stderr)
	assert.Contains(t, out, "Imported 1 clients")

	out, stderr, code = dst.run(t, "", "run", "listexp")
	require.Equal(t, exitSuccess, code, stderr)
	assert.Contains(t, out, "Rent")
}

func TestImport_RejectsDuplicates(t *testing.T) {
	e := newEnv(t)
	dir := t.TempDir()
	line := `{"name":"Alice Tan","phone":"91234567","email":"alice@example.com"}` + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clients.jsonl"), []byte(line+line), 0o644))

	_, stderr, code := e.run(t, "", "import", dir)
	assert.Equal(t, exitUserError, code)
	assert.Contains(t, stderr, "duplicate")
}
