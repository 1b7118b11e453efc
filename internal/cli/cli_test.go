package cli

import (
	"bytes"
	"path/filepath"
	"testing"
)

// execute runs the root command with an isolated config and state dir,
// returning the combined output.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	full := append([]string{
		"--config", filepath.Join(dir, "no-config.yaml"),
		"--state-dir", filepath.Join(dir, "state"),
	}, args...)
	cmd.SetArgs(full)

	err := cmd.Execute()
	return out.String(), err
}
