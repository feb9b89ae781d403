// Package testutil provides shared test utilities for redpen tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jfenske/redpen/internal/config"
	"github.com/jfenske/redpen/internal/constants"
)

// SetupTestConfig creates a temporary config directory with test configuration.
// Returns a cleanup function that should be deferred.
func SetupTestConfig(t *testing.T, configContent string) func() {
	t.Helper()

	tmpDir := t.TempDir()
	os.Setenv(constants.EnvConfigDir, tmpDir)

	if configContent != "" {
		configPath := filepath.Join(tmpDir, constants.ConfigFileName)
		if err := os.WriteFile(configPath, []byte(configContent), constants.FileMode); err != nil {
			t.Fatal(err)
		}
	}

	config.Reset()
	config.Init()

	return func() {
		os.Unsetenv(constants.EnvConfigDir)
		config.Reset()
	}
}

// MinimalTestConfig disables everything except the Swift and SQL profiles.
const MinimalTestConfig = `
[profiles.rust]
enabled = false

[profiles.powershell]
enabled = false
`
