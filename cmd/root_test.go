package cmd

import (
	"bytes"
	"testing"

	"github.com/jfenske/redpen/internal/config"
	"github.com/spf13/cobra"
)

// resetGlobalState resets all global flags to their default values
func resetGlobalState() {
	verbose = false
	dryRun = false
	noAuditLog = false
	logFile = ""
	config.Reset()
}

func TestIsVerbose(t *testing.T) {
	tests := []struct {
		name     string
		value    bool
		expected bool
	}{
		{"verbose false", false, false},
		{"verbose true", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobalState()
			verbose = tt.value
			if got := IsVerbose(); got != tt.expected {
				t.Errorf("IsVerbose() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsDryRun(t *testing.T) {
	tests := []struct {
		name     string
		value    bool
		expected bool
	}{
		{"dry-run false", false, false},
		{"dry-run true", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobalState()
			dryRun = tt.value
			if got := IsDryRun(); got != tt.expected {
				t.Errorf("IsDryRun() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRootCmdFlags(t *testing.T) {
	resetGlobalState()

	// Create a fresh root command for testing
	cmd := &cobra.Command{Use: "test"}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Print the evaluation instead of hook JSON")
	cmd.PersistentFlags().BoolVar(&noAuditLog, "no-audit-log", false, "Disable audit logging")
	cmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write debug logs to this file")

	tests := []struct {
		name          string
		args          []string
		expectVerbose bool
		expectDryRun  bool
		expectNoAudit bool
		expectLogFile string
	}{
		{
			name: "no flags",
			args: []string{},
		},
		{
			name:          "verbose short flag",
			args:          []string{"-v"},
			expectVerbose: true,
		},
		{
			name:          "verbose long flag",
			args:          []string{"--verbose"},
			expectVerbose: true,
		},
		{
			name:         "dry-run flag",
			args:         []string{"--dry-run"},
			expectDryRun: true,
		},
		{
			name:          "no-audit-log flag",
			args:          []string{"--no-audit-log"},
			expectNoAudit: true,
		},
		{
			name:          "log-file flag",
			args:          []string{"--log-file", "/tmp/redpen.log"},
			expectLogFile: "/tmp/redpen.log",
		},
		{
			name:          "combined flags",
			args:          []string{"-v", "--dry-run", "--no-audit-log"},
			expectVerbose: true,
			expectDryRun:  true,
			expectNoAudit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flags
			verbose = false
			dryRun = false
			noAuditLog = false
			logFile = ""

			cmd.SetArgs(tt.args)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.Run = func(cmd *cobra.Command, args []string) {} // noop

			if err := cmd.Execute(); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}

			if verbose != tt.expectVerbose {
				t.Errorf("verbose = %v, want %v", verbose, tt.expectVerbose)
			}
			if dryRun != tt.expectDryRun {
				t.Errorf("dryRun = %v, want %v", dryRun, tt.expectDryRun)
			}
			if noAuditLog != tt.expectNoAudit {
				t.Errorf("noAuditLog = %v, want %v", noAuditLog, tt.expectNoAudit)
			}
			if logFile != tt.expectLogFile {
				t.Errorf("logFile = %q, want %q", logFile, tt.expectLogFile)
			}
		})
	}
}

func TestRootCmdHasExpectedSubcommands(t *testing.T) {
	expectedCommands := []string{"sql", "init", "validate", "install", "version", "completion"}

	for _, name := range expectedCommands {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing %q subcommand", name)
		}
	}
}
