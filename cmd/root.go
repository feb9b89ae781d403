// Package cmd implements the CLI commands for redpen.
package cmd

import (
	"github.com/jfenske/redpen/internal/audit"
	"github.com/jfenske/redpen/internal/config"
	"github.com/jfenske/redpen/internal/logger"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	dryRun     bool
	noAuditLog bool
	logFile    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "redpen",
	Short: "Claude Code pre-write review hook",
	Long: `redpen is a PreToolUse hook for Claude Code that reviews proposed file
writes for risky or non-idiomatic source patterns before they land on disk.

When called without arguments, it reads a JSON payload from stdin describing
the write. Swift findings deny the write (stderr JSON, exit code 2); Rust and
PowerShell findings are advisory (stderr JSON, exit code 0). SQL files use
the dedicated 'sql' subcommand with positional arguments.

Usage in ~/.claude/settings.json:
  "hooks": {
    "PreToolUse": [{
      "matcher": "Write|Edit|MultiEdit|Bash",
      "hooks": [{"type": "command", "command": "redpen"}]
    }]
  }`,
	// Run the hook by default when no subcommand is given
	Run: runHook,
	// Silence usage on errors
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Initialize before running any command
	cobra.OnInitialize(initApp)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (debug logging)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Print the evaluation to stderr instead of hook JSON")
	rootCmd.PersistentFlags().BoolVar(&noAuditLog, "no-audit-log", false, "Disable audit logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write debug logs to this rotated file instead of stderr")
}

// initApp initializes the application (logger, config, audit)
func initApp() {
	logger.Init(logger.Options{Verbose: verbose, LogFile: logFile})

	config.Init()

	// Initialize audit logging (unless disabled)
	audit.Init("", noAuditLog)
}

// IsVerbose returns whether verbose mode is enabled
func IsVerbose() bool {
	return verbose
}

// IsDryRun returns whether dry-run mode is enabled
func IsDryRun() bool {
	return dryRun
}
