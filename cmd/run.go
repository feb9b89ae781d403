package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/jfenske/redpen/internal/hook"
	"github.com/spf13/cobra"
)

// runHook is the default command that reviews a proposed write from stdin
func runHook(cmd *cobra.Command, args []string) {
	result := hook.ProcessWithResult(os.Stdin)

	if dryRun {
		printDryRun(result)
		return
	}

	// Findings go to stderr as hook JSON; a clean pass stays silent.
	if result.Output != "" {
		fmt.Fprintln(os.Stderr, result.Output)
	}
	if result.ExitCode != 0 {
		os.Exit(result.ExitCode)
	}
}

// printDryRun reports the evaluation in human-readable form on stderr,
// without the JSON envelope or the deny exit code.
func printDryRun(result hook.Result) {
	if len(result.Findings) == 0 {
		fmt.Fprintf(os.Stderr, "ALLOW %s (no findings)\n", pathOrPlaceholder(result.FilePath))
		return
	}

	fmt.Fprintf(os.Stderr, "%s %s: %d finding(s)\n",
		strings.ToUpper(result.Decision), pathOrPlaceholder(result.FilePath), len(result.Findings))
	for _, f := range result.Findings {
		fmt.Fprintf(os.Stderr, "  [%s] %s: %s\n", f.Severity, f.Rule, f.Description)
	}
}

func pathOrPlaceholder(path string) string {
	if path == "" {
		return "(no file)"
	}
	return path
}
