package cmd

import (
	"fmt"

	"github.com/jfenske/redpen/internal/hook"
	"github.com/spf13/cobra"
)

// sqlCmd is the SQL boundary variant. Unlike the default hook it takes the
// file path and content as positional arguments, reports plain text on
// stdout, and always exits zero. This mirrors how SQL review hooks are
// conventionally wired (argument templating rather than stdin JSON), so
// the divergence is kept rather than unified with the JSON boundary.
var sqlCmd = &cobra.Command{
	Use:   "sql <file-path> <content>",
	Short: "Review SQL content passed as positional arguments",
	Long: `Review reviews proposed SQL content against the T-SQL rule table.

The file path and the full proposed content are passed as two positional
arguments. Findings are printed as a plain-text report on stdout; the
command always exits zero (all SQL rules are advisory).

Usage in ~/.claude/settings.json hooks, with argument templating:
  {"type": "command", "command": "redpen sql \"$FILE\" \"$CONTENT\""}`,
	Args: cobra.ExactArgs(2),
	Run:  runSQL,
}

func init() {
	rootCmd.AddCommand(sqlCmd)
}

func runSQL(cmd *cobra.Command, args []string) {
	result := hook.ProcessSQL(args[0], args[1])
	if result.Output != "" {
		fmt.Print(result.Output)
	}
}
