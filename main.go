// redpen - Claude Code PreToolUse hook that reviews proposed file writes.
//
// Before a Write/Edit lands on disk, redpen scans the proposed content for
// risky or non-idiomatic source patterns. Swift findings block the write;
// Rust, PowerShell, and SQL findings are advisory.
//
// Usage in ~/.claude/settings.json:
//
//	"hooks": {
//	  "PreToolUse": [{
//	    "matcher": "Write|Edit|MultiEdit|Bash",
//	    "hooks": [{"type": "command", "command": "redpen"}]
//	  }]
//	}
//
// Test:
//
//	echo '{"tool_name": "Write", "tool_input": {"file_path": "a.swift", "content": "let x = v!"}}' | redpen
package main

import (
	"os"

	"github.com/jfenske/redpen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
