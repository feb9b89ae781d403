// Package constants defines shared constants used across the redpen codebase.
package constants

import "os"

// File permissions
const (
	DirMode  os.FileMode = 0755
	FileMode os.FileMode = 0644
)

// Environment variables
const EnvConfigDir = "REDPEN_CONFIG"

// Application paths
const (
	AppName            = "redpen"
	XDGConfigSubdir    = ".config"
	ClaudeConfigDir    = ".claude"
	ClaudeSettingsFile = "settings.json"
	ConfigFileName     = "config.toml"
)

// Tool names recognized on the PreToolUse event
const (
	ToolWrite     = "Write"
	ToolEdit      = "Edit"
	ToolMultiEdit = "MultiEdit"
	ToolBash      = "Bash"
)
