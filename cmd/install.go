package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jfenske/redpen/internal/constants"
	"github.com/spf13/cobra"
)

var installProject bool

// hookMatcher covers every tool that can express a file write.
const hookMatcher = "Write|Edit|MultiEdit|Bash"

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Register redpen as a PreToolUse hook in Claude Code settings",
	Long: `Install adds the redpen hook entry to Claude Code's settings.json.

By default the user settings (~/.claude/settings.json) are updated; with
--project the project settings (./.claude/settings.json) are used instead.
The command is idempotent: an existing redpen entry is left untouched.`,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
	installCmd.Flags().BoolVar(&installProject, "project", false, "Install into ./.claude/settings.json instead of the user settings")
}

func runInstall(cmd *cobra.Command, args []string) error {
	path, err := settingsPath()
	if err != nil {
		return err
	}

	settings, err := readSettings(path)
	if err != nil {
		return err
	}

	if hookInstalled(settings) {
		fmt.Printf("redpen hook already present in %s\n", path)
		return nil
	}

	addHookEntry(settings)

	if err := writeSettings(path, settings); err != nil {
		return err
	}
	fmt.Printf("redpen hook added to %s\n", path)
	return nil
}

func settingsPath() (string, error) {
	if installProject {
		return filepath.Join(".", constants.ClaudeConfigDir, constants.ClaudeSettingsFile), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, constants.ClaudeConfigDir, constants.ClaudeSettingsFile), nil
}

func readSettings(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	settings := map[string]any{}
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return settings, nil
}

// hookInstalled reports whether any PreToolUse hook command already
// invokes redpen.
func hookInstalled(settings map[string]any) bool {
	hooks, _ := settings["hooks"].(map[string]any)
	entries, _ := hooks["PreToolUse"].([]any)
	for _, entry := range entries {
		m, _ := entry.(map[string]any)
		cmds, _ := m["hooks"].([]any)
		for _, c := range cmds {
			cm, _ := c.(map[string]any)
			if command, _ := cm["command"].(string); strings.Contains(command, constants.AppName) {
				return true
			}
		}
	}
	return false
}

func addHookEntry(settings map[string]any) {
	hooks, _ := settings["hooks"].(map[string]any)
	if hooks == nil {
		hooks = map[string]any{}
		settings["hooks"] = hooks
	}
	entries, _ := hooks["PreToolUse"].([]any)
	entries = append(entries, map[string]any{
		"matcher": hookMatcher,
		"hooks": []any{
			map[string]any{"type": "command", "command": constants.AppName},
		},
	})
	hooks["PreToolUse"] = entries
}

func writeSettings(path string, settings map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), constants.DirMode); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), constants.FileMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
