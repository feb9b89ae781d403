package hook

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jfenske/redpen/internal/logger"
	"github.com/jfenske/redpen/internal/profile"
)

// Hook event names
const EventPreToolUse = "PreToolUse"

// FormatDecision returns the stderr JSON for a decision with findings.
func FormatDecision(decision, message string) string {
	output := Output{
		HookSpecificOutput: SpecificOutput{
			HookEventName:      EventPreToolUse,
			PermissionDecision: decision,
		},
		SystemMessage: message,
	}
	data, err := json.Marshal(output)
	if err != nil {
		logger.Debug("failed to marshal decision output", "error", err)
		return `{"hookSpecificOutput":{"hookEventName":"PreToolUse","permissionDecision":"allow"}}`
	}
	return string(data)
}

// FormatReport renders findings as the plain-text report used by the SQL
// boundary: the file path followed by one warning line per finding, then
// the profile trailer. Returns "" when there are no findings.
func FormatReport(path string, res profile.Result, trailer string) string {
	if len(res.Findings) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", path)
	for _, f := range res.Findings {
		fmt.Fprintf(&b, "  warning: %s\n", f.Description)
	}
	if trailer != "" {
		b.WriteString(trailer)
		b.WriteString("\n")
	}
	return b.String()
}
