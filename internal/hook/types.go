package hook

import "github.com/jfenske/redpen/internal/profile"

/*
Type Relationships in the hook package:

Data Flow:
  Input (JSON from Claude Code)
    → ProcessWithResult()
      → collectWrites() → proposed file writes (Write/Edit/MultiEdit/Bash heredoc)
      → profile.ForPath() → language profile
      → (*profile.Profile).Evaluate() → findings
    → Result (returned to caller)
    → Output (JSON on stderr) + process exit code

Related packages:
  - config.Config: the active profiles (builtin rules, user overrides)
  - profile.Profile: ordered rule tables per language
  - audit.Entry: logged for each evaluated invocation
*/

// Input represents the JSON input received from Claude Code's PreToolUse
// hook. Unknown fields are ignored; absent fields decode to empty strings
// so a malformed payload degrades to a no-op evaluation (fail open).
//
// See: https://docs.anthropic.com/en/docs/claude-code/hooks
type Input struct {
	SessionID      string        `json:"session_id"`
	TranscriptPath string        `json:"transcript_path"`
	Cwd            string        `json:"cwd"`
	PermissionMode string        `json:"permission_mode"`
	HookEventName  string        `json:"hook_event_name"`
	ToolName       string        `json:"tool_name"`
	ToolInput      ToolInputData `json:"tool_input"`
	ToolUseID      string        `json:"tool_use_id"`
}

// ToolInputData contains the write details from the triggering tool.
// Which fields are populated depends on the tool: Write uses FilePath and
// Content, Edit uses FilePath and NewString, MultiEdit uses FilePath and
// Edits, Bash uses Command. Some hosts send filePath instead of file_path.
type ToolInputData struct {
	FilePath    string     `json:"file_path,omitempty"`
	FilePathAlt string     `json:"filePath,omitempty"`
	Content     string     `json:"content,omitempty"`
	NewString   string     `json:"new_string,omitempty"`
	Edits       []EditSpan `json:"edits,omitempty"`
	Command     string     `json:"command,omitempty"`
}

// EditSpan is one replacement within a MultiEdit call.
type EditSpan struct {
	OldString string `json:"old_string"`
	NewString string `json:"new_string"`
}

// Path returns the target path, accepting either field spelling.
func (t ToolInputData) Path() string {
	if t.FilePath != "" {
		return t.FilePath
	}
	return t.FilePathAlt
}

// Output represents the JSON response written to stderr when at least one
// rule fired. With no findings the hook stays silent.
type Output struct {
	HookSpecificOutput SpecificOutput `json:"hookSpecificOutput"`
	SystemMessage      string         `json:"systemMessage,omitempty"`
}

// SpecificOutput contains the permission decision.
// PermissionDecision is either "allow" or "deny".
type SpecificOutput struct {
	HookEventName      string `json:"hookEventName"`
	PermissionDecision string `json:"permissionDecision"`
}

// Result contains the outcome of processing one invocation.
type Result struct {
	FilePath string            // The path the host intends to write
	Tool     string            // The tool that triggered the hook
	Profile  string            // Name of the profile that evaluated the write, "" if none applied
	Decision string            // "allow" or "deny"
	Findings []profile.Finding // Fired rules in declaration order
	Message  string            // Rendered findings block, "" when clean
	Output   string            // JSON written to stderr, "" when silent
	ExitCode int               // 2 on deny, 0 otherwise
}
