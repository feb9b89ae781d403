// Package hook implements the pre-write review logic for redpen.
package hook

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/jfenske/redpen/internal/audit"
	"github.com/jfenske/redpen/internal/config"
	"github.com/jfenske/redpen/internal/constants"
	"github.com/jfenske/redpen/internal/logger"
	"github.com/jfenske/redpen/internal/profile"
)

// Audit log version
const AuditVersion = 1

// fileWrite is one proposed (path, content) pair extracted from the tool
// input. Write/Edit/MultiEdit yield exactly one; a Bash command yields one
// per heredoc-fed redirect.
type fileWrite struct {
	Path    string
	Content string
}

// ProcessWithResult reads one hook payload from the stream and evaluates
// every proposed write it describes. Unparseable input is treated as empty
// fields and degrades to an allow with no findings; the hook must never
// abort the host's write pipeline.
func ProcessWithResult(r io.Reader) Result {
	startTime := time.Now()

	rawBytes, err := io.ReadAll(r)
	if err != nil {
		logger.Debug("failed to read input", "error", err)
		return Result{Decision: profile.DecisionAllow}
	}
	rawInput := string(rawBytes)

	var input Input
	if err := json.Unmarshal(rawBytes, &input); err != nil {
		// Fail open: absent fields stay empty and the evaluation below
		// short-circuits to allow.
		logger.Debug("failed to decode input, proceeding with empty fields", "error", err)
	}

	writes := collectWrites(input)
	if len(writes) == 0 {
		logger.Debug("no evaluable write in payload", "tool", input.ToolName)
		return Result{Tool: input.ToolName, Decision: profile.DecisionAllow}
	}

	cfg := config.Get()

	result := Result{
		Tool:     input.ToolName,
		FilePath: writes[0].Path,
		Decision: profile.DecisionAllow,
	}
	var messages []string

	for _, w := range writes {
		p := profile.ForPath(cfg.Profiles, w.Path)
		if p == nil {
			logger.Debug("no profile for path", "path", w.Path)
			continue
		}

		res := p.Evaluate(w.Path, w.Content)
		logger.Debug("evaluated write",
			"path", w.Path,
			"profile", p.Name,
			"decision", res.Decision,
			"findings", len(res.Findings))

		if result.Profile == "" {
			result.Profile = p.Name
		}
		if len(res.Findings) == 0 {
			continue
		}

		result.Findings = append(result.Findings, res.Findings...)
		messages = append(messages, res.Message)
		if res.Decision == profile.DecisionDeny {
			result.Decision = profile.DecisionDeny
			result.FilePath = w.Path
			result.Profile = p.Name
		}
	}

	result.Message = strings.Join(messages, "\n\n")
	if len(result.Findings) > 0 {
		result.Output = FormatDecision(result.Decision, result.Message)
	}
	if result.Decision == profile.DecisionDeny {
		result.ExitCode = 2
	}

	durationMs := float64(time.Since(startTime).Microseconds()) / 1000.0
	logInvocation(input, result, durationMs, rawInput)
	return result
}

// ProcessSQL evaluates the SQL boundary variant: path and content arrive
// as positional arguments rather than a JSON payload, the report is plain
// text, and the exit code is always zero.
func ProcessSQL(path, content string) Result {
	startTime := time.Now()

	cfg := config.Get()
	result := Result{
		Tool:     "sql",
		FilePath: path,
		Decision: profile.DecisionAllow,
	}

	p := profile.Find(cfg.Profiles, "SQL")
	if p == nil {
		return result
	}

	res := p.Evaluate(path, content)
	result.Profile = p.Name
	result.Findings = res.Findings
	result.Message = res.Message
	result.Output = FormatReport(path, res, p.Trailer)

	durationMs := float64(time.Since(startTime).Microseconds()) / 1000.0
	logInvocation(Input{ToolName: "sql"}, result, durationMs, "")
	return result
}

// collectWrites extracts the proposed writes from the tool input.
func collectWrites(input Input) []fileWrite {
	in := input.ToolInput

	switch input.ToolName {
	case constants.ToolWrite:
		if in.Path() == "" {
			return nil
		}
		return []fileWrite{{Path: in.Path(), Content: in.Content}}

	case constants.ToolEdit:
		if in.Path() == "" {
			return nil
		}
		return []fileWrite{{Path: in.Path(), Content: in.NewString}}

	case constants.ToolMultiEdit:
		if in.Path() == "" || len(in.Edits) == 0 {
			return nil
		}
		parts := make([]string, 0, len(in.Edits))
		for _, e := range in.Edits {
			if e.NewString != "" {
				parts = append(parts, e.NewString)
			}
		}
		return []fileWrite{{Path: in.Path(), Content: strings.Join(parts, "\n")}}

	case constants.ToolBash:
		var writes []fileWrite
		for _, sw := range ExtractScriptWrites(in.Command) {
			writes = append(writes, fileWrite{Path: sw.Path, Content: sw.Content})
		}
		return writes
	}

	return nil
}

// logInvocation records one processed invocation to the audit log.
func logInvocation(input Input, result Result, durationMs float64, rawInput string) {
	findings := make([]audit.Finding, 0, len(result.Findings))
	for _, f := range result.Findings {
		findings = append(findings, audit.Finding{
			Rule:        f.Rule,
			Severity:    f.Severity,
			Description: f.Description,
		})
	}

	configPath := config.GetConfigPath()
	var configError string
	if err := config.InitError(); err != nil {
		configError = err.Error()
	}

	audit.Log(audit.Entry{
		Version:     AuditVersion,
		SessionID:   input.SessionID,
		ToolUseID:   input.ToolUseID,
		Tool:        result.Tool,
		FilePath:    result.FilePath,
		Profile:     result.Profile,
		Decision:    result.Decision,
		Findings:    findings,
		DurationMs:  durationMs,
		Cwd:         input.Cwd,
		Input:       rawInput,
		Output:      result.Output,
		ConfigPath:  configPath,
		ConfigError: configError,
	})
}
