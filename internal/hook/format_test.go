package hook

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jfenske/redpen/internal/profile"
)

func TestFormatDecisionShape(t *testing.T) {
	out := FormatDecision(profile.DecisionDeny, "Swift review of Foo.swift found 1 issue(s):")

	var decoded Output
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if decoded.HookSpecificOutput.HookEventName != EventPreToolUse {
		t.Errorf("hookEventName = %q, want %q", decoded.HookSpecificOutput.HookEventName, EventPreToolUse)
	}
	if decoded.HookSpecificOutput.PermissionDecision != profile.DecisionDeny {
		t.Errorf("permissionDecision = %q, want deny", decoded.HookSpecificOutput.PermissionDecision)
	}
	if !strings.Contains(decoded.SystemMessage, "found 1 issue(s)") {
		t.Errorf("systemMessage = %q", decoded.SystemMessage)
	}
}

func TestFormatDecisionOmitsEmptyMessage(t *testing.T) {
	out := FormatDecision(profile.DecisionAllow, "")
	if strings.Contains(out, "systemMessage") {
		t.Errorf("empty systemMessage should be omitted:\n%s", out)
	}
}

func TestFormatReport(t *testing.T) {
	res := profile.Result{
		Findings: []profile.Finding{
			{Rule: "select-star", Severity: profile.SeverityAdvisory, Description: "SELECT * inside a persisted object"},
			{Rule: "cursor-usage", Severity: profile.SeverityAdvisory, Description: "Cursor detected"},
		},
	}

	got := FormatReport("views.sql", res, "These findings are advisory.")
	want := "views.sql:\n" +
		"  warning: SELECT * inside a persisted object\n" +
		"  warning: Cursor detected\n" +
		"These findings are advisory.\n"
	if got != want {
		t.Errorf("report mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatReportNoFindings(t *testing.T) {
	if got := FormatReport("views.sql", profile.Result{}, "trailer"); got != "" {
		t.Errorf("expected empty report, got:\n%s", got)
	}
}
