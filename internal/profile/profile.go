// Package profile implements the per-language rule tables that redpen
// evaluates against proposed file content.
//
// Every rule is a textual heuristic over the raw file content, not an
// AST-aware check. Several rules have documented imprecision (for example
// the Swift force-unwrap rule is suppressed by a safe-unwrap idiom anywhere
// in the file, not just in the enclosing scope). That behavior is kept
// as-is; the rules trade precision for zero build-time dependencies on
// language toolchains.
package profile

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Severity of a rule.
const (
	SeverityAdvisory = "advisory"
	SeverityBlocking = "blocking"
)

// Permission decisions
const (
	DecisionAllow = "allow"
	DecisionDeny  = "deny"
)

// Rule is a single detection heuristic. Check receives the path the host
// intends to write and the full proposed content, and reports whether the
// rule fires. Rules never inspect the filesystem.
type Rule struct {
	Name        string
	Description string
	Severity    string
	Check       func(path, content string) bool
}

// Finding is one fired rule.
type Finding struct {
	Rule        string `json:"rule"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

// Result is the outcome of evaluating one write against one profile.
type Result struct {
	Decision string
	Findings []Finding
	Message  string
}

// Profile is a fixed, versioned, ordered rule table for one language.
type Profile struct {
	Name       string
	Version    int
	Extensions []string
	Rules      []Rule
	Trailer    string
}

// Recognizes reports whether the profile covers the file's extension.
func (p *Profile) Recognizes(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range p.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Evaluate runs every rule in declaration order against the proposed
// content. A non-matching extension or empty content short-circuits to
// allow with no findings; neither is an error. Rules are independent: each
// fires at most once and never stops later rules from running. The
// decision is deny only when at least one fired rule is blocking.
func (p *Profile) Evaluate(path, content string) Result {
	if content == "" || !p.Recognizes(path) {
		return Result{Decision: DecisionAllow}
	}

	var findings []Finding
	for _, r := range p.Rules {
		if r.Check(path, content) {
			findings = append(findings, Finding{
				Rule:        r.Name,
				Severity:    r.Severity,
				Description: r.Description,
			})
		}
	}

	if len(findings) == 0 {
		return Result{Decision: DecisionAllow}
	}

	decision := DecisionAllow
	for _, f := range findings {
		if f.Severity == SeverityBlocking {
			decision = DecisionDeny
			break
		}
	}

	return Result{
		Decision: decision,
		Findings: findings,
		Message:  p.renderMessage(path, findings),
	}
}

// renderMessage renders the findings as one human-readable block:
// a header, the findings numbered in firing order, and the profile's
// fixed trailer.
func (p *Profile) renderMessage(path string, findings []Finding) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s review of %s found %d issue(s):\n", p.Name, path, len(findings))
	for i, f := range findings {
		fmt.Fprintf(&b, "%d. %s\n", i+1, f.Description)
	}
	if p.Trailer != "" {
		b.WriteString("\n")
		b.WriteString(p.Trailer)
	}
	return b.String()
}

// Builtins returns fresh copies of the four built-in profiles in their
// fixed order. Callers may trim or extend the returned profiles without
// affecting later calls.
func Builtins() []*Profile {
	return []*Profile{
		Swift(),
		Rust(),
		PowerShell(),
		SQL(),
	}
}

// ForPath returns the first profile recognizing the path's extension, or
// nil when no profile applies (the expected no-op path for irrelevant
// files).
func ForPath(profiles []*Profile, path string) *Profile {
	for _, p := range profiles {
		if p.Recognizes(path) {
			return p
		}
	}
	return nil
}

// Find returns the profile with the given name (case-insensitive), or nil.
func Find(profiles []*Profile, name string) *Profile {
	for _, p := range profiles {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

// regexRule builds a rule that fires when re matches the content.
func regexRule(name, description, severity string, re *regexp.Regexp) Rule {
	return Rule{
		Name:        name,
		Description: description,
		Severity:    severity,
		Check: func(_, content string) bool {
			return re.MatchString(content)
		},
	}
}

// CompileExtra compiles a user-supplied advisory rule from configuration.
// Returns an error if the pattern is not a valid regular expression.
func CompileExtra(name, pattern, description string) (Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("invalid pattern for rule %q: %w", name, err)
	}
	return regexRule(name, description, SeverityAdvisory, re), nil
}
