package profile

import (
	"regexp"
	"strings"
)

// psAliases are well-known short cmdlet aliases that hurt readability in
// committed scripts. The detection requires the alias as a standalone token
// followed by whitespace; a # earlier on the same line exempts the line.
var psAliases = []string{
	"gci", "ls", "dir", "gc", "cat", "type", "cp", "copy", "mv", "move",
	"rm", "del", "ri", "rd", "echo", "cls", "cd", "pwd", "gm", "iex",
	"icm", "gcm", "gps", "ps", "kill", "sls", "ft", "fl", "select",
	"where", "foreach", "sort", "%", "?",
}

var (
	psAliasPattern   = buildAliasPattern(psAliases)
	psVerbNounFunc   = regexp.MustCompile(`function\s+[A-Za-z]+-[A-Za-z]\w*`)
	psCredential     = regexp.MustCompile(`(?i)(password|pwd|secret|apikey|api_key|token|credential)\s*=\s*["'][^"']{4,}["']`)
	psErrorAction    = regexp.MustCompile(`-ErrorAction\s+['"]?Stop`)
	psBadVerb        = regexp.MustCompile(`(?i)function\s+(Create|Delete|Modify|Execute|Run|Make|Do|Fetch|Retrieve|List)-\w+`)
	psStylingMarkers = []string{"ForegroundColor", "BackgroundColor", "-NoNewline"}
)

func buildAliasPattern(aliases []string) *regexp.Regexp {
	quoted := make([]string, len(aliases))
	for i, a := range aliases {
		quoted[i] = regexp.QuoteMeta(a)
	}
	return regexp.MustCompile(`(^|[\s|;({=])(` + strings.Join(quoted, "|") + `)\s`)
}

// psAliasUsed scans line by line so a comment marker earlier on the line
// can exempt documentation that merely mentions an alias.
func psAliasUsed(content string) bool {
	for _, line := range strings.Split(content, "\n") {
		loc := psAliasPattern.FindStringIndex(line)
		if loc == nil {
			continue
		}
		if hash := strings.Index(line, "#"); hash >= 0 && hash <= loc[0] {
			continue
		}
		return true
	}
	return false
}

const powershellTrailer = `Consider running PSScriptAnalyzer; these findings are heuristic.`

// PowerShell returns the PowerShell profile (.ps1/.psm1/.psd1). All rules
// are advisory.
func PowerShell() *Profile {
	return &Profile{
		Name:       "PowerShell",
		Version:    1,
		Extensions: []string{".ps1", ".psm1", ".psd1"},
		Trailer:    powershellTrailer,
		Rules: []Rule{
			{
				Name:        "alias-usage",
				Description: "Cmdlet alias used in a script; spell out the full cmdlet name",
				Severity:    SeverityAdvisory,
				Check: func(_, content string) bool {
					return psAliasUsed(content)
				},
			},
			{
				Name:        "missing-cmdletbinding",
				Description: "Verb-Noun function with a param() block but no [CmdletBinding()] attribute",
				Severity:    SeverityAdvisory,
				Check: func(_, content string) bool {
					return psVerbNounFunc.MatchString(content) &&
						strings.Contains(content, "param(") &&
						!strings.Contains(content, "[CmdletBinding")
				},
			},
			regexRule("hardcoded-credential",
				"Hardcoded credential assigned to a secret-named variable; use a credential store",
				SeverityAdvisory, psCredential),
			{
				Name:        "try-without-erroraction",
				Description: "try block without -ErrorAction Stop; non-terminating errors will skip the catch",
				Severity:    SeverityAdvisory,
				Check: func(_, content string) bool {
					return strings.Contains(content, "try {") &&
						!psErrorAction.MatchString(content)
				},
			},
			{
				Name:        "write-host-overuse",
				Description: "Repeated Write-Host; prefer Write-Output so results stay pipeable",
				Severity:    SeverityAdvisory,
				Check: func(_, content string) bool {
					if strings.Count(content, "Write-Host") <= 2 {
						return false
					}
					for _, marker := range psStylingMarkers {
						if strings.Contains(content, marker) {
							return false
						}
					}
					return true
				},
			},
			regexRule("non-approved-verb",
				"Function uses a non-approved verb; see Get-Verb for the approved list",
				SeverityAdvisory, psBadVerb),
		},
	}
}
