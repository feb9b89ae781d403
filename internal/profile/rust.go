package profile

import (
	"regexp"
	"strings"
)

var (
	rustSecretAssign = regexp.MustCompile(`(?i)(api_?key|secret|password|token)\s*[:=]\s*"[^"]{8,}"`)
	rustUnsafeBlock  = regexp.MustCompile(`unsafe\s*\{`)
	rustAsyncFn      = regexp.MustCompile(`async\s+fn\s+\w+`)
)

// rustBlockingCalls are synchronous std calls that stall an async executor.
var rustBlockingCalls = []string{
	"std::thread::sleep",
	"std::fs::read",
	"std::fs::write",
}

const rustTrailer = `These checks are heuristic; run cargo clippy for a deeper pass.`

// Rust returns the Rust profile. All rules are advisory: findings are
// reported but the write is never denied.
func Rust() *Profile {
	return &Profile{
		Name:       "Rust",
		Version:    1,
		Extensions: []string{".rs"},
		Trailer:    rustTrailer,
		Rules: []Rule{
			regexRule("hardcoded-secret",
				"Hardcoded secret assigned to a credential-named key; load it from the environment or a secret store",
				SeverityAdvisory, rustSecretAssign),
			{
				Name:        "panic-in-library",
				Description: "panic!() in non-test, non-entry-point code; return a Result instead",
				Severity:    SeverityAdvisory,
				Check: func(path, content string) bool {
					if strings.Contains(path, "test") || strings.Contains(path, "main.rs") {
						return false
					}
					return strings.Contains(content, "panic!(")
				},
			},
			{
				Name:        "unwrap-overuse",
				Description: "More than three .unwrap() calls with no .expect(); add context to failure paths",
				Severity:    SeverityAdvisory,
				Check: func(path, content string) bool {
					if strings.Contains(path, "test") {
						return false
					}
					return strings.Count(content, ".unwrap()") > 3 &&
						strings.Count(content, ".expect(") == 0
				},
			},
			{
				Name:        "unsafe-without-comment",
				Description: "unsafe block without a // SAFETY: comment explaining the invariant",
				Severity:    SeverityAdvisory,
				Check: func(_, content string) bool {
					return rustUnsafeBlock.MatchString(content) &&
						!strings.Contains(content, "// SAFETY:")
				},
			},
			{
				Name:        "blocking-in-async",
				Description: "Blocking std call inside an async fn; use the runtime's async equivalent",
				Severity:    SeverityAdvisory,
				Check: func(_, content string) bool {
					if !rustAsyncFn.MatchString(content) {
						return false
					}
					for _, call := range rustBlockingCalls {
						if strings.Contains(content, call) {
							return true
						}
					}
					return false
				},
			},
		},
	}
}
