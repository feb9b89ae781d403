package profile

import (
	"regexp"
	"strings"
)

var (
	// An identifier character, ] or ) followed by ! that is not part of !=.
	swiftForceUnwrap = regexp.MustCompile(`[A-Za-z0-9_\])]!($|[^=])`)

	swiftSecretAssign = regexp.MustCompile(`(?i)(api_?key|api_?secret|auth_?token|password|secret_?key)"?\s*[:=]\s*"[^"]{8,}"`)
	swiftBearerToken  = regexp.MustCompile(`"Bearer [A-Za-z0-9_-]{20,}`)
	swiftKeyLiteral   = regexp.MustCompile(`"(sk|pk|api|key|token)[_-][A-Za-z0-9]{20,}`)

	swiftObservedClass = regexp.MustCompile(`class\s+\w+\s*:[^{]*\b(ObservableObject|Observable)\b`)
	swiftMainActor     = regexp.MustCompile(`@MainActor\s+(final\s+)?class`)
	swiftObservedProp  = regexp.MustCompile(`@(Published|Observable)\b`)
)

// swiftSyncPrimitives are the synchronization markers that excuse an
// @unchecked Sendable conformance. Note "actor " keeps its trailing space
// so that plain identifiers containing "actor" don't count.
var swiftSyncPrimitives = []string{
	"NSLock",
	"os_unfair_lock",
	"DispatchQueue",
	"actor ",
	"Mutex",
	"Lock()",
}

const swiftTrailer = `Remediation hints:
- Unwrap optionals with guard let / if let rather than force unwrap
- Keep credentials in the Keychain or injected configuration, never in source
- Keep blocking work off the main thread
- Pair @unchecked Sendable with a lock, queue, or actor
- Isolate observable UI state to the main actor`

// Swift returns the Swift profile. Every rule is blocking: any finding
// denies the write.
func Swift() *Profile {
	return &Profile{
		Name:       "Swift",
		Version:    1,
		Extensions: []string{".swift"},
		Trailer:    swiftTrailer,
		Rules: []Rule{
			{
				Name:        "force-unwrap",
				Description: "Force unwrap (!) detected; unwrap with guard let or if let instead",
				Severity:    SeverityBlocking,
				// Whole-file heuristic: any guard let / if let in the file
				// suppresses the rule, even for unrelated force unwraps.
				Check: func(_, content string) bool {
					if strings.Contains(content, "guard let") || strings.Contains(content, "if let") {
						return false
					}
					return swiftForceUnwrap.MatchString(content)
				},
			},
			regexRule("hardcoded-secret",
				"Hardcoded secret assigned to a credential-named key; store it in the Keychain or configuration",
				SeverityBlocking, swiftSecretAssign),
			regexRule("hardcoded-bearer-token",
				"Hardcoded bearer token in a string literal",
				SeverityBlocking, swiftBearerToken),
			regexRule("hardcoded-api-key",
				"String literal shaped like an API key (sk/pk/api/key/token prefix)",
				SeverityBlocking, swiftKeyLiteral),
			{
				Name:        "main-thread-block",
				Description: "DispatchQueue.main.sync blocks the main thread; dispatch asynchronously",
				Severity:    SeverityBlocking,
				Check: func(_, content string) bool {
					return strings.Contains(content, "DispatchQueue.main.sync")
				},
			},
			{
				Name:        "unchecked-sendable",
				Description: "@unchecked Sendable without any visible synchronization primitive",
				Severity:    SeverityBlocking,
				Check: func(_, content string) bool {
					if !strings.Contains(content, "@unchecked Sendable") {
						return false
					}
					for _, prim := range swiftSyncPrimitives {
						if strings.Contains(content, prim) {
							return false
						}
					}
					return true
				},
			},
			{
				Name:        "missing-main-actor",
				Description: "Observable class publishes state without @MainActor isolation",
				Severity:    SeverityBlocking,
				Check: func(_, content string) bool {
					return swiftObservedClass.MatchString(content) &&
						!swiftMainActor.MatchString(content) &&
						swiftObservedProp.MatchString(content)
				},
			},
		},
	}
}
