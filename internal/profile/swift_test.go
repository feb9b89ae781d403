package profile

import (
	"strings"
	"testing"
)

// evalRules returns the names of the rules that fired.
func evalRules(t *testing.T, p *Profile, path, content string) []string {
	t.Helper()
	res := p.Evaluate(path, content)
	names := make([]string, 0, len(res.Findings))
	for _, f := range res.Findings {
		names = append(names, f.Rule)
	}
	return names
}

func fired(names []string, rule string) bool {
	for _, n := range names {
		if n == rule {
			return true
		}
	}
	return false
}

func TestSwiftForceUnwrap(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"bare force unwrap", "let x = value!", true},
		{"subscript force unwrap", "let x = items[0]!", true},
		{"call force unwrap", "let x = find(id)!", true},
		{"not-equals is not a force unwrap", "if x != y { return }", false},
		{"guard let suppresses whole file", "guard let y = value else { return }\nlet x = value!", false},
		{"if let suppresses whole file", "if let y = value { use(y) }\nlet x = value!", false},
		{"clean optional chaining", "let x = value?.name", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := evalRules(t, Swift(), "Foo.swift", tt.content)
			if got := fired(names, "force-unwrap"); got != tt.want {
				t.Errorf("force-unwrap fired = %v, want %v (content %q)", got, tt.want, tt.content)
			}
		})
	}
}

func TestSwiftDeniesOnForceUnwrap(t *testing.T) {
	res := Swift().Evaluate("Foo.swift", "let x = value!")
	if res.Decision != DecisionDeny {
		t.Errorf("decision = %q, want deny", res.Decision)
	}
	if len(res.Findings) != 1 {
		t.Errorf("findings = %d, want 1: %+v", len(res.Findings), res.Findings)
	}
}

func TestSwiftSuppressedFileAllows(t *testing.T) {
	res := Swift().Evaluate("Foo.swift", "guard let y = value else { return }\nlet x = value!")
	if res.Decision != DecisionAllow {
		t.Errorf("decision = %q, want allow", res.Decision)
	}
	if len(res.Findings) != 0 {
		t.Errorf("findings = %+v, want none", res.Findings)
	}
}

func TestSwiftHardcodedSecrets(t *testing.T) {
	tests := []struct {
		name    string
		content string
		rule    string
		want    bool
	}{
		{"api key assignment", `let apiKey = "abcd1234efgh"`, "hardcoded-secret", true},
		{"password colon", `"password": "hunter2hunter2"`, "hardcoded-secret", true},
		{"secret_key underscore", `let secret_key = "0123456789"`, "hardcoded-secret", true},
		{"short value ignored", `let apiKey = "short"`, "hardcoded-secret", false},
		{"unrelated name", `let keyboard = "qwertyuiop"`, "hardcoded-secret", false},
		{"bearer token literal", `let auth = "Bearer abcdefghij0123456789XYZ"`, "hardcoded-bearer-token", true},
		{"bearer too short", `let auth = "Bearer abc"`, "hardcoded-bearer-token", false},
		{"sk-prefixed literal", `let k = "sk_abcdefghijklmnopqrstuv123"`, "hardcoded-api-key", true},
		{"token-dash literal", `let k = "token-abcdefghijklmnopqrst99"`, "hardcoded-api-key", true},
		{"short prefixed literal", `let k = "sk_short"`, "hardcoded-api-key", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// guard let keeps the force-unwrap rule quiet so the table
			// isolates the secret rules.
			content := "guard let v = v else { return }\n" + tt.content
			names := evalRules(t, Swift(), "Config.swift", content)
			if got := fired(names, tt.rule); got != tt.want {
				t.Errorf("%s fired = %v, want %v (content %q)", tt.rule, got, tt.want, tt.content)
			}
		})
	}
}

func TestSwiftUncheckedSendable(t *testing.T) {
	base := "final class Cache: @unchecked Sendable {\n    var store: [String: Int] = [:]\n}"

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"no synchronization", base, true},
		{"NSLock present", base + "\nlet lock = NSLock()", false},
		{"DispatchQueue present", base + "\nlet q = DispatchQueue(label: \"cache\")", false},
		{"actor present", "actor Cache {}\n" + base, false},
		{"Mutex present", base + "\nlet m = Mutex(0)", false},
		{"no unchecked sendable at all", "final class Cache: Sendable {}", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := evalRules(t, Swift(), "Cache.swift", tt.content)
			if got := fired(names, "unchecked-sendable"); got != tt.want {
				t.Errorf("unchecked-sendable fired = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSwiftMissingMainActor(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{
			"observable object without isolation",
			"class Model: ObservableObject {\n    @Published var count = 0\n}",
			true,
		},
		{
			"main actor annotated",
			"@MainActor\nclass Model: ObservableObject {\n    @Published var count = 0\n}",
			false,
		},
		{
			"main actor with final",
			"@MainActor final class Model: ObservableObject {\n    @Published var count = 0\n}",
			false,
		},
		{
			"no published properties",
			"class Model: ObservableObject {\n    var count = 0\n}",
			false,
		},
		{
			"plain class",
			"class Model {\n    var count = 0\n}",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := evalRules(t, Swift(), "Model.swift", tt.content)
			if got := fired(names, "missing-main-actor"); got != tt.want {
				t.Errorf("missing-main-actor fired = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSwiftMainThreadBlock(t *testing.T) {
	names := evalRules(t, Swift(), "App.swift", "DispatchQueue.main.sync { render() }")
	if !fired(names, "main-thread-block") {
		t.Error("main-thread-block did not fire on DispatchQueue.main.sync")
	}
}

func TestSwiftMessageTrailer(t *testing.T) {
	res := Swift().Evaluate("App.swift", "let x = value!")
	if !strings.Contains(res.Message, "Remediation hints:") {
		t.Errorf("deny message missing trailer:\n%s", res.Message)
	}
}
