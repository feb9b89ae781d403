package main

import (
	"strings"
	"testing"

	"github.com/jfenske/redpen/internal/hook"
	"github.com/jfenske/redpen/internal/profile"
)

// FuzzProcess tests the full hook pipeline for crashes
func FuzzProcess(f *testing.F) {
	// Add seed corpus with valid JSON inputs
	f.Add(`{"tool_name":"Write","tool_input":{"file_path":"/tmp/App.swift","content":"let x = value!"}}`)
	f.Add(`{"tool_name":"Write","tool_input":{"file_path":"/tmp/lib.rs","content":"unsafe { ptr.read() }"}}`)
	f.Add(`{"tool_name":"Edit","tool_input":{"file_path":"deploy.ps1","new_string":"gci C:\\"}}`)
	f.Add(`{"tool_name":"MultiEdit","tool_input":{"file_path":"a.sql","edits":[{"old_string":"x","new_string":"SELECT * FROM t"}]}}`)
	f.Add(`{"tool_name":"Bash","tool_input":{"command":"cat > a.sql <<'EOF'\nSELECT 1\nEOF\n"}}`)
	f.Add(`{"tool_name":"Write","tool_input":{"filePath":"/tmp/App.swift","content":""}}`)
	f.Add(`{"tool_name":"Read","tool_input":{}}`)
	f.Add(`{}`)
	f.Add(`not json`)
	f.Add(``)
	f.Add(`[1,2,3]`)

	f.Fuzz(func(t *testing.T, input string) {
		// Just ensure no panics
		_ = hook.ProcessWithResult(strings.NewReader(input))
	})
}

// FuzzEvaluate tests every builtin profile for crashes on arbitrary content
func FuzzEvaluate(f *testing.F) {
	f.Add("App.swift", "let x = value!")
	f.Add("lib.rs", "async fn go() { std::thread::sleep(d); }")
	f.Add("deploy.ps1", "function Create-User { param($Name) }")
	f.Add("proc.sql", "CREATE PROCEDURE p AS SELECT * FROM t")
	f.Add("", "")
	f.Add("noextension", "content")
	f.Add("x.swift", strings.Repeat("!", 1024))

	f.Fuzz(func(t *testing.T, path, content string) {
		for _, p := range profile.Builtins() {
			_ = p.Evaluate(path, content)
		}
	})
}

// FuzzExtractScriptWrites tests shell parsing for crashes
func FuzzExtractScriptWrites(f *testing.F) {
	f.Add("cat > a.sql <<'EOF'\nSELECT 1\nEOF\n")
	f.Add("echo hello > file.txt")
	f.Add("ls | grep foo | wc -l")
	f.Add("$(cat /etc/passwd)")
	f.Add("`whoami`")
	f.Add("for i in 1 2 3; do echo $i; done")
	f.Add("if [ -f foo ]; then cat foo; fi")
	f.Add("")
	f.Add("   ")
	f.Add("<<")
	f.Add("cat > \"$OUT\" <<EOF\n$BODY\nEOF\n")

	f.Fuzz(func(t *testing.T, cmd string) {
		// Just ensure no panics
		_ = hook.ExtractScriptWrites(cmd)
	})
}
