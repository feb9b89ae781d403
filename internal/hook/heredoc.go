package hook

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// ScriptWrite is a file write expressed inside a Bash command: a redirect
// whose target is a literal path and whose input is a heredoc body, e.g.
//
//	cat > schema.sql << 'EOF'
//	CREATE TABLE ...
//	EOF
//
// Only heredoc-fed redirects carry the proposed content in the command
// itself; plain redirects (echo foo > file) are ignored because the final
// file content is unknown without executing the command.
type ScriptWrite struct {
	Path    string
	Content string
}

// ExtractScriptWrites parses a shell command and returns the file writes
// it expresses via heredocs. Unparseable commands yield nil; the hook
// fails open rather than guessing.
func ExtractScriptWrites(cmd string) []ScriptWrite {
	if strings.TrimSpace(cmd) == "" {
		return nil
	}

	parser := syntax.NewParser()
	prog, err := parser.Parse(strings.NewReader(cmd), "")
	if err != nil {
		return nil
	}

	var writes []ScriptWrite
	syntax.Walk(prog, func(node syntax.Node) bool {
		stmt, ok := node.(*syntax.Stmt)
		if !ok {
			return true
		}

		var target, body string
		for _, redir := range stmt.Redirs {
			switch redir.Op {
			case syntax.RdrOut, syntax.AppOut:
				target = wordLiteral(redir.Word)
			case syntax.Hdoc, syntax.DashHdoc:
				if redir.Hdoc != nil {
					body = wordLiteral(redir.Hdoc)
				}
			}
		}
		if target != "" && body != "" {
			writes = append(writes, ScriptWrite{Path: target, Content: body})
		}
		return true
	})

	return writes
}

// wordLiteral flattens a word composed only of literal and quoted-literal
// parts. Words containing expansions ($VAR, $(...)) return "" so that
// dynamic targets and bodies are skipped rather than misread.
func wordLiteral(word *syntax.Word) string {
	if word == nil {
		return ""
	}
	var b strings.Builder
	if !appendLiteralParts(&b, word.Parts) {
		return ""
	}
	return b.String()
}

func appendLiteralParts(b *strings.Builder, parts []syntax.WordPart) bool {
	for _, part := range parts {
		switch p := part.(type) {
		case *syntax.Lit:
			b.WriteString(p.Value)
		case *syntax.SglQuoted:
			b.WriteString(p.Value)
		case *syntax.DblQuoted:
			if !appendLiteralParts(b, p.Parts) {
				return false
			}
		default:
			return false
		}
	}
	return true
}
