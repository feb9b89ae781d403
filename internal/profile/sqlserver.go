package profile

import (
	"regexp"
)

var (
	sqlExecConcat    = regexp.MustCompile(`(?i)\bEXEC(UTE)?\s*\([^)]*('|@\w+)[^)]*\+`)
	sqlDirectConcat  = regexp.MustCompile(`'[^']*'\s*\+\s*@\w+|@\w+\s*\+\s*'[^']*'`)
	sqlNolock        = regexp.MustCompile(`(?i)\bNOLOCK\b`)
	sqlNolockComment = regexp.MustCompile(`(?i)--[^\n]*nolock`)
	sqlCreateProc    = regexp.MustCompile(`(?i)\bCREATE\s+(OR\s+ALTER\s+)?PROC(EDURE)?\b`)
	sqlBeginTry      = regexp.MustCompile(`(?i)\bBEGIN\s+TRY\b`)
	sqlCursor        = regexp.MustCompile(`(?im)\bDECLARE\b[^\n]*\bCURSOR\b|^\s*OPEN\s+\w+|\bFETCH\s+NEXT\b`)
	sqlSelectStar    = regexp.MustCompile(`(?i)\bSELECT\s+\*\s+FROM\b`)
	sqlPersistedObj  = regexp.MustCompile(`(?i)\bCREATE\s+(OR\s+ALTER\s+)?(VIEW|PROC(EDURE)?|FUNCTION)\b|\bINSERT\s+INTO\b`)
	sqlNonSargable   = regexp.MustCompile(`(?i)\bWHERE\s+\w+\s*\([^)]*\)\s*=|\bWHERE\b[^\n]*\b(YEAR|MONTH|CONVERT|CAST)\s*\(`)
	sqlCredential    = regexp.MustCompile(`(?i)\b(PASSWORD|PWD)\s*=\s*'[^']+'`)
	sqlDMLStatement  = regexp.MustCompile(`(?im)^\s*(INSERT|UPDATE|DELETE|MERGE)\b`)
	sqlTransaction   = regexp.MustCompile(`(?i)\b(BEGIN\s+TRAN(SACTION)?|COMMIT|ROLLBACK)\b`)
	sqlCreateTable   = regexp.MustCompile(`(?i)\bCREATE\s+TABLE\b`)
	sqlBareDatetime  = regexp.MustCompile(`(?i)\bDATETIME\b`)
	sqlDatetime2     = regexp.MustCompile(`(?i)DATETIME2`)
)

const sqlTrailer = `These findings are advisory.`

// SQL returns the T-SQL profile (.sql). All rules are advisory; the SQL
// boundary additionally reports as plain text rather than hook JSON.
func SQL() *Profile {
	return &Profile{
		Name:       "SQL",
		Version:    1,
		Extensions: []string{".sql"},
		Trailer:    sqlTrailer,
		Rules: []Rule{
			regexRule("exec-concatenation",
				"EXEC() over a concatenated string; use sp_executesql with parameters",
				SeverityAdvisory, sqlExecConcat),
			regexRule("string-concatenation",
				"String literal concatenated with a variable; likely SQL injection vector",
				SeverityAdvisory, sqlDirectConcat),
			{
				Name:        "nolock-unjustified",
				Description: "NOLOCK hint without a comment justifying dirty reads",
				Severity:    SeverityAdvisory,
				Check: func(_, content string) bool {
					return sqlNolock.MatchString(content) &&
						!sqlNolockComment.MatchString(content)
				},
			},
			{
				Name:        "missing-error-handling",
				Description: "Stored procedure without a TRY/CATCH block",
				Severity:    SeverityAdvisory,
				Check: func(_, content string) bool {
					return sqlCreateProc.MatchString(content) &&
						!sqlBeginTry.MatchString(content)
				},
			},
			regexRule("cursor-usage",
				"Cursor detected; consider a set-based rewrite",
				SeverityAdvisory, sqlCursor),
			{
				Name:        "select-star",
				Description: "SELECT * inside a persisted object or INSERT; list columns explicitly",
				Severity:    SeverityAdvisory,
				Check: func(_, content string) bool {
					return sqlSelectStar.MatchString(content) &&
						sqlPersistedObj.MatchString(content)
				},
			},
			regexRule("non-sargable-predicate",
				"Function wrapped around a column in a WHERE clause defeats index use",
				SeverityAdvisory, sqlNonSargable),
			regexRule("hardcoded-credential",
				"Hardcoded PASSWORD/PWD value in script",
				SeverityAdvisory, sqlCredential),
			{
				Name:        "missing-transaction",
				Description: "Multiple DML statements without BEGIN TRANSACTION/COMMIT",
				Severity:    SeverityAdvisory,
				Check: func(_, content string) bool {
					return len(sqlDMLStatement.FindAllString(content, -1)) > 1 &&
						!sqlTransaction.MatchString(content)
				},
			},
			{
				Name:        "deprecated-datetime",
				Description: "New table uses DATETIME; prefer DATETIME2",
				Severity:    SeverityAdvisory,
				Check: func(_, content string) bool {
					return sqlCreateTable.MatchString(content) &&
						sqlBareDatetime.MatchString(content) &&
						!sqlDatetime2.MatchString(content)
				},
			},
		},
	}
}
