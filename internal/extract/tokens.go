package extract

import "strings"

// placeholder marks a cell someone filled in without knowing the work item.
const placeholder = "?"

// SplitTokens splits a cell into work-item ids. Newlines, commas, semicolons
// and vertical bars all separate entries. Tokens are trimmed; empty tokens and
// the "?" placeholder are dropped. Repeated ids are kept.
func SplitTokens(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	fields := strings.FieldsFunc(raw, func(r rune) bool {
		switch r {
		case '\n', ',', ';', '|':
			return true
		}
		return false
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" || f == placeholder {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
