package iniq

import "strings"

// isCommentLine reports whether a trailing-trimmed line is a start-of-line
// comment. Only the first character is inspected, so a line with leading
// spaces is never a comment.
func isCommentLine(line, prefixes string) bool {
	if line == "" || prefixes == "" {
		return false
	}
	return strings.IndexByte(prefixes, line[0]) >= 0
}

// stripInlineComment truncates an unquoted value at the first occurrence of
// any inline prefix character and trailing-trims what remains. Quoted values
// never pass through here.
func stripInlineComment(value, prefixes string) string {
	if prefixes == "" {
		return value
	}
	if i := strings.IndexAny(value, prefixes); i >= 0 {
		value = value[:i]
	}
	return trimRight(value)
}
