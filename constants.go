package iniq

// Comment prefix defaults and scanner sizing
const (
	// DefaultCommentPrefixes are the characters that mark a whole line as a
	// comment when one of them is the first character of the line.
	DefaultCommentPrefixes = ";#"

	// DefaultInlineCommentPrefixes are the characters that start a trailing
	// comment inside an unquoted value.
	DefaultInlineCommentPrefixes = ";"

	// initialLineBuffer and maxLineBytes size the line scanner. Lines longer
	// than maxLineBytes abort the parse with the scanner's error.
	initialLineBuffer = 64 * 1024
	maxLineBytes      = 1024 * 1024
)
