package iniq

// Field is one key-value pair belonging to a section.
type Field struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Options controls how a Parser reads input.
type Options struct {
	// CommentPrefixes holds the characters that mark a whole line as a
	// comment. Empty disables start-of-line comments.
	CommentPrefixes string

	// InlineCommentPrefixes holds the characters that start a trailing
	// comment inside an unquoted value. Empty disables inline comments.
	InlineCommentPrefixes string

	// CollectAllErrors keeps parsing after an error and records every
	// failing line. The zero value stops at the first error, which matches
	// the historical behavior.
	CollectAllErrors bool

	// Logger receives debug output during parsing. Nil means no logging.
	Logger Logger
}

// DefaultOptions returns the standard prefix sets with stop-on-first-error
// behavior.
func DefaultOptions() Options {
	return Options{
		CommentPrefixes:       DefaultCommentPrefixes,
		InlineCommentPrefixes: DefaultInlineCommentPrefixes,
	}
}

// File is the result of a parse: an immutable mapping from section name to
// that section's fields, plus the set of every section name seen (a header
// is enumerable by name even if it never received a field). Accessors never
// mutate a File, so one File may be shared by any number of goroutines.
type File struct {
	sections map[string]map[string]string
	names    map[string]struct{}
	errs     []*ParseError
}

// newFile returns an empty store for the engine to fill.
func newFile() *File {
	return &File{
		sections: make(map[string]map[string]string),
		names:    make(map[string]struct{}),
	}
}
