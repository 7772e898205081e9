package iniq

import "fmt"

// ErrorKind classifies everything that can go wrong while reading a config.
type ErrorKind int

const (
	// NoError is the zero kind; it never appears inside a ParseError.
	NoError ErrorKind = iota

	// NoSuchFile indicates the input path could not be opened.
	NoSuchFile

	// NoClosingBracketForSection indicates a header line with no `]`.
	NoClosingBracketForSection

	// EmptySection indicates a section that ended without a single field,
	// or a header whose name trims to the empty string.
	EmptySection

	// KeyOutsideSection indicates a key-value line before any header.
	KeyOutsideSection

	// NoValueForKey indicates a malformed field line: no `=`, an empty key,
	// or an empty value.
	NoValueForKey

	// NoClosingQuotationForValue indicates a quoted value with no second quote.
	NoClosingQuotationForValue

	// InvalidValueFormat indicates a stored value that failed conversion to
	// the type a caller requested.
	InvalidValueFormat
)

// String returns a short name suitable for logs and lint output.
func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "no-error"
	case NoSuchFile:
		return "no-such-file"
	case NoClosingBracketForSection:
		return "no-closing-bracket"
	case EmptySection:
		return "empty-section"
	case KeyOutsideSection:
		return "key-outside-section"
	case NoValueForKey:
		return "no-value-for-key"
	case NoClosingQuotationForValue:
		return "no-closing-quote"
	case InvalidValueFormat:
		return "invalid-value-format"
	default:
		return "unknown"
	}
}

// Message returns the human-readable message for a kind.
func (k ErrorKind) Message() string {
	switch k {
	case NoError:
		return "No error has occurred."
	case NoSuchFile:
		return "File does not exist."
	case NoClosingBracketForSection:
		return "No closing bracket found for section."
	case EmptySection:
		return "Section has no key-value pairs."
	case KeyOutsideSection:
		return "Key-value pair was found outside a section."
	case NoValueForKey:
		return "No value found for key."
	case NoClosingQuotationForValue:
		return "No closing double quotes for value."
	case InvalidValueFormat:
		return "Value has an invalid format."
	default:
		return "Unknown error."
	}
}

// ParseError describes a single failure detected while parsing.
type ParseError struct {
	Line   int       // 1-based line number; 0 when no line applies (NoSuchFile)
	Kind   ErrorKind // what went wrong
	Detail string    // optional context, e.g. the offending section name
}

func (e *ParseError) Error() string {
	msg := e.Kind.Message()
	if e.Detail != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Detail)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

// ValueError describes a conversion failure from a typed accessor.
type ValueError struct {
	Section string
	Key     string
	Value   string
	Err     error // the underlying strconv error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("section %q, key %q: %s (%q)",
		e.Section, e.Key, InvalidValueFormat.Message(), e.Value)
}

// Unwrap exposes the underlying conversion error.
func (e *ValueError) Unwrap() error {
	return e.Err
}

// Kind returns the taxonomy kind of a ValueError.
func (e *ValueError) Kind() ErrorKind {
	return InvalidValueFormat
}
