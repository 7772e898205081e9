package iniq

import (
	"bytes"
	"fmt"
	"strings"
)

// Generator emits INI text from a File. The output is deterministic
// (sections and keys in sorted order) and parses back to the same store
// under DefaultOptions.
type Generator struct{}

// NewGenerator creates a new INI generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders every section of f. Keys that would read back as a
// comment or a header are written behind a padding space, and values that
// need it are quoted, so any File from a clean parse renders. Sections
// without fields and fields the grammar cannot express (trailing spaces in
// a value, a newline, a `=` in a key) are reported as errors rather than
// silently altered; they can only occur on a File that did not parse
// successfully or was built by hand.
func (g *Generator) Generate(f *File) (string, error) {
	var buf bytes.Buffer

	for i, name := range f.SectionNames() {
		fields, ok := f.SectionFields(name)
		if !ok {
			return "", fmt.Errorf("section %q has no fields", name)
		}
		if err := checkSectionName(name); err != nil {
			return "", err
		}
		for _, field := range fields {
			if err := checkField(name, field); err != nil {
				return "", err
			}
		}

		if i > 0 {
			buf.WriteByte('\n')
		}
		g.writeSection(&buf, name, fields)
	}

	return buf.String(), nil
}

// writeSection writes one `[name]` header and its fields.
func (g *Generator) writeSection(buf *bytes.Buffer, name string, fields []Field) {
	buf.WriteByte('[')
	buf.WriteString(name)
	buf.WriteString("]\n")

	for _, field := range fields {
		buf.WriteString(padKey(field.Key))
		buf.WriteByte('=')
		buf.WriteString(quoteValue(field.Value))
		buf.WriteByte('\n')
	}
}

// checkSectionName rejects names the grammar cannot express.
func checkSectionName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("section name is empty")
	case strings.ContainsAny(name, "]\n"):
		return fmt.Errorf("section name %q contains a closing bracket or newline", name)
	case name != trimRight(name):
		return fmt.Errorf("section name %q has trailing spaces", name)
	}
	return nil
}

// checkField rejects keys and values the grammar cannot express.
func checkField(section string, field Field) error {
	key, value := field.Key, field.Value
	switch {
	case key == "":
		return fmt.Errorf("section %q: key is empty", section)
	case key != trim(key):
		return fmt.Errorf("section %q: key %q has surrounding spaces", section, key)
	case strings.ContainsAny(key, "=\n"):
		return fmt.Errorf("section %q: key %q contains '=' or a newline", section, key)
	case strings.ContainsRune(value, '\n'):
		return fmt.Errorf("section %q, key %q: value contains a newline", section, key)
	case strings.HasSuffix(value, " "):
		return fmt.Errorf("section %q, key %q: value has trailing spaces", section, key)
	}
	return nil
}

// quoteValue wraps a value in double quotes when the plain form would not
// survive a round trip: an empty value, a leading space or quote, an inline
// comment character, or a trailing carriage return the line scanner would
// otherwise swallow.
func quoteValue(value string) string {
	if value == "" {
		return `""`
	}
	if value[0] == ' ' || value[0] == '"' ||
		strings.ContainsAny(value, DefaultInlineCommentPrefixes) ||
		strings.HasSuffix(value, "\r") {
		return `"` + value + `"`
	}
	return value
}

// padKey prefixes a key whose first byte would classify the whole line as a
// comment or a section header with a single space. The parser trims the
// space back off the key, so such keys survive a round trip. Keys like
// `;user` and `[x` arise from parsing lines written with leading spaces.
func padKey(key string) string {
	if key[0] == '[' || strings.IndexByte(DefaultCommentPrefixes, key[0]) >= 0 {
		return " " + key
	}
	return key
}
