package iniq

import (
	"sort"
	"strconv"
	"strings"
)

// Success reports whether the parse recorded no errors. It sees parse
// errors only: a parse aborted by a canceled context or a failing reader
// leaves nothing behind here, so the error returned by Parse is the one
// signal that the File may be a truncated prefix of the input.
func (f *File) Success() bool {
	return len(f.errs) == 0
}

// Err returns the first parse error, or nil on success.
func (f *File) Err() error {
	if len(f.errs) == 0 {
		return nil
	}
	return f.errs[0]
}

// Errors returns every parse error in input order. The slice is a copy.
func (f *File) Errors() []*ParseError {
	if len(f.errs) == 0 {
		return nil
	}
	out := make([]*ParseError, len(f.errs))
	copy(out, f.errs)
	return out
}

// Get returns the raw value of key in section, or def when the section or
// the key is absent. Matching is exact and case-sensitive.
func (f *File) Get(section, key, def string) string {
	fields, ok := f.sections[section]
	if !ok {
		return def
	}
	value, ok := fields[key]
	if !ok {
		return def
	}
	return value
}

// GetString returns the value of key in section. An absent key and a stored
// empty string both yield def; an empty value is the sentinel for "use the
// default".
func (f *File) GetString(section, key, def string) string {
	value := f.Get(section, key, "")
	if value == "" {
		return def
	}
	return value
}

// GetInt converts the value of key in section to an int. An absent key or
// the empty-string sentinel yields (def, nil); a present value that does not
// parse as a base-10 integer yields def and a *ValueError.
func (f *File) GetInt(section, key string, def int) (int, error) {
	value := f.Get(section, key, "")
	if value == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return def, &ValueError{Section: section, Key: key, Value: value, Err: err}
	}
	return n, nil
}

// GetInt64 is GetInt for 64-bit values.
func (f *File) GetInt64(section, key string, def int64) (int64, error) {
	value := f.Get(section, key, "")
	if value == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return def, &ValueError{Section: section, Key: key, Value: value, Err: err}
	}
	return n, nil
}

// GetFloat64 converts the value of key in section to a float64 under the
// same rules as GetInt.
func (f *File) GetFloat64(section, key string, def float64) (float64, error) {
	value := f.Get(section, key, "")
	if value == "" {
		return def, nil
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return def, &ValueError{Section: section, Key: key, Value: value, Err: err}
	}
	return n, nil
}

// GetBool converts the value of key in section to a bool. The match is
// case-insensitive: "true", "yes", "on" and "1" are true; "false", "no",
// "off" and "0" are false. Anything else, including an absent key, yields
// def. GetBool never fails.
func (f *File) GetBool(section, key string, def bool) bool {
	switch strings.ToLower(f.Get(section, key, "")) {
	case "true", "yes", "on", "1":
		return true
	case "false", "no", "off", "0":
		return false
	default:
		return def
	}
}

// HasSection reports whether a section name was seen during the parse, even
// if the section never received a field.
func (f *File) HasSection(name string) bool {
	_, ok := f.names[name]
	return ok
}

// SectionNames returns every section name seen during the parse, sorted.
// Names of sections that never received a field are included.
func (f *File) SectionNames() []string {
	out := make([]string, 0, len(f.names))
	for name := range f.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// SectionFields returns the fields of a section sorted by key, and whether
// the section holds any fields at all. The slice is a copy; mutating it
// does not affect the File.
func (f *File) SectionFields(section string) ([]Field, bool) {
	fields, ok := f.sections[section]
	if !ok {
		return nil, false
	}
	out := make([]Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, Field{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, true
}
