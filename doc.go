// Package iniq reads, queries, and writes INI-style configuration files:
// named sections of key-value pairs with comment and quoting rules.
//
// # Overview
//
// The package parses text such as:
//
//	; application settings
//	[server]
//	host = example.com
//	port = 8080
//	motd = "hello; world"   ; quoted values keep their semicolons
//
// into an immutable File, then answers typed lookups over it:
//
//	parser := iniq.NewParser(nil)
//	f, err := parser.ParseFile(ctx, "app.ini")
//	if err != nil {
//	    log.Fatalf("parse error: %v", err)
//	}
//	host := f.GetString("server", "host", "localhost")
//	port, err := f.GetInt("server", "port", 80)
//
// # Grammar
//
// Input is processed line by line, in one pass:
//
//	file      := line*
//	line      := blank | comment | section | field
//	comment   := <start-prefix> any*
//	section   := '[' name ']'           (name is trailing-trimmed)
//	field     := key '=' value          (split at the first '=')
//	value     := quoted | plain
//	quoted    := '"' text '"'           (text may contain ';' and '#')
//	plain     := text [inline-comment]  (comment starts at the first ';')
//
// Trimming removes ASCII spaces only; tabs are significant. Classification
// looks at the first character of the trailing-trimmed line, so a header or
// comment marker preceded by spaces is treated as field text. Quoting
// preserves leading spaces and comment characters in a value; the region
// between the first and last quote, trailing-trimmed, is the value.
//
// # Error Handling
//
// Every failure is classified by an ErrorKind: NoSuchFile,
// NoClosingBracketForSection, EmptySection, KeyOutsideSection,
// NoValueForKey, NoClosingQuotationForValue, and InvalidValueFormat for
// typed accessor conversions. By default parsing stops at the first
// malformed line and File.Err returns it; with Options.CollectAllErrors
// every failing line is recorded and File.Errors lists them in input order.
// A section must own at least one field by the time the next header starts
// or the input ends, and a key-value line before any header is an error.
// A parse cut short by a canceled context or a reader failure records no
// parse error; that abort surfaces only through Parse's returned error.
//
// Accessor conversions never panic: GetInt, GetInt64 and GetFloat64 return
// the caller's default plus a *ValueError when a stored value does not
// parse, and the default alone when the key is absent or empty. GetBool
// matches {"true","yes","on","1"} and {"false","no","off","0"} in any case
// and falls back to the default otherwise.
//
// # Concurrency
//
// A Parser is stateless across calls and safe for concurrent use. A File is
// immutable after the parse finishes; any number of goroutines may read it.
// Manager serializes reloads behind a RWMutex and swaps whole snapshots, so
// a reader always sees one consistent File.
//
// # Writing
//
// Generator renders a File back to INI text in sorted order, quoting values
// that would otherwise lose leading spaces or grow inline comments, and
// padding keys that would otherwise read back as comments or headers.
// Output produced by Generate parses back to an identical store under
// default options.
package iniq
