package iniq

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parser reads INI text into a File. A Parser carries configuration only and
// may be shared by concurrent goroutines; all per-call state lives in a
// parseState local to each call.
type Parser struct {
	opts   Options
	logger Logger
}

// NewParser creates a new parser. A nil opts selects DefaultOptions.
func NewParser(opts *Options) *Parser {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	logger := o.Logger
	if logger == nil {
		logger = defaultLogger()
	}
	return &Parser{opts: o, logger: logger}
}

// parseState is the transient state machine threaded through the drive loop.
// It is discarded once the File is finalized.
type parseState struct {
	line          int    // 1-based number of the line being processed
	section       string // current section name
	sectionLine   int    // line number of the current section's header
	inSection     bool
	emptyReported bool // EmptySection already recorded for the current section
	file          *File
}

// Parse reads lines from r until end of input or, in stop-on-first-error
// mode, until the first malformed line. The returned File is always non-nil
// and reflects everything parsed before the first error; err is the first
// parse error, an I/O error from the reader, or the context's error when ctx
// is canceled mid-parse.
func (p *Parser) Parse(ctx context.Context, r io.Reader) (*File, error) {
	st := &parseState{file: newFile()}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialLineBuffer), maxLineBytes)

	stopped := false
	for st.line = 1; scanner.Scan(); st.line++ {
		if err := ctx.Err(); err != nil {
			return st.file, err
		}
		if perr := p.parseLine(st, trimRight(scanner.Text())); perr != nil {
			st.file.errs = append(st.file.errs, perr)
			p.logger.Debug("parse error", "line", perr.Line, "kind", perr.Kind)
			if !p.opts.CollectAllErrors {
				stopped = true
				break
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return st.file, fmt.Errorf("read input: %w", err)
	}

	// A section still open at end of input must own at least one field.
	// One already reported empty at a header line is not reported again.
	if !stopped && st.inSection && !st.emptyReported &&
		len(st.file.sections[st.section]) == 0 {
		st.file.errs = append(st.file.errs, &ParseError{
			Line:   st.sectionLine,
			Kind:   EmptySection,
			Detail: fmt.Sprintf("section %q", st.section),
		})
	}

	p.logger.Debug("parse finished",
		"sections", len(st.file.names), "errors", len(st.file.errs))
	if err := st.file.Err(); err != nil {
		return st.file, err
	}
	return st.file, nil
}

// ParseString parses a config from a string.
func (p *Parser) ParseString(ctx context.Context, src string) (*File, error) {
	return p.Parse(ctx, strings.NewReader(src))
}

// ParseFile opens path and parses its contents. A path that cannot be
// opened yields a File whose single error has kind NoSuchFile.
func (p *Parser) ParseFile(ctx context.Context, path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		p.logger.Debug("open failed", "path", path, "error", err)
		f := newFile()
		perr := &ParseError{Kind: NoSuchFile, Detail: path}
		f.errs = append(f.errs, perr)
		return f, perr
	}
	defer fh.Close()
	return p.Parse(ctx, fh)
}

// parseLine classifies one trailing-trimmed line and dispatches it.
// Classification inspects the first raw character, so a line with leading
// spaces is never a comment or a section header.
func (p *Parser) parseLine(st *parseState, line string) *ParseError {
	if len(line) == 0 {
		return nil
	}
	if isCommentLine(line, p.opts.CommentPrefixes) {
		return nil
	}
	if line[0] == '[' {
		return p.parseSection(st, line)
	}
	if !strings.Contains(line, "=") {
		return &ParseError{Line: st.line, Kind: NoValueForKey}
	}
	return p.parseField(st, line)
}

// parseSection validates a header line and makes its name current. The
// previous section must already own at least one field before the new
// header is accepted. In collect mode the header is still processed after
// that check fails, so that later fields attribute to the right section;
// only the first error of the line is reported, and a section's emptiness
// is reported at most once even when the header that follows it fails.
func (p *Parser) parseSection(st *parseState, line string) *ParseError {
	var perr *ParseError
	if st.inSection && !st.emptyReported && len(st.file.sections[st.section]) == 0 {
		perr = &ParseError{
			Line:   st.line,
			Kind:   EmptySection,
			Detail: fmt.Sprintf("section %q", st.section),
		}
		if !p.opts.CollectAllErrors {
			return perr
		}
		st.emptyReported = true
	}

	end := strings.IndexByte(line, ']')
	if end < 0 {
		if perr != nil {
			return perr
		}
		return &ParseError{Line: st.line, Kind: NoClosingBracketForSection}
	}

	// Text after the closing bracket is ignored. The name keeps leading
	// spaces; only the trailing side is trimmed.
	name := trimRight(line[1:end])
	if name == "" {
		if perr != nil {
			return perr
		}
		return &ParseError{Line: st.line, Kind: EmptySection, Detail: "section name is empty"}
	}

	st.section = name
	st.sectionLine = st.line
	st.inSection = true
	st.emptyReported = false
	st.file.names[name] = struct{}{}
	return perr
}

// parseField splits a key-value line at its first '=' and stores the field.
func (p *Parser) parseField(st *parseState, line string) *ParseError {
	if !st.inSection {
		return &ParseError{Line: st.line, Kind: KeyOutsideSection}
	}

	eq := strings.IndexByte(line, '=')
	key := trim(line[:eq])
	value := trim(line[eq+1:])

	if key == "" {
		return &ParseError{Line: st.line, Kind: NoValueForKey, Detail: "key is empty"}
	}
	if value == "" {
		return &ParseError{Line: st.line, Kind: NoValueForKey, Detail: fmt.Sprintf("key %q", key)}
	}

	if value[0] == '"' {
		// Quoted: the value is everything strictly between the first quote
		// and the last quote, trailing-trimmed. Leading spaces inside the
		// quotes survive; inline comments do not apply.
		closing := strings.LastIndexByte(value, '"')
		if closing == 0 {
			return &ParseError{Line: st.line, Kind: NoClosingQuotationForValue, Detail: fmt.Sprintf("key %q", key)}
		}
		value = trimRight(value[1:closing])
	} else {
		value = stripInlineComment(value, p.opts.InlineCommentPrefixes)
	}

	st.file.insert(st.section, key, value)
	return nil
}

// insert records a field, keeping the first write for a duplicate key.
func (f *File) insert(section, key, value string) {
	m := f.sections[section]
	if m == nil {
		m = make(map[string]string)
		f.sections[section] = m
	}
	if _, exists := m[key]; !exists {
		m[key] = value
	}
}
