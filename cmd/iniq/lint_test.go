package main

import (
	"testing"

	"github.com/ZebulonRouseFrantzich/iniq"
	"github.com/ZebulonRouseFrantzich/iniq/internal/testutil"
)

func TestFormatLintReport(t *testing.T) {
	errs := []*iniq.ParseError{
		{Line: 3, Kind: iniq.NoValueForKey},
		{Line: 5, Kind: iniq.EmptySection, Detail: `section "a"`},
	}

	got := formatLintReport("app.ini", errs)
	want := "app.ini: line 3: No value found for key. [no-value-for-key]\n" +
		"app.ini: line 5: Section has no key-value pairs. (section \"a\") [empty-section]\n" +
		"2 problems found\n"
	if got != want {
		t.Errorf("formatLintReport() = %q, want %q", got, want)
	}
}

func TestFormatLintReport_Singular(t *testing.T) {
	errs := []*iniq.ParseError{{Line: 1, Kind: iniq.KeyOutsideSection}}

	got := formatLintReport("x.ini", errs)
	want := "x.ini: line 1: Key-value pair was found outside a section. [key-outside-section]\n" +
		"1 problem found\n"
	if got != want {
		t.Errorf("formatLintReport() = %q, want %q", got, want)
	}
}

func TestRunLint(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		args     []string
		wantCode int
	}{
		{"clean file", "[a]\nk=v\n", nil, 0},
		{"broken file", "[a]\nk=v\nbad\n", nil, 1},
		{"broken file collect all", "x=1\n[a]\nbad\nk=2\n", []string{"--all"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.TempINI(t, tt.content)
			code, err := runLint(append(tt.args, path))
			if err != nil {
				t.Fatalf("runLint() error = %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("runLint() code = %d, want %d", code, tt.wantCode)
			}
		})
	}
}

func TestRunLint_MissingFile(t *testing.T) {
	code, err := runLint([]string{"/nonexistent/nope.ini"})
	if err != nil {
		t.Fatalf("runLint() error = %v", err)
	}
	if code != 1 {
		t.Errorf("runLint() code = %d, want 1", code)
	}
}

func TestRunLint_NoFile(t *testing.T) {
	if _, err := runLint(nil); err == nil {
		t.Error("runLint() error = nil without a file, want error")
	}
}
