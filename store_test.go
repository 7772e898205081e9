package iniq

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"testing"
)

func mustParse(t *testing.T, src string) *File {
	t.Helper()
	f, err := NewParser(nil).ParseString(context.Background(), src)
	if err != nil {
		t.Fatalf("ParseString(%q) error = %v", src, err)
	}
	return f
}

func TestFile_GetString(t *testing.T) {
	f := mustParse(t, "[a]\nname=widget\nempty=\"\"\n")

	tests := []struct {
		name     string
		section  string
		key      string
		fallback string
		want     string
	}{
		{"present", "a", "name", "dflt", "widget"},
		{"missing key", "a", "nope", "dflt", "dflt"},
		{"missing section", "b", "name", "dflt", "dflt"},
		{"empty value falls back", "a", "empty", "dflt", "dflt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.GetString(tt.section, tt.key, tt.fallback); got != tt.want {
				t.Errorf("GetString(%q, %q) = %q, want %q", tt.section, tt.key, got, tt.want)
			}
		})
	}
}

// Get returns the stored text as-is; GetString treats the empty string as
// unset. The two differ only for a field stored as "".
func TestFile_GetVersusGetString(t *testing.T) {
	f := mustParse(t, "[a]\nempty=\"\"\n")

	if got := f.Get("a", "empty", "dflt"); got != "" {
		t.Errorf("Get(a, empty) = %q, want %q", got, "")
	}
	if got := f.GetString("a", "empty", "dflt"); got != "dflt" {
		t.Errorf("GetString(a, empty) = %q, want %q", got, "dflt")
	}
	if got := f.Get("a", "nope", "dflt"); got != "dflt" {
		t.Errorf("Get(a, nope) = %q, want %q", got, "dflt")
	}
}

func TestFile_GetInt(t *testing.T) {
	f := mustParse(t, "[n]\nport=8080\nneg=-3\nbad=12abc\nfloaty=1.5\nempty=\"\"\n")

	tests := []struct {
		name    string
		key     string
		want    int
		wantErr bool
	}{
		{"plain", "port", 8080, false},
		{"negative", "neg", -3, false},
		{"missing uses default", "nope", 7, false},
		{"empty uses default", "empty", 7, false},
		{"trailing garbage", "bad", 7, true},
		{"float is not int", "floaty", 7, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.GetInt("n", tt.key, 7)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetInt(n, %q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("GetInt(n, %q) = %d, want %d", tt.key, got, tt.want)
			}
		})
	}
}

func TestFile_GetInt_ErrorShape(t *testing.T) {
	f := mustParse(t, "[n]\nbad=12abc\n")

	_, err := f.GetInt("n", "bad", 0)
	var verr *ValueError
	if !errors.As(err, &verr) {
		t.Fatalf("error %v is not a *ValueError", err)
	}
	if verr.Section != "n" || verr.Key != "bad" || verr.Value != "12abc" {
		t.Errorf("ValueError = %+v, want section n key bad value 12abc", verr)
	}

	var nerr *strconv.NumError
	if !errors.As(err, &nerr) {
		t.Errorf("error %v does not wrap a *strconv.NumError", err)
	}
}

func TestFile_GetInt64(t *testing.T) {
	f := mustParse(t, "[n]\nbig=9223372036854775807\nbad=ten\n")

	got, err := f.GetInt64("n", "big", 0)
	if err != nil || got != 9223372036854775807 {
		t.Errorf("GetInt64(n, big) = %d, %v; want max int64, nil", got, err)
	}
	if got, err := f.GetInt64("n", "bad", -1); err == nil || got != -1 {
		t.Errorf("GetInt64(n, bad) = %d, %v; want -1 and error", got, err)
	}
	if got, err := f.GetInt64("n", "nope", 5); err != nil || got != 5 {
		t.Errorf("GetInt64(n, nope) = %d, %v; want 5, nil", got, err)
	}
}

func TestFile_GetFloat64(t *testing.T) {
	f := mustParse(t, "[n]\nratio=0.75\nexp=1e3\nbad=pi\n")

	if got, err := f.GetFloat64("n", "ratio", 0); err != nil || got != 0.75 {
		t.Errorf("GetFloat64(n, ratio) = %v, %v; want 0.75, nil", got, err)
	}
	if got, err := f.GetFloat64("n", "exp", 0); err != nil || got != 1000 {
		t.Errorf("GetFloat64(n, exp) = %v, %v; want 1000, nil", got, err)
	}
	if got, err := f.GetFloat64("n", "bad", 2.5); err == nil || got != 2.5 {
		t.Errorf("GetFloat64(n, bad) = %v, %v; want 2.5 and error", got, err)
	}
}

func TestFile_GetBool(t *testing.T) {
	f := mustParse(t, "[b]\n" +
		"t1=true\nt2=YES\nt3=On\nt4=1\n" +
		"f1=false\nf2=No\nf3=OFF\nf4=0\n" +
		"odd=2\nword=maybe\nempty=\"\"\n")

	tests := []struct {
		key      string
		fallback bool
		want     bool
	}{
		{"t1", false, true},
		{"t2", false, true},
		{"t3", false, true},
		{"t4", false, true},
		{"f1", true, false},
		{"f2", true, false},
		{"f3", true, false},
		{"f4", true, false},
		{"odd", true, true},
		{"odd", false, false},
		{"word", true, true},
		{"empty", true, true},
		{"nope", false, false},
	}
	for _, tt := range tests {
		if got := f.GetBool("b", tt.key, tt.fallback); got != tt.want {
			t.Errorf("GetBool(b, %q, %v) = %v, want %v", tt.key, tt.fallback, got, tt.want)
		}
	}
}

func TestFile_SectionNames(t *testing.T) {
	f := mustParse(t, "[zeta]\nk=1\n[alpha]\nk=2\n[mid]\nk=3\n")

	want := []string{"alpha", "mid", "zeta"}
	if got := f.SectionNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("SectionNames() = %v, want %v", got, want)
	}
}

// A section whose header parsed but whose body failed is still listed.
func TestFile_SectionNames_IncludesFieldless(t *testing.T) {
	f, _ := NewParser(nil).ParseString(context.Background(), "[only]\n")

	want := []string{"only"}
	if got := f.SectionNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("SectionNames() = %v, want %v", got, want)
	}
}

func TestFile_SectionFields(t *testing.T) {
	f := mustParse(t, "[a]\nzz=1\naa=2\nmm=3\n")

	fields, ok := f.SectionFields("a")
	if !ok {
		t.Fatal("SectionFields(a) ok = false, want true")
	}
	want := []Field{{"aa", "2"}, {"mm", "3"}, {"zz", "1"}}
	if !reflect.DeepEqual(fields, want) {
		t.Errorf("SectionFields(a) = %v, want %v", fields, want)
	}

	// The slice is a copy; mutating it must not leak into the File.
	fields[0].Value = "tampered"
	again, _ := f.SectionFields("a")
	if again[0].Value != "2" {
		t.Errorf("SectionFields(a)[0].Value = %q after caller mutation, want %q", again[0].Value, "2")
	}
}

func TestFile_SectionFields_Absent(t *testing.T) {
	f, _ := NewParser(nil).ParseString(context.Background(), "[empty]\n")

	if fields, ok := f.SectionFields("missing"); ok || fields != nil {
		t.Errorf("SectionFields(missing) = %v, %v; want nil, false", fields, ok)
	}
	// Header known, but no fields ever landed.
	if fields, ok := f.SectionFields("empty"); ok || fields != nil {
		t.Errorf("SectionFields(empty) = %v, %v; want nil, false", fields, ok)
	}
}

func TestFile_HasSection(t *testing.T) {
	f := mustParse(t, "[a]\nk=v\n")

	if !f.HasSection("a") {
		t.Errorf("HasSection(a) = false, want true")
	}
	if f.HasSection("b") {
		t.Errorf("HasSection(b) = true, want false")
	}
}

func TestFile_ErrorsCopy(t *testing.T) {
	opts := DefaultOptions()
	opts.CollectAllErrors = true
	f, _ := NewParser(&opts).ParseString(context.Background(), "bad\nworse\n")

	errs := f.Errors()
	if len(errs) != 2 {
		t.Fatalf("Errors() len = %d, want 2", len(errs))
	}
	errs[0] = nil
	if f.Errors()[0] == nil {
		t.Error("Errors() aliases internal state")
	}
}

func TestFile_SuccessAndErr(t *testing.T) {
	ok := mustParse(t, "[a]\nk=v\n")
	if !ok.Success() || ok.Err() != nil || ok.Errors() != nil {
		t.Errorf("clean parse: Success=%v Err=%v Errors=%v", ok.Success(), ok.Err(), ok.Errors())
	}

	bad, err := NewParser(nil).ParseString(context.Background(), "k=v\n")
	if bad.Success() {
		t.Error("Success() = true on failed parse")
	}
	if bad.Err() != err {
		t.Errorf("Err() = %v, want %v", bad.Err(), err)
	}
}
