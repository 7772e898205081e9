package iniq

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// A single Parser must be safe to share; all mutable state is per call.
func TestParser_ConcurrentParse(t *testing.T) {
	parser := NewParser(nil)
	const goroutines = 100

	var wg sync.WaitGroup
	errs := make(chan error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			src := fmt.Sprintf("[worker]\nid=%d\nname=w%d\n", n, n)
			f, err := parser.ParseString(context.Background(), src)
			if err != nil {
				errs <- fmt.Errorf("goroutine %d: parse: %w", n, err)
				return
			}
			id, err := f.GetInt("worker", "id", -1)
			if err != nil || id != n {
				errs <- fmt.Errorf("goroutine %d: id = %d, %v", n, id, err)
			}
		}(i)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

// A parsed File is read-only; concurrent readers must never race.
func TestFile_ConcurrentReads(t *testing.T) {
	f := mustParse(t, "[srv]\nhost=example.com\nport=8080\nactive=yes\n")
	const goroutines = 100

	var wg sync.WaitGroup
	errs := make(chan error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if got := f.GetString("srv", "host", ""); got != "example.com" {
				errs <- fmt.Errorf("goroutine %d: host = %q", n, got)
				return
			}
			if port, err := f.GetInt("srv", "port", 0); err != nil || port != 8080 {
				errs <- fmt.Errorf("goroutine %d: port = %d, %v", n, port, err)
				return
			}
			if !f.GetBool("srv", "active", false) {
				errs <- fmt.Errorf("goroutine %d: active = false", n)
				return
			}
			if fields, ok := f.SectionFields("srv"); !ok || len(fields) != 3 {
				errs <- fmt.Errorf("goroutine %d: fields = %v, %v", n, fields, ok)
			}
		}(i)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

// Readers and reload checks may interleave freely on one Manager.
func TestManager_ConcurrentAccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.ini")
	if err := os.WriteFile(path, []byte("[a]\nk=v\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	m := NewManager(path, nil)
	if _, err := m.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	const goroutines = 50
	var wg sync.WaitGroup
	errs := make(chan error, goroutines*2)

	for i := 0; i < goroutines; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			f := m.File()
			if f == nil {
				errs <- fmt.Errorf("reader %d: File() = nil", n)
				return
			}
			if got := f.GetString("a", "k", ""); got != "v" {
				errs <- fmt.Errorf("reader %d: k = %q", n, got)
			}
		}(i)
		go func(n int) {
			defer wg.Done()
			if _, err := m.ReloadIfChanged(context.Background()); err != nil {
				errs <- fmt.Errorf("reloader %d: %w", n, err)
			}
		}(i)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
