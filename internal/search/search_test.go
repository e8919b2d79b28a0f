package search

import (
	"errors"
	"testing"
)

func found(name string) (string, error) { return "/usr/bin/" + name, nil }

func notFound(name string) (string, error) { return "", errors.New("not found") }

func TestSearchParsesMatches(t *testing.T) {
	var gotArgs []string
	runner := func(dir, name string, args ...string) (string, error) {
		gotArgs = args
		return "src/ops.c:12:    dev->read = uart_read;\nsrc/ops.c:13:    dev->write = uart_write;\n", nil
	}
	s := NewRipgrep("/proj", WithRunner(runner), WithLookPath(found))

	matches, err := s.Search(`=\s*\w+`, "c")

	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	want := Match{File: "src/ops.c", Line: 12, Text: "    dev->read = uart_read;"}
	if matches[0] != want {
		t.Errorf("matches[0] = %+v, want %+v", matches[0], want)
	}
	wantArgs := []string{"--no-heading", "-n", `=\s*\w+`, "--type", "c"}
	if len(gotArgs) != len(wantArgs) {
		t.Fatalf("rg args = %v, want %v", gotArgs, wantArgs)
	}
	for i := range wantArgs {
		if gotArgs[i] != wantArgs[i] {
			t.Fatalf("rg args = %v, want %v", gotArgs, wantArgs)
		}
	}
}

func TestSearchOmitsTypeFilterWhenEmpty(t *testing.T) {
	var gotArgs []string
	runner := func(dir, name string, args ...string) (string, error) {
		gotArgs = args
		return "", nil
	}
	s := NewRipgrep("/proj", WithRunner(runner), WithLookPath(found))

	if _, err := s.Search("pattern", ""); err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	for _, arg := range gotArgs {
		if arg == "--type" {
			t.Errorf("rg args %v include --type for empty file type", gotArgs)
		}
	}
}

func TestSearchNoMatchesIsNotAnError(t *testing.T) {
	// rg exits 1 when nothing matched.
	runner := func(dir, name string, args ...string) (string, error) {
		return "", errors.New("exit status 1")
	}
	s := NewRipgrep("/proj", WithRunner(runner), WithLookPath(found))

	matches, err := s.Search("pattern", "c")

	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if matches != nil {
		t.Errorf("matches = %v, want nil", matches)
	}
}

func TestSearchSkipsMalformedLines(t *testing.T) {
	runner := func(dir, name string, args ...string) (string, error) {
		return "no separators here\nfile.c:notanumber:text\nfile.c:5:ok\n", nil
	}
	s := NewRipgrep("/proj", WithRunner(runner), WithLookPath(found))

	matches, err := s.Search("pattern", "c")

	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(matches) != 1 || matches[0].Line != 5 {
		t.Errorf("matches = %+v, want single match at line 5", matches)
	}
}

func TestSearchUnavailableReturnsNothing(t *testing.T) {
	ran := false
	runner := func(dir, name string, args ...string) (string, error) {
		ran = true
		return "x:1:y", nil
	}
	s := NewRipgrep("/proj", WithRunner(runner), WithLookPath(notFound))

	if s.Available() {
		t.Fatal("Available = true with missing rg")
	}
	matches, err := s.Search("pattern", "c")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if matches != nil {
		t.Errorf("matches = %v, want nil", matches)
	}
	if ran {
		t.Error("runner invoked despite missing rg")
	}
}
