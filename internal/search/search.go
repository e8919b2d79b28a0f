// Package search wraps the optional ripgrep collaborator used for
// project-wide text scans. When rg is not installed, searches return no
// matches instead of failing.
package search

import (
	"os/exec"
	"strconv"
	"strings"
)

// Match is a single search hit.
type Match struct {
	File string
	Line int
	Text string
}

// Searcher runs a regex search across a project's source files.
type Searcher interface {
	Available() bool
	Search(pattern, fileType string) ([]Match, error)
}

// CommandRunner executes a command in dir and returns its stdout.
type CommandRunner func(dir string, name string, args ...string) (string, error)

// LookPath locates an executable, defaulting to exec.LookPath.
type LookPath func(name string) (string, error)

func defaultRunner(dir string, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	return string(out), err
}

// Ripgrep is the rg-backed Searcher.
type Ripgrep struct {
	root     string
	runner   CommandRunner
	lookPath LookPath
}

// Option configures a Ripgrep searcher.
type Option func(*Ripgrep)

// WithRunner replaces the process runner.
func WithRunner(r CommandRunner) Option {
	return func(s *Ripgrep) { s.runner = r }
}

// WithLookPath replaces the binary locator.
func WithLookPath(lp LookPath) Option {
	return func(s *Ripgrep) { s.lookPath = lp }
}

// NewRipgrep creates a searcher rooted at the project directory.
func NewRipgrep(root string, opts ...Option) *Ripgrep {
	s := &Ripgrep{
		root:     root,
		runner:   defaultRunner,
		lookPath: exec.LookPath,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Available reports whether rg is installed.
func (s *Ripgrep) Available() bool {
	_, err := s.lookPath("rg")
	return err == nil
}

// Search runs `rg --no-heading -n pattern` restricted to fileType.
// Returns no matches when rg is absent or exits non-zero (rg exits 1 when
// nothing matched), so callers degrade gracefully either way.
func (s *Ripgrep) Search(pattern, fileType string) ([]Match, error) {
	if !s.Available() {
		return nil, nil
	}

	args := []string{"--no-heading", "-n", pattern}
	if fileType != "" {
		args = append(args, "--type", fileType)
	}
	out, err := s.runner(s.root, "rg", args...)
	if err != nil && out == "" {
		return nil, nil
	}

	matches := make([]Match, 0)
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		file, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		lineStr, text, ok := strings.Cut(rest, ":")
		if !ok {
			continue
		}
		lineNo, convErr := strconv.Atoi(lineStr)
		if convErr != nil {
			continue
		}
		matches = append(matches, Match{File: file, Line: lineNo, Text: text})
	}
	return matches, nil
}
