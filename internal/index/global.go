package index

import (
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

var grepLocationPattern = regexp.MustCompile(`^(.+?):(\d+):`)

// Ensure runs gtags when no index exists yet. force rebuilds unconditionally.
func (ix *GlobalIndex) Ensure(force bool) error {
	if !force && ix.HasIndex() {
		return nil
	}
	if err := ix.checkGtags(); err != nil {
		return err
	}

	ix.logger.WithField("project", ix.root).Debug("running gtags")

	// Treat .h files as C++ so declarations in headers are indexed too.
	_, stderr, err := ix.runner(ix.root, []string{"GTAGSFORCECPP=1"}, "gtags")
	if err != nil {
		code := 1
		var exitErr *exec.ExitError
		if ok := asExitError(err, &exitErr); ok {
			code = exitErr.ExitCode()
		}
		return &IndexingError{ExitCode: code, Output: stderr}
	}
	return nil
}

func asExitError(err error, target **exec.ExitError) bool {
	if e, ok := err.(*exec.ExitError); ok {
		*target = e
		return true
	}
	return false
}

// ListSymbols returns every symbol name known to the index.
func (ix *GlobalIndex) ListSymbols() ([]string, error) {
	if err := ix.checkGlobal(); err != nil {
		return nil, err
	}
	stdout, _, _ := ix.runner(ix.root, nil, "global", "-c", "")
	symbols := make([]string, 0)
	for _, line := range strings.Split(strings.TrimSpace(stdout), "\n") {
		if line != "" {
			symbols = append(symbols, line)
		}
	}
	return symbols, nil
}

// FindDefinitions locates definitions of a symbol via `global -d`.
func (ix *GlobalIndex) FindDefinitions(name string) ([]Definition, error) {
	return ix.grepQuery(name, "-d")
}

// FindReferences locates references to a symbol via `global -r`.
func (ix *GlobalIndex) FindReferences(name string) ([]Definition, error) {
	return ix.grepQuery(name, "-r")
}

func (ix *GlobalIndex) grepQuery(name, mode string) ([]Definition, error) {
	if err := ix.checkGlobal(); err != nil {
		return nil, err
	}
	stdout, _, _ := ix.runner(ix.root, nil, "global", mode, "--result=grep", name)
	defs := make([]Definition, 0)
	for _, line := range strings.Split(strings.TrimSpace(stdout), "\n") {
		m := grepLocationPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		lineNo, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		defs = append(defs, Definition{Name: name, File: m[1], Line: lineNo})
	}
	return defs, nil
}

// DefinitionsInFile lists definitions in one file via `global -f`.
// Output lines look like: name<TAB>line<TAB>file<TAB>source.
func (ix *GlobalIndex) DefinitionsInFile(file string) ([]Definition, error) {
	if err := ix.checkGlobal(); err != nil {
		return nil, err
	}
	stdout, _, _ := ix.runner(ix.root, nil, "global", "-f", file)
	defs := make([]Definition, 0)
	for _, line := range strings.Split(strings.TrimSpace(stdout), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		lineNo, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		defs = append(defs, Definition{Name: fields[0], File: fields[2], Line: lineNo})
	}
	return defs, nil
}
