// Package index wraps the symbol-indexing collaborators: GNU Global for
// definitions, references, and symbol listings, and Universal Ctags for
// function body bounds. Both run as external processes; a CommandRunner can
// be injected so tests run without the binaries.
package index

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/callscope-dev/callscope/internal/lang"
)

// GtagsFile is the primary on-disk artifact of the GNU Global index.
const GtagsFile = "GTAGS"

// Definition is a symbol definition or reference location.
type Definition struct {
	Name string `json:"name"`
	File string `json:"file"`
	Line int    `json:"line"`
}

// Body holds the bounds and source text of a function body.
type Body struct {
	File      string `json:"file"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
	Source    string `json:"source"`
}

// Index resolves symbols for a single project.
type Index interface {
	ListSymbols() ([]string, error)
	FindDefinitions(name string) ([]Definition, error)
	FindReferences(name string) ([]Definition, error)
	DefinitionsInFile(file string) ([]Definition, error)
	FunctionBody(def Definition, language lang.Language) (*Body, error)
	FreshnessToken() int64
}

// CommandRunner executes an external command in dir and returns its stdout
// and stderr. A non-zero exit is reported through err.
type CommandRunner func(dir string, env []string, name string, args ...string) (stdout, stderr string, err error)

// LookPath locates an executable, defaulting to exec.LookPath.
type LookPath func(name string) (string, error)

func defaultRunner(dir string, env []string, name string, args ...string) (string, string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}
	var stdout, stderr captureBuffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

type captureBuffer struct {
	data []byte
}

func (b *captureBuffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

func (b *captureBuffer) String() string {
	return string(b.data)
}

// GlobalIndex is the GNU Global + Universal Ctags backed Index.
type GlobalIndex struct {
	root     string
	runner   CommandRunner
	lookPath LookPath
	logger   *logrus.Logger
}

// Option configures a GlobalIndex.
type Option func(*GlobalIndex)

// WithRunner replaces the process runner.
func WithRunner(r CommandRunner) Option {
	return func(ix *GlobalIndex) { ix.runner = r }
}

// WithLookPath replaces the binary locator.
func WithLookPath(lp LookPath) Option {
	return func(ix *GlobalIndex) { ix.lookPath = lp }
}

// WithLogger attaches a logger.
func WithLogger(l *logrus.Logger) Option {
	return func(ix *GlobalIndex) { ix.logger = l }
}

// New creates an index rooted at the project directory.
func New(projectDir string, opts ...Option) *GlobalIndex {
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		abs = projectDir
	}
	ix := &GlobalIndex{
		root:     abs,
		runner:   defaultRunner,
		lookPath: exec.LookPath,
		logger:   logrus.New(),
	}
	for _, opt := range opts {
		opt(ix)
	}
	return ix
}

// Root returns the canonicalized project root.
func (ix *GlobalIndex) Root() string {
	return ix.root
}

func (ix *GlobalIndex) checkGlobal() error {
	if _, err := ix.lookPath("global"); err != nil {
		return missingGlobal()
	}
	return nil
}

func (ix *GlobalIndex) checkGtags() error {
	if _, err := ix.lookPath("gtags"); err != nil {
		return missingGlobal()
	}
	return nil
}

func (ix *GlobalIndex) checkCtags() error {
	if _, err := ix.lookPath("ctags"); err != nil {
		return missingCtags()
	}
	return nil
}

// FreshnessToken returns the GTAGS artifact mtime in UnixNano, or 0 when
// the index has never been built.
func (ix *GlobalIndex) FreshnessToken() int64 {
	info, err := os.Stat(filepath.Join(ix.root, GtagsFile))
	if err != nil {
		return 0
	}
	return info.ModTime().UnixNano()
}

// HasIndex reports whether a GTAGS artifact exists.
func (ix *GlobalIndex) HasIndex() bool {
	return ix.FreshnessToken() != 0
}
