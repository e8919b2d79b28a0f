package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/callscope-dev/callscope/internal/cache"
	"github.com/callscope-dev/callscope/internal/callgraph"
	"github.com/callscope-dev/callscope/internal/config"
	"github.com/callscope-dev/callscope/internal/index"
	"github.com/callscope-dev/callscope/internal/lang"
	"github.com/callscope-dev/callscope/internal/search"
)

// project bundles everything a command needs for one project directory.
type project struct {
	dir    string
	cfg    *config.Config
	logger *logrus.Logger
	ix     *index.GlobalIndex
	cache  *cache.Cache
	search *search.Ripgrep
}

func openProject(cmd *cobra.Command, pathArg string) (*project, error) {
	dir := pathArg
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("project directory does not exist: %s", abs)
	}

	logger := newLogger(cmd)
	return &project{
		dir:    abs,
		cfg:    config.Load(abs),
		logger: logger,
		ix:     index.New(abs, index.WithLogger(logger)),
		cache:  cache.New(abs),
		search: search.NewRipgrep(abs),
	}, nil
}

func newLogger(cmd *cobra.Command) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	if verbose, err := cmd.Root().PersistentFlags().GetBool("verbose"); err == nil && verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// resolveLanguage applies flag > config > auto-detect precedence.
func (p *project) resolveLanguage(flagValue string) (lang.Language, error) {
	if flagValue != "" {
		return lang.Parse(flagValue)
	}
	if p.cfg.Language != "" {
		return lang.Parse(p.cfg.Language)
	}
	return lang.Detect(p.dir), nil
}

// resolveOverridesPath applies flag > config precedence. A relative config
// path is anchored at the project root, where the config file lives.
func (p *project) resolveOverridesPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p.cfg.Overrides == "" || filepath.IsAbs(p.cfg.Overrides) {
		return p.cfg.Overrides
	}
	return filepath.Join(p.dir, p.cfg.Overrides)
}

// depthFlag returns the --depth value, falling back to the config default
// only when the flag was not set at all. An explicit zero is honored.
func depthFlag(cmd *cobra.Command, fallback int) int {
	if !cmd.Flags().Changed("depth") {
		return fallback
	}
	depth, _ := cmd.Flags().GetInt("depth")
	if depth < 0 {
		return fallback
	}
	return depth
}

// buildGraph runs the builder and caches the result. A failed cache write
// is logged but never fails the build; the graph is still usable.
func (p *project) buildGraph(language lang.Language, overrides map[string][]string) (*callgraph.Graph, error) {
	builder := callgraph.NewBuilder(p.ix,
		callgraph.WithSearcher(p.search),
		callgraph.WithLogger(p.logger),
	)
	g, err := builder.Build(language, overrides)
	if err != nil {
		return nil, err
	}
	if err := p.cache.SaveCallGraph(g); err != nil {
		p.logger.WithError(err).Warn("failed to write call graph cache")
	}
	return g, nil
}

func printJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
