package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/callscope-dev/callscope/internal/deps"
)

// stubsResult is the stubs output payload. The request fields are stored
// alongside the answer so a cached record is only served for an identical
// query.
type stubsResult struct {
	Extracted         []string            `json:"extracted"`
	StubFunctions     []string            `json:"stub_functions"`
	ExcludedStdlib    []string            `json:"excluded_stdlib"`
	ExcludedExtracted []string            `json:"excluded_extracted"`
	DependencyMap     map[string][]string `json:"dependency_map"`
	StubDepth         int                 `json:"stub_depth"`
	Language          string              `json:"language"`
}

func RunStubs(cmd *cobra.Command, args []string) error {
	projectFlag, _ := cmd.Flags().GetString("project")
	p, err := openProject(cmd, projectFlag)
	if err != nil {
		return err
	}

	depth := depthFlag(cmd, p.cfg.StubDepth)
	langFlag, _ := cmd.Flags().GetString("lang")

	g, _, err := p.requireGraph(true, langFlag, "")
	if err != nil {
		return err
	}
	language, err := p.resolveLanguage(langFlag)
	if err != nil {
		return err
	}

	// Each requested function must resolve; an extraction target the index
	// cannot locate is a hard error, unlike the soft misses during analysis.
	extracted := make(map[string]bool, len(args))
	for _, name := range args {
		defs, err := p.ix.FindDefinitions(name)
		if err != nil {
			return err
		}
		if len(defs) == 0 {
			return fmt.Errorf("function not found in index: %s", name)
		}
		extracted[name] = true
	}
	requested := sortedNames(extracted)

	var cached stubsResult
	if p.cache.LoadResults(&cached) && sameRequest(cached, requested, depth, language.String()) {
		return printJSON(cached)
	}

	analysis := deps.Analyze(g, extracted, depth, language)
	analysis.StubFunctions = deps.FilterExisting(analysis.StubFunctions, p.ix)

	result := stubsResult{
		Extracted:         requested,
		StubFunctions:     sortedNames(analysis.StubFunctions),
		ExcludedStdlib:    sortedNames(analysis.ExcludedStdlib),
		ExcludedExtracted: sortedNames(analysis.ExcludedExtracted),
		DependencyMap:     analysis.DependencyMap,
		StubDepth:         depth,
		Language:          language.String(),
	}
	if err := p.cache.SaveResults(result); err != nil {
		p.logger.WithError(err).Warn("failed to write results cache")
	}
	return printJSON(result)
}

func sameRequest(cached stubsResult, extracted []string, depth int, language string) bool {
	if cached.StubDepth != depth || cached.Language != language {
		return false
	}
	if len(cached.Extracted) != len(extracted) {
		return false
	}
	for i, name := range extracted {
		if cached.Extracted[i] != name {
			return false
		}
	}
	return true
}

func sortedNames(set map[string]bool) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
