package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/callscope-dev/callscope/internal/callgraph"
)

type graphStats struct {
	Status     string `json:"status"`
	NodeCount  int    `json:"node_count"`
	EdgeCount  int    `json:"edge_count"`
	Language   string `json:"language"`
	ProjectDir string `json:"project_dir"`
}

func RunGraphBuild(cmd *cobra.Command, args []string) error {
	p, err := openProject(cmd, optionalArg(args, 0))
	if err != nil {
		return err
	}
	force, _ := cmd.Flags().GetBool("force")
	langFlag, _ := cmd.Flags().GetString("lang")
	overridesPath, _ := cmd.Flags().GetString("overrides")

	if err := p.ix.Ensure(false); err != nil {
		return err
	}

	language, err := p.resolveLanguage(langFlag)
	if err != nil {
		return err
	}

	overrides := callgraph.LoadOverrides(p.resolveOverridesPath(overridesPath))

	// Overrides bypass the cache read: the cached graph was built without
	// them and would not reflect the extra edges.
	if !force && overrides == nil {
		if cached := p.cache.LoadCallGraph(); cached != nil {
			return printJSON(graphStats{
				Status:     "cached",
				NodeCount:  cached.NodeCount(),
				EdgeCount:  cached.EdgeCount(),
				Language:   language.String(),
				ProjectDir: p.dir,
			})
		}
	}

	g, err := p.buildGraph(language, overrides)
	if err != nil {
		return err
	}

	return printJSON(graphStats{
		Status:     "built",
		NodeCount:  g.NodeCount(),
		EdgeCount:  g.EdgeCount(),
		Language:   language.String(),
		ProjectDir: p.dir,
	})
}

func RunGraphShow(cmd *cobra.Command, args []string) error {
	p, err := openProject(cmd, optionalArg(args, 0))
	if err != nil {
		return err
	}
	noBuild, _ := cmd.Flags().GetBool("no-build")

	g, _, err := p.requireGraph(!noBuild, "", "")
	if err != nil {
		return err
	}

	return printJSON(map[string]any{
		"graph":      g,
		"node_count": g.NodeCount(),
		"edge_count": g.EdgeCount(),
	})
}

func RunCallees(cmd *cobra.Command, args []string) error {
	p, err := openProject(cmd, optionalArg(args, 1))
	if err != nil {
		return err
	}
	noBuild, _ := cmd.Flags().GetBool("no-build")

	g, _, err := p.requireGraph(!noBuild, "", "")
	if err != nil {
		return err
	}

	callees := g.Callees(args[0])
	if callees == nil {
		callees = []string{}
	}
	return printJSON(map[string]any{
		"function": args[0],
		"callees":  callees,
		"count":    len(callees),
	})
}

func RunCallers(cmd *cobra.Command, args []string) error {
	p, err := openProject(cmd, optionalArg(args, 1))
	if err != nil {
		return err
	}
	noBuild, _ := cmd.Flags().GetBool("no-build")

	g, _, err := p.requireGraph(!noBuild, "", "")
	if err != nil {
		return err
	}

	callers := g.Callers(args[0])
	return printJSON(map[string]any{
		"function": args[0],
		"callers":  callers,
		"count":    len(callers),
	})
}

// requireGraph loads the cached graph or builds a fresh one. The cached
// copy is only served when no overrides are in play. With autoBuild off a
// missing or stale cache is a hard GraphNotFound error.
func (p *project) requireGraph(autoBuild bool, langFlag, overridesPath string) (*callgraph.Graph, bool, error) {
	overrides := callgraph.LoadOverrides(p.resolveOverridesPath(overridesPath))

	if overrides == nil {
		if cached := p.cache.LoadCallGraph(); cached != nil {
			return cached, true, nil
		}
	}

	if !autoBuild {
		return nil, false, fmt.Errorf("%w; run: callscope graph build %s",
			callgraph.ErrGraphNotFound, p.dir)
	}

	if err := p.ix.Ensure(false); err != nil {
		return nil, false, err
	}
	language, err := p.resolveLanguage(langFlag)
	if err != nil {
		return nil, false, err
	}

	g, err := p.buildGraph(language, overrides)
	if err != nil {
		return nil, false, err
	}
	return g, false, nil
}
