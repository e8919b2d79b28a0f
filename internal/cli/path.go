package cli

import (
	"github.com/spf13/cobra"

	"github.com/callscope-dev/callscope/internal/pathfind"
)

type annotatedPath struct {
	Hops   []pathfind.Hop `json:"hops"`
	Length int            `json:"length"`
}

type plainPath struct {
	Hops   []string `json:"hops"`
	Length int      `json:"length"`
}

func RunPath(cmd *cobra.Command, args []string) error {
	p, err := openProject(cmd, optionalArg(args, 2))
	if err != nil {
		return err
	}
	source, target := args[0], args[1]

	depth := depthFlag(cmd, p.cfg.MaxDepth)
	noAnnotate, _ := cmd.Flags().GetBool("no-annotate")
	noBuild, _ := cmd.Flags().GetBool("no-build")
	langFlag, _ := cmd.Flags().GetString("lang")
	overridesPath, _ := cmd.Flags().GetString("overrides")

	g, cacheUsed, err := p.requireGraph(!noBuild, langFlag, overridesPath)
	if err != nil {
		return err
	}

	rawPaths := pathfind.FindAllPaths(g, source, target, depth)

	paths := make([]any, 0, len(rawPaths))
	for _, raw := range rawPaths {
		if noAnnotate {
			paths = append(paths, plainPath{Hops: raw, Length: len(raw)})
			continue
		}
		annotated := pathfind.Annotate(raw, p.ix, p.dir)
		paths = append(paths, annotatedPath{Hops: annotated.Hops, Length: len(annotated.Hops)})
	}

	return printJSON(map[string]any{
		"source":     source,
		"target":     target,
		"paths":      paths,
		"path_count": len(paths),
		"cache_used": cacheUsed,
	})
}
