// Package pathfind enumerates call paths between two functions over a
// built call graph. Traversal is pure in-memory work; only annotation
// touches the index and the source tree.
package pathfind

import (
	"github.com/callscope-dev/callscope/internal/callgraph"
)

// DefaultMaxDepth bounds path length when the caller does not choose one.
const DefaultMaxDepth = 10

// FindAllPaths returns every simple path from source to target whose node
// count stays within maxDepth. When source equals target the single
// one-node path is returned without touching the graph. The search is
// breadth-first over partial paths with per-path cycle prevention only:
// a node excluded from one path may still appear in another. Worst-case
// cost is exponential; maxDepth is the only bound.
func FindAllPaths(g *callgraph.Graph, source, target string, maxDepth int) [][]string {
	if source == target {
		return [][]string{{source}}
	}

	results := make([][]string, 0)
	queue := [][]string{{source}}

	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]

		if len(path) > maxDepth {
			continue
		}

		current := path[len(path)-1]
		for _, callee := range g.Callees(current) {
			if containsNode(path, callee) {
				continue
			}
			next := make([]string, len(path), len(path)+1)
			copy(next, path)
			next = append(next, callee)

			if callee == target {
				results = append(results, next)
			} else if len(next) <= maxDepth {
				queue = append(queue, next)
			}
		}
	}

	return results
}

func containsNode(path []string, node string) bool {
	for _, n := range path {
		if n == node {
			return true
		}
	}
	return false
}
