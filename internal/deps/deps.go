// Package deps classifies the transitive callees of a set of extracted
// functions for test-harness stub generation.
package deps

import (
	"github.com/callscope-dev/callscope/internal/callgraph"
	"github.com/callscope-dev/callscope/internal/index"
	"github.com/callscope-dev/callscope/internal/lang"
)

// DependencySet partitions the functions reached from the extracted set.
type DependencySet struct {
	StubFunctions     map[string]bool     `json:"-"`
	ExcludedStdlib    map[string]bool     `json:"-"`
	ExcludedExtracted map[string]bool     `json:"-"`
	DependencyMap     map[string][]string `json:"dependency_map"`
}

// NewDependencySet creates an empty result.
func NewDependencySet() *DependencySet {
	return &DependencySet{
		StubFunctions:     make(map[string]bool),
		ExcludedStdlib:    make(map[string]bool),
		ExcludedExtracted: make(map[string]bool),
		DependencyMap:     make(map[string][]string),
	}
}

type frontierEntry struct {
	name  string
	depth int
}

// Analyze walks the call graph breadth-first from every extracted function
// at depth 0, never expanding past stubDepth hops from any seed. Each
// reached callee is classified exactly once: already-extracted functions
// and standard-library functions are excluded from stubbing; everything
// else becomes a stub candidate and is traversed further. A global visited
// set keeps cyclic graphs from looping.
func Analyze(g *callgraph.Graph, extracted map[string]bool, stubDepth int, language lang.Language) *DependencySet {
	result := NewDependencySet()

	frontier := make([]frontierEntry, 0, len(extracted))
	visited := make(map[string]bool, len(extracted))
	for name := range extracted {
		frontier = append(frontier, frontierEntry{name: name, depth: 0})
		visited[name] = true
	}

	for len(frontier) > 0 {
		entry := frontier[0]
		frontier = frontier[1:]

		if entry.depth >= stubDepth {
			continue
		}

		callees := g.Callees(entry.name)
		if len(callees) > 0 {
			result.DependencyMap[entry.name] = callees
		}

		for _, callee := range callees {
			if visited[callee] {
				continue
			}
			visited[callee] = true

			switch {
			case extracted[callee]:
				result.ExcludedExtracted[callee] = true
			case !g.HasCaller(callee):
				// No entry as a caller: likely stdlib or external.
				result.ExcludedStdlib[callee] = true
			case language.IsStdlib(callee):
				result.ExcludedStdlib[callee] = true
			default:
				result.StubFunctions[callee] = true
				frontier = append(frontier, frontierEntry{name: callee, depth: entry.depth + 1})
			}
		}
	}

	return result
}

// FilterExisting drops stub candidates the live index cannot locate.
// A failed lookup counts as not found; stub generation must never block on
// index errors.
func FilterExisting(stubFunctions map[string]bool, ix index.Index) map[string]bool {
	filtered := make(map[string]bool, len(stubFunctions))
	for name := range stubFunctions {
		defs, err := ix.FindDefinitions(name)
		if err != nil || len(defs) == 0 {
			continue
		}
		filtered[name] = true
	}
	return filtered
}
