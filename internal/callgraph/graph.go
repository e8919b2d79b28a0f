// Package callgraph builds and represents function-level call graphs.
package callgraph

import (
	"encoding/json"
	"sort"
)

// Graph maps caller names to sorted, de-duplicated callee names. Callers
// with no discovered callees are omitted. A Graph is immutable once built;
// accessors return copies.
type Graph struct {
	edges map[string][]string
}

// FromEdges normalizes an adjacency map into a Graph: callee lists are
// de-duplicated and sorted, empty lists dropped.
func FromEdges(edges map[string][]string) *Graph {
	normalized := make(map[string][]string, len(edges))
	for caller, callees := range edges {
		callees = dedupeAndSort(callees)
		if len(callees) == 0 {
			continue
		}
		normalized[caller] = callees
	}
	return &Graph{edges: normalized}
}

// Callees returns the direct callees of a function, or nil.
func (g *Graph) Callees(name string) []string {
	callees, ok := g.edges[name]
	if !ok {
		return nil
	}
	out := make([]string, len(callees))
	copy(out, callees)
	return out
}

// Callers returns every function with an edge to name, sorted.
func (g *Graph) Callers(name string) []string {
	callers := make([]string, 0)
	for caller, callees := range g.edges {
		for _, callee := range callees {
			if callee == name {
				callers = append(callers, caller)
				break
			}
		}
	}
	sort.Strings(callers)
	return callers
}

// HasCaller reports whether name appears as a caller key.
func (g *Graph) HasCaller(name string) bool {
	_, ok := g.edges[name]
	return ok
}

// Nodes returns all caller names, sorted.
func (g *Graph) Nodes() []string {
	nodes := make([]string, 0, len(g.edges))
	for caller := range g.edges {
		nodes = append(nodes, caller)
	}
	sort.Strings(nodes)
	return nodes
}

// NodeCount returns the number of callers with at least one edge.
func (g *Graph) NodeCount() int {
	return len(g.edges)
}

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, callees := range g.edges {
		total += len(callees)
	}
	return total
}

// MarshalJSON encodes the graph as an object of string arrays.
func (g *Graph) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.edges)
}

// UnmarshalJSON decodes and re-normalizes an object of string arrays.
func (g *Graph) UnmarshalJSON(data []byte) error {
	var edges map[string][]string
	if err := json.Unmarshal(data, &edges); err != nil {
		return err
	}
	*g = *FromEdges(edges)
	return nil
}

// Equal reports whether two graphs have identical edge sets.
func (g *Graph) Equal(other *Graph) bool {
	if other == nil || len(g.edges) != len(other.edges) {
		return false
	}
	for caller, callees := range g.edges {
		otherCallees, ok := other.edges[caller]
		if !ok || len(callees) != len(otherCallees) {
			return false
		}
		for i := range callees {
			if callees[i] != otherCallees[i] {
				return false
			}
		}
	}
	return true
}

func dedupeAndSort(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		out = append(out, value)
	}
	sort.Strings(out)
	return out
}
