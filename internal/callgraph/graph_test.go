package callgraph

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestFromEdgesNormalizes(t *testing.T) {
	g := FromEdges(map[string][]string{
		"a": {"c", "b", "c", ""},
		"b": {},
	})

	if got := g.Callees("a"); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Fatalf("expected sorted deduped callees, got %v", got)
	}
	if g.HasCaller("b") {
		t.Fatal("empty callee lists must be dropped")
	}
	if g.NodeCount() != 1 || g.EdgeCount() != 2 {
		t.Fatalf("unexpected counts: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
	}
}

func TestCalleesReturnsACopy(t *testing.T) {
	g := FromEdges(map[string][]string{"a": {"b", "c"}})

	callees := g.Callees("a")
	callees[0] = "mutated"

	if got := g.Callees("a"); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Fatalf("graph must be immutable, got %v", got)
	}
}

func TestCallersReverseLookup(t *testing.T) {
	g := FromEdges(map[string][]string{
		"x": {"shared"},
		"y": {"shared", "other"},
		"z": {"other"},
	})

	if got := g.Callers("shared"); !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Fatalf("expected sorted callers, got %v", got)
	}
	if got := g.Callers("nobody"); len(got) != 0 {
		t.Fatalf("expected no callers, got %v", got)
	}
}

func TestGraphJSONIsObjectOfArrays(t *testing.T) {
	g := FromEdges(map[string][]string{"a": {"b"}})

	data, err := json.Marshal(g)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"a":["b"]}` {
		t.Fatalf("unexpected wire form %s", data)
	}

	var decoded Graph
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if !g.Equal(&decoded) {
		t.Fatal("graph survives a JSON round trip")
	}
}

func TestEqual(t *testing.T) {
	a := FromEdges(map[string][]string{"a": {"b", "c"}})
	b := FromEdges(map[string][]string{"a": {"c", "b"}})
	c := FromEdges(map[string][]string{"a": {"b"}})

	if !a.Equal(b) {
		t.Fatal("order-insensitive inputs must normalize equal")
	}
	if a.Equal(c) || a.Equal(nil) {
		t.Fatal("different edge sets must not compare equal")
	}
}
