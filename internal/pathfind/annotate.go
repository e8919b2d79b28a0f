package pathfind

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/callscope-dev/callscope/internal/index"
)

// Hop is one step in an annotated call chain.
type Hop struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
	Snippet  string `json:"snippet"`
}

// Path is a complete annotated chain from source to target.
type Path struct {
	Hops []Hop `json:"hops"`
}

// Annotate attaches definition location and a one-line snippet to each hop.
// Functions the index cannot resolve keep placeholder locations; unreadable
// files leave the snippet empty. Annotation never fails a query.
func Annotate(path []string, ix index.Index, projectRoot string) Path {
	hops := make([]Hop, 0, len(path))
	for _, name := range path {
		defs, err := ix.FindDefinitions(name)
		if err != nil || len(defs) == 0 {
			hops = append(hops, Hop{Function: name, File: "<unknown>", Line: 0, Snippet: ""})
			continue
		}
		def := defs[0]
		hops = append(hops, Hop{
			Function: name,
			File:     def.File,
			Line:     def.Line,
			Snippet:  readLine(projectRoot, def.File, def.Line),
		})
	}
	return Path{Hops: hops}
}

func readLine(root, file string, lineNo int) string {
	data, err := os.ReadFile(filepath.Join(root, file))
	if err != nil {
		return ""
	}
	lines := strings.Split(string(data), "\n")
	if lineNo < 1 || lineNo > len(lines) {
		return ""
	}
	return strings.TrimSpace(lines[lineNo-1])
}
