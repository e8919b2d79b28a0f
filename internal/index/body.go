package index

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/callscope-dev/callscope/internal/lang"
)

type ctagsTag struct {
	Type string `json:"_type"`
	Name string `json:"name"`
	Path string `json:"path"`
	Line int    `json:"line"`
	Kind string `json:"kind"`
	End  int    `json:"end"`
}

// FunctionBody extracts the source of a function using Universal Ctags
// bounds. Returns nil (no error) when the file is gone or ctags reports no
// end line for the tag; a missing body is not a failure.
func (ix *GlobalIndex) FunctionBody(def Definition, language lang.Language) (*Body, error) {
	path := filepath.Join(ix.root, def.File)
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}

	start, end, ok, err := ix.functionBounds(path, def.Name, def.Line)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil
	}
	lines := strings.Split(string(data), "\n")

	startIdx := start - 1
	if startIdx < 0 {
		startIdx = 0
	}
	endIdx := end
	if endIdx > len(lines) {
		endIdx = len(lines)
	}
	if startIdx >= endIdx {
		return nil, nil
	}

	return &Body{
		File:      def.File,
		StartLine: start,
		EndLine:   end,
		Source:    strings.Join(lines[startIdx:endIdx], "\n"),
	}, nil
}

// functionBounds asks ctags for the start/end lines of a function tag.
// Matches name+line first; falls back to the first tag with that name,
// which may hit the first overload.
func (ix *GlobalIndex) functionBounds(path, name string, line int) (start, end int, ok bool, err error) {
	if err := ix.checkCtags(); err != nil {
		return 0, 0, false, err
	}

	stdout, _, _ := ix.runner(ix.root, nil, "ctags",
		"--output-format=json", "--fields=+ne", "-o", "-", path)

	tags := parseCtagsOutput(stdout)
	for _, tag := range tags {
		if tag.Name == name && tag.Line == line && tag.End > 0 {
			return tag.Line, tag.End, true, nil
		}
	}
	for _, tag := range tags {
		if tag.Name == name && tag.End > 0 {
			return tag.Line, tag.End, true, nil
		}
	}
	return 0, 0, false, nil
}

func parseCtagsOutput(output string) []ctagsTag {
	tags := make([]ctagsTag, 0)
	for _, raw := range strings.Split(output, "\n") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		var tag ctagsTag
		if err := json.Unmarshal([]byte(raw), &tag); err != nil {
			continue
		}
		if tag.Type == "tag" {
			tags = append(tags, tag)
		}
	}
	return tags
}
