package callgraph

import (
	"encoding/json"
	"os"
)

// LoadOverrides reads manual caller -> callees edges from a JSON file.
// Missing or malformed files yield nil; overrides are best-effort and never
// abort a build.
func LoadOverrides(path string) map[string][]string {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var overrides map[string][]string
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil
	}
	return overrides
}
