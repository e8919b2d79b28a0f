// Package lang defines the closed set of analyzed languages and the
// per-language behavior table used across the builder and analyzer.
package lang

import (
	"fmt"
	"strings"
)

// Language identifies one of the supported analysis languages.
type Language int

const (
	C Language = iota
	Java
	Python
)

func (l Language) String() string {
	switch l {
	case C:
		return "c"
	case Java:
		return "java"
	case Python:
		return "python"
	default:
		return "unknown"
	}
}

// Parse converts a language name to a Language.
func Parse(name string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "c":
		return C, nil
	case "java":
		return Java, nil
	case "python", "py":
		return Python, nil
	default:
		return C, fmt.Errorf("unsupported language %q (expected c, java, or python)", name)
	}
}

// All returns every supported language.
func All() []Language {
	return []Language{C, Java, Python}
}

// Extensions returns the file extensions owned by the language.
func (l Language) Extensions() []string {
	switch l {
	case C:
		return []string{".c", ".h"}
	case Java:
		return []string{".java"}
	case Python:
		return []string{".py"}
	default:
		return nil
	}
}

// ForExtension maps a file extension to its language.
func ForExtension(ext string) (Language, bool) {
	switch strings.ToLower(ext) {
	case ".c", ".h":
		return C, true
	case ".java":
		return Java, true
	case ".py":
		return Python, true
	default:
		return C, false
	}
}

// IsStdlib reports whether name is a standard-library function for the
// language. Best-effort lookup; false negatives are expected.
func (l Language) IsStdlib(name string) bool {
	switch l {
	case C:
		return cStdlib[name]
	case Java:
		for _, prefix := range javaStdlibPrefixes {
			if strings.HasPrefix(name, prefix) {
				return true
			}
		}
		return false
	case Python:
		return pythonBuiltins[name]
	default:
		return false
	}
}
