package lang

import (
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

var skipDirs = map[string]struct{}{
	".git":         {},
	".hg":          {},
	".svn":         {},
	".cache":       {},
	"node_modules": {},
	"__pycache__":  {},
	"venv":         {},
	".venv":        {},
	"build":        {},
	"dist":         {},
}

// Detect picks the dominant language of a project by counting source files
// per extension. Files matched by the project's .gitignore are skipped.
// Projects with no recognized sources default to C.
func Detect(root string) Language {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	gi := loadGitignore(abs)
	counts := make(map[Language]int)

	filepath.WalkDir(abs, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			if path == abs {
				return nil
			}
			if _, skip := skipDirs[name]; skip || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return nil
		}
		if gi != nil && gi.MatchesPath(rel) {
			return nil
		}
		if l, ok := ForExtension(filepath.Ext(name)); ok {
			counts[l]++
		}
		return nil
	})

	best := C
	bestCount := 0
	for _, l := range All() {
		if counts[l] > bestCount {
			best = l
			bestCount = counts[l]
		}
	}
	return best
}

func loadGitignore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}
