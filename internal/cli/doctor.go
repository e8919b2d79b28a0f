package cli

import (
	"os/exec"
	"time"

	"github.com/spf13/cobra"
)

type doctorSummary struct {
	ProjectDir   string          `json:"project_dir"`
	Tools        map[string]bool `json:"tools"`
	IndexPresent bool            `json:"index_present"`
	IndexedAt    string          `json:"indexed_at,omitempty"`
	CacheFresh   bool            `json:"cache_fresh"`
	Suggestions  []string        `json:"suggestions,omitempty"`
}

// RunDoctor reports tool availability and index/cache freshness. It always
// exits zero; a broken setup is a finding, not a failure.
func RunDoctor(cmd *cobra.Command, args []string) error {
	p, err := openProject(cmd, optionalArg(args, 0))
	if err != nil {
		return err
	}

	summary := doctorSummary{
		ProjectDir: p.dir,
		Tools:      make(map[string]bool),
	}
	for _, tool := range []string{"gtags", "global", "ctags", "rg"} {
		_, lookErr := exec.LookPath(tool)
		summary.Tools[tool] = lookErr == nil
	}

	token := p.ix.FreshnessToken()
	summary.IndexPresent = token != 0
	if summary.IndexPresent {
		summary.IndexedAt = time.Unix(0, token).Format(time.RFC3339)
	}
	summary.CacheFresh = p.cache.LoadCallGraph() != nil

	if !summary.Tools["gtags"] || !summary.Tools["global"] {
		summary.Suggestions = append(summary.Suggestions, "install GNU Global (gtags/global)")
	}
	if !summary.Tools["ctags"] {
		summary.Suggestions = append(summary.Suggestions, "install Universal Ctags")
	}
	if !summary.Tools["rg"] {
		summary.Suggestions = append(summary.Suggestions,
			"install ripgrep to enable C function-pointer resolution (optional)")
	}
	if !summary.IndexPresent {
		summary.Suggestions = append(summary.Suggestions, "run callscope index")
	} else if !summary.CacheFresh {
		summary.Suggestions = append(summary.Suggestions, "run callscope graph build")
	}

	return printJSON(summary)
}
