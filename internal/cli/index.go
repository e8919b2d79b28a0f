package cli

import (
	"github.com/spf13/cobra"
)

func RunIndex(cmd *cobra.Command, args []string) error {
	p, err := openProject(cmd, optionalArg(args, 0))
	if err != nil {
		return err
	}
	force, _ := cmd.Flags().GetBool("force")

	existed := p.ix.HasIndex()
	if err := p.ix.Ensure(force); err != nil {
		return err
	}

	status := "indexed"
	if existed && !force {
		status = "exists"
	}
	return printJSON(map[string]any{
		"status":      status,
		"project_dir": p.dir,
	})
}
