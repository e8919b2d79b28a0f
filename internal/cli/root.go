// Package cli wires the cobra command tree and orchestrates the index,
// builder, cache, path finder, and dependency analyzer.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "callscope",
		Short: "Call-graph analysis and stub classification for C/Java/Python",
		Long: `Callscope builds function-level call graphs over GNU Global indexes,
finds call paths between two functions, and classifies the dependencies
of extracted functions for test-harness stub generation.

Graphs are cached under .cache/callscope/ and rebuilt automatically when
the underlying GTAGS index changes.`,
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	indexCmd := &cobra.Command{
		Use:   "index [path]",
		Short: "Build the GTAGS symbol index for a project",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunIndex,
	}
	indexCmd.Flags().Bool("force", false, "Re-index even if GTAGS already exists")

	graphCmd := &cobra.Command{
		Use:   "graph",
		Short: "Build and query the call graph",
	}

	graphBuildCmd := &cobra.Command{
		Use:   "build [path]",
		Short: "Build the call graph and cache it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunGraphBuild,
	}
	graphBuildCmd.Flags().Bool("force", false, "Rebuild even when a fresh cache exists")
	graphBuildCmd.Flags().StringP("lang", "l", "", "Project language: c|java|python (default: auto-detect)")
	graphBuildCmd.Flags().String("overrides", "", "JSON file with manual caller -> callees edges")

	graphShowCmd := &cobra.Command{
		Use:   "show [path]",
		Short: "Print the full call graph as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunGraphShow,
	}
	graphShowCmd.Flags().Bool("no-build", false, "Fail instead of auto-building when no valid cache exists")

	calleesCmd := &cobra.Command{
		Use:   "callees <function> [path]",
		Short: "List direct callees of a function",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  RunCallees,
	}
	calleesCmd.Flags().Bool("no-build", false, "Fail instead of auto-building when no valid cache exists")

	callersCmd := &cobra.Command{
		Use:   "callers <function> [path]",
		Short: "List direct callers of a function",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  RunCallers,
	}
	callersCmd.Flags().Bool("no-build", false, "Fail instead of auto-building when no valid cache exists")

	graphCmd.AddCommand(graphBuildCmd, graphShowCmd, calleesCmd, callersCmd)

	pathCmd := &cobra.Command{
		Use:   "path <source> <target> [path]",
		Short: "Find all call paths from source to target",
		Args:  cobra.RangeArgs(2, 3),
		RunE:  RunPath,
	}
	pathCmd.Flags().Int("depth", 0, "Maximum path length in nodes (default from config, then 10)")
	pathCmd.Flags().Bool("no-annotate", false, "Skip file/line/snippet annotation")
	pathCmd.Flags().StringP("lang", "l", "", "Project language: c|java|python (default: auto-detect)")
	pathCmd.Flags().String("overrides", "", "JSON file with manual caller -> callees edges")
	pathCmd.Flags().Bool("no-build", false, "Fail instead of auto-building when no valid cache exists")

	stubsCmd := &cobra.Command{
		Use:   "stubs <function>...",
		Short: "Classify dependencies of extracted functions for stub generation",
		Args:  cobra.MinimumNArgs(1),
		RunE:  RunStubs,
	}
	stubsCmd.Flags().Int("depth", 0, "Stub analysis depth in hops (default from config, then 1)")
	stubsCmd.Flags().String("project", "", "Project directory (default: current directory)")
	stubsCmd.Flags().StringP("lang", "l", "", "Project language: c|java|python (default: auto-detect)")

	doctorCmd := &cobra.Command{
		Use:   "doctor [path]",
		Short: "Check required external tools and index freshness",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunDoctor,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("callscope %s\n", version)
		},
	}

	rootCmd.AddCommand(
		indexCmd,
		graphCmd,
		pathCmd,
		stubsCmd,
		doctorCmd,
		versionCmd,
	)

	return rootCmd
}
