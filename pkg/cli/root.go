// Package cli provides the sweep command line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"sweep/pkg/config"
)

var (
	depth   int
	dryRun  bool
	yes     bool
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "sweep <path>",
		Short: "Purge gitignored build artifacts and caches",
		Long: `Sweep finds git repositories beneath a directory, looks for well-known
build and cache directories (build, target, node_modules, __pycache__, ...)
that the owning repository's ignore rules exclude from version control,
reports how much disk they occupy and deletes them after confirmation.

Directories that are tracked or not covered by an ignore rule are never
touched. Deletion is permanent; there is no trash or undo.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0])
		},
	}
)

func init() {
	rootCmd.Flags().IntVarP(&depth, "depth", "L", config.DefaultDepth, "max depth to search for repositories")
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "show what would be deleted without deleting")
	rootCmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
