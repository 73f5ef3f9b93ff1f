package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "loom",
	Short: "Markdown editor backend: line rendering, search, and workspace tools",
	Long: `loom is the backend engine of a markdown editor. It renders documents
line by line to HTML fragments, assembles full previews, searches and
replaces across workspaces, and watches folders for changes.

Examples:
  loom render notes.md                  # per-line HTML fragments
  loom render notes.md --editing        # marker-visible editing fragments
  loom export notes.md --format html    # standalone HTML document
  loom search "TODO" ./docs             # search all markdown files
  loom watch ./docs                     # stream file system events`,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
