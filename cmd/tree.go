package cmd

import (
	"fmt"

	"github.com/Royster0/markdown-editor/internal/ui"
	"github.com/Royster0/markdown-editor/internal/workspace"
	"github.com/spf13/cobra"
)

var treeDepth int

func init() {
	treeCmd.Flags().IntVar(&treeDepth, "depth", 3, "Maximum directory depth to expand")
	rootCmd.AddCommand(treeCmd)
}

var treeCmd = &cobra.Command{
	Use:   "tree [directory]",
	Short: "Print the workspace file tree",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		files, folders, err := workspace.CountContents(root)
		if err != nil {
			return err
		}
		if err := printTree(root, "", treeDepth); err != nil {
			return err
		}
		fmt.Println(ui.Muted(fmt.Sprintf("%d file(s), %d folder(s)", files, folders)))
		return nil
	},
}

func printTree(dir, indent string, depth int) error {
	entries, err := workspace.ReadDirectory(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir {
			fmt.Println(indent + ui.Accent(e.Name+"/"))
			if depth > 1 {
				if err := printTree(e.Path, indent+"  ", depth-1); err != nil {
					return err
				}
			}
		} else {
			fmt.Println(indent + e.Name)
		}
	}
	return nil
}
