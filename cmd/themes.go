package cmd

import (
	"fmt"
	"sort"

	"github.com/Royster0/markdown-editor/internal/config"
	"github.com/Royster0/markdown-editor/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	themesCmd.PersistentFlags().StringVarP(&configFolder, "folder", "f", ".", "Workspace folder")
	themesCmd.AddCommand(themesListCmd)
	themesCmd.AddCommand(themesShowCmd)
	themesCmd.AddCommand(themesImportCmd)
	themesCmd.AddCommand(themesExportCmd)
	rootCmd.AddCommand(themesCmd)
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Manage editor themes",
}

var themesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := config.ListThemes(configFolder)
		if err != nil {
			return err
		}
		cfg, err := config.Load(configFolder)
		if err != nil {
			return err
		}
		for _, name := range names {
			if name == cfg.CurrentTheme {
				fmt.Println(ui.Accent(name) + ui.Muted(" (current)"))
			} else {
				fmt.Println(name)
			}
		}
		return nil
	},
}

var themesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a theme's color variables",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		theme, err := config.LoadTheme(configFolder, args[0])
		if err != nil {
			return err
		}
		fmt.Println(ui.Accent(theme.Name) + ui.Muted(" by "+theme.Author+", v"+theme.Version))

		keys := make([]string, 0, len(theme.Variables))
		for k := range theme.Variables {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("  %s  %s\n", ui.Muted(k), ui.Swatch(theme.Variables[k]))
		}
		return nil
	},
}

var themesImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a theme from a JSON or YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := config.ImportTheme(configFolder, args[0])
		if err != nil {
			return err
		}
		fmt.Println(ui.Success("Imported theme " + name))
		return nil
	},
}

var themesExportCmd = &cobra.Command{
	Use:   "export <name> <dest>",
	Short: "Write a theme to a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.ExportTheme(configFolder, args[0], args[1]); err != nil {
			return err
		}
		fmt.Println(ui.Success("Exported " + args[0] + " to " + args[1]))
		return nil
	},
}
