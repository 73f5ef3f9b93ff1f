package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Royster0/markdown-editor/internal/config"
	"github.com/Royster0/markdown-editor/internal/ui"
	"github.com/spf13/cobra"
)

var configFolder string

func init() {
	configCmd.PersistentFlags().StringVarP(&configFolder, "folder", "f", ".", "Workspace folder")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetThemeCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage workspace settings",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the workspace metadata directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(configFolder); err != nil {
			return err
		}
		fmt.Println(ui.Success("Initialized " + config.DirName + " in " + configFolder))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFolder)
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("encode settings: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	},
}

var configSetThemeCmd = &cobra.Command{
	Use:   "set-theme <name>",
	Short: "Set the current theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadTheme(configFolder, args[0]); err != nil {
			return err
		}
		if err := config.SetTheme(configFolder, args[0]); err != nil {
			return err
		}
		fmt.Println(ui.Success("Theme set to " + args[0]))
		return nil
	},
}
