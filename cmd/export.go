package cmd

import (
	"fmt"
	"os"

	"github.com/Royster0/markdown-editor/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat  string
	exportEditing bool
	exportOutput  string
)

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "html", "Output format: fragments, html, or text")
	exportCmd.Flags().BoolVar(&exportEditing, "editing", false, "Editing mode (fragments format only)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export a markdown file as an assembled preview, HTML, or plain text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read file: %w", err)
		}
		content := string(data)

		var out string
		switch exportFormat {
		case "fragments":
			out = export.Assemble(content, exportEditing)
		case "html":
			out, err = export.HTML(content)
		case "text":
			out, err = export.Text(content)
		default:
			return fmt.Errorf("unknown format %q (want fragments, html, or text)", exportFormat)
		}
		if err != nil {
			return err
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, []byte(out), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		}
		fmt.Println(out)
		return nil
	},
}
