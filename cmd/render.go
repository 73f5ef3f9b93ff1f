package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Royster0/markdown-editor/internal/markdown"
	"github.com/spf13/cobra"
)

var (
	renderEditing bool
	renderLine    int
)

func init() {
	renderCmd.Flags().BoolVar(&renderEditing, "editing", false, "Render in marker-visible editing mode")
	renderCmd.Flags().IntVar(&renderLine, "line", -1, "Render only the given 0-based line")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Render a markdown file to per-line HTML fragments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read file: %w", err)
		}
		lines := strings.Split(string(data), "\n")

		if renderLine >= 0 {
			if renderLine >= len(lines) {
				return fmt.Errorf("line %d out of range (document has %d lines)", renderLine, len(lines))
			}
			result := markdown.RenderLine(markdown.RenderRequest{
				Line:      lines[renderLine],
				LineIndex: renderLine,
				AllLines:  lines,
				IsEditing: renderEditing,
			})
			fmt.Println(result.HTML)
			return nil
		}

		requests := make([]markdown.RenderRequest, len(lines))
		for i, line := range lines {
			requests[i] = markdown.RenderRequest{
				Line:      line,
				LineIndex: i,
				AllLines:  lines,
				IsEditing: renderEditing,
			}
		}
		for _, result := range markdown.RenderBatch(requests) {
			fmt.Println(result.HTML)
		}
		return nil
	},
}
