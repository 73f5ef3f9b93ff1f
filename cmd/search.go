package cmd

import (
	"fmt"
	"os"

	"github.com/Royster0/markdown-editor/internal/search"
	"github.com/Royster0/markdown-editor/internal/ui"
	"github.com/spf13/cobra"
)

var (
	searchCaseSensitive bool
	searchWholeWord     bool
	searchUseRegex      bool
	searchInclude       string
	searchReplaceWith   string
	searchWrite         bool
)

func init() {
	searchCmd.Flags().BoolVar(&searchCaseSensitive, "case-sensitive", false, "Match case exactly")
	searchCmd.Flags().BoolVar(&searchWholeWord, "word", false, "Match whole words only")
	searchCmd.Flags().BoolVar(&searchUseRegex, "regex", false, "Treat the query as a regular expression")
	searchCmd.Flags().StringVar(&searchInclude, "include", search.DefaultInclude, "Glob pattern for files to search (directory mode)")
	searchCmd.Flags().StringVar(&searchReplaceWith, "replace", "", "Replace matches with this text")
	searchCmd.Flags().BoolVarP(&searchWrite, "write", "w", false, "Write replacements back to the file")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query> [path]",
	Short: "Search a markdown file or directory",
	Long: `Search a single file or a directory tree for a query.

With --replace, matches in a single file are replaced; the result is
printed unless --write is set, in which case the file is rewritten.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		query, path := args[0], "."
		if len(args) == 2 {
			path = args[1]
		}
		opts := search.Options{
			CaseSensitive: searchCaseSensitive,
			WholeWord:     searchWholeWord,
			UseRegex:      searchUseRegex,
		}

		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("stat path: %w", err)
		}

		if info.IsDir() {
			if cmd.Flags().Changed("replace") {
				return fmt.Errorf("--replace works on a single file, not a directory")
			}
			results, err := search.SearchDirectory(query, path, opts, searchInclude)
			if err != nil {
				return err
			}
			for _, fr := range results {
				fmt.Println(ui.Accent(fr.FilePath))
				for _, m := range fr.Matches {
					fmt.Printf("  %s %s\n", ui.Muted(fmt.Sprintf("%d:%d", m.Line, m.Column)), m.LineText)
				}
			}
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read file: %w", err)
		}
		content := string(data)

		if cmd.Flags().Changed("replace") {
			res, err := search.Replace(query, searchReplaceWith, content, opts)
			if err != nil {
				return err
			}
			if searchWrite {
				if err := os.WriteFile(path, []byte(res.NewContent), 0o644); err != nil {
					return fmt.Errorf("write file: %w", err)
				}
				fmt.Println(ui.Success(fmt.Sprintf("Replaced %d occurrence(s) in %s", res.ReplacedCount, path)))
				return nil
			}
			fmt.Print(res.NewContent)
			return nil
		}

		matches, err := search.Search(query, content, opts)
		if err != nil {
			return err
		}
		for _, m := range matches {
			fmt.Printf("%s %s\n", ui.Muted(fmt.Sprintf("%d:%d", m.Line, m.Column)), m.LineText)
		}
		if len(matches) == 0 {
			fmt.Println(ui.Muted("No matches"))
		}
		return nil
	},
}
