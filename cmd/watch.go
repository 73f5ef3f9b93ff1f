package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Royster0/markdown-editor/internal/ui"
	"github.com/Royster0/markdown-editor/internal/watcher"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <directory>",
	Short: "Watch a directory and print file events",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := watcher.Watch(args[0])
		if err != nil {
			return err
		}
		defer w.Close()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		fmt.Println(ui.Muted("Watching " + args[0] + " (ctrl-c to stop)"))
		for {
			select {
			case ev, ok := <-w.Events():
				if !ok {
					return nil
				}
				fmt.Printf("%s %s\n", ui.Accent(ev.Type), ev.Path)
			case err := <-w.Errors():
				fmt.Fprintln(os.Stderr, ui.Error("watch error: "+err.Error()))
			case <-sig:
				return nil
			}
		}
	},
}
