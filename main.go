package main

import "github.com/Royster0/markdown-editor/cmd"

func main() {
	cmd.Execute()
}
