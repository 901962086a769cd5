package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/pathkeeper/cmd/pathkeeper/commands"
	"github.com/arthur-debert/pathkeeper/pkg/style"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		msg := fmt.Sprintf("Error: %v", err)
		fmt.Fprintln(os.Stderr, style.Render(style.ErrorStyle, msg, style.UseColor(os.Stderr)))
		os.Exit(1)
	}
}
