package tidy

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the tidy command
// The command logic is attached by the root command to avoid circular dependencies
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tidy",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
	}

	cmd.Flags().Bool("no-backup", false, "Skip the pre-change backup snapshot")

	return cmd
}
