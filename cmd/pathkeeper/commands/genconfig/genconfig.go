package genconfig

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the gen-config command
// The command logic is attached by the root command to avoid circular dependencies
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
	}

	cmd.Flags().BoolP("write", "w", false, "Write the config file instead of printing it")
	cmd.Flags().Bool("resolved", false, "Emit the effective configuration after file and environment overrides")

	return cmd
}
