package show

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the show command
// The command logic is attached by the root command to avoid circular dependencies
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "show",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
	}
}
