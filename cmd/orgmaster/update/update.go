package update

import (
	"orgmaster/cmd/orgmaster/update/org"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(org.Command)
}

var Command = &cobra.Command{
	Use:     "update",
	Aliases: []string{"u"},
	Short:   "Updates resources on the controller",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
