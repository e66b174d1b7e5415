package create

import (
	"orgmaster/cmd/orgmaster/create/org"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(org.Command)
}

var Command = &cobra.Command{
	Use:     "create",
	Aliases: []string{"c"},
	Short:   "Creates resources on the controller",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
