package delete

import (
	"orgmaster/cmd/orgmaster/delete/org"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(org.Command)
}

var Command = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"d"},
	Short:   "Deletes resources on the controller",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
