package get

import (
	"orgmaster/cmd/orgmaster/get/org"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(org.Command)
}

var Command = &cobra.Command{
	Use:     "get",
	Aliases: []string{"g"},
	Short:   "Retrieves resources from the controller",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
