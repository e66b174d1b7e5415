package start

import (
	"orgmaster/cmd/orgmaster/start/controller"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(controller.Command)
}

var Command = &cobra.Command{
	Use:     "start",
	Aliases: []string{"st"},
	Short:   "Starts one of the core services",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
