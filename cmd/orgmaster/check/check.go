package check

import (
	"orgmaster/cmd/orgmaster/check/database"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(database.Command)
}

var Command = &cobra.Command{
	Use:     "check",
	Aliases: []string{"verify"},
	Short:   "Checks connectivity with platform dependencies",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
