package logout

import (
	"fmt"
	"orgmaster/pkg/controller"

	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "logout",
	Short: "Logs out of the controller on this terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		// tokens are stateless so a logout only needs to discard the
		// locally stored one
		_, sessionFilePath, err := controller.GetSessionToken()
		if err != nil {
			return fmt.Errorf("failed to get a session token: %s", err)
		}

		if err := controller.DeleteSessionToken(); err != nil {
			return fmt.Errorf("failed to remove file at path[%s], please do it yourself: %s", sessionFilePath, err)
		}

		fmt.Printf("Your session is now closed\nSee you again <3\n")
		return nil
	},
}
