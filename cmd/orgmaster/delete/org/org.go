package org

import (
	"errors"
	"fmt"
	"orgmaster/internal/cli"
	"orgmaster/pkg/controller"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "controller-url",
		Short:        'u',
		DefaultValue: "http://localhost:54321",
		Usage:        "defines the url where the controller service is accessible at",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "id",
		DefaultValue: "",
		Usage:        "id of the organization to delete, defaults to your own organization",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "confirm",
		DefaultValue: false,
		Usage:        "skips the interactive confirmation",
		Type:         cli.FlagTypeBool,
	},
}

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "org",
	Aliases: []string{"o"},
	Short:   "Deletes an organization and its admin account",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionToken, sessionFilePath, err := controller.GetSessionToken()
		if err != nil {
			return fmt.Errorf("failed to get a session token: %s", err)
		}
		logrus.Debugf("loaded credentials from path[%s]", sessionFilePath)

		if !viper.GetBool("confirm") {
			answer, err := cli.PromptString("This removes the organization and its admin account permanently, type 'yes' to continue")
			if err != nil {
				return err
			}
			if !strings.EqualFold(answer, "yes") {
				return fmt.Errorf("deletion aborted")
			}
		}

		client, err := controller.NewClient(controller.NewClientOpts{
			ControllerUrl: viper.GetString("controller-url"),
			BearerAuth: &controller.NewClientBearerAuthOpts{
				Token: sessionToken,
			},
			Id: "orgmaster/delete/org",
		})
		if err != nil {
			return fmt.Errorf("failed to create controller client: %s", err)
		}

		deleteOrgOutput, err := client.DeleteOrgV1(controller.DeleteOrgV1Input{
			Id: viper.GetString("id"),
		})
		if err != nil {
			switch {
			case errors.Is(err, controller.ErrorAuthRequired):
				if err := controller.DeleteSessionToken(); err != nil {
					logrus.Warnf("failed to remove session token: %s", err)
				}
				return fmt.Errorf("your session has expired, please login again")
			case errors.Is(err, controller.ErrorForbidden):
				return fmt.Errorf("you are not allowed to delete this organization")
			case errors.Is(err, controller.ErrorNotFound):
				return fmt.Errorf("no such organization")
			}
			return fmt.Errorf("failed to delete organization: %s", err)
		}
		if !deleteOrgOutput.Data.Deleted {
			return fmt.Errorf("the controller did not confirm the deletion")
		}

		// the credentials embedded in the session token no longer exist
		if err := controller.DeleteSessionToken(); err != nil {
			logrus.Warnf("failed to remove session token: %s", err)
		}

		fmt.Printf("Organization deleted\n")
		return nil
	},
}
