package org

import (
	"errors"
	"fmt"
	"orgmaster/internal/cli"
	"orgmaster/pkg/controller"

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
		Usage:        "id of the organization to update, defaults to your own organization",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "org-name",
		DefaultValue: "",
		Usage:        "new name for the organization",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "admin-email",
		DefaultValue: "",
		Usage:        "new email address for the organization's admin",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "password",
		DefaultValue: false,
		Usage:        "when specified, prompts for a new admin password",
		Type:         cli.FlagTypeBool,
	},
}

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "org",
	Aliases: []string{"o"},
	Short:   "Updates your organization's details",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionToken, sessionFilePath, err := controller.GetSessionToken()
		if err != nil {
			return fmt.Errorf("failed to get a session token: %s", err)
		}
		logrus.Debugf("loaded credentials from path[%s]", sessionFilePath)

		updateOrgInput := controller.UpdateOrgV1Input{
			OrganizationId: viper.GetString("id"),
		}
		if orgName := viper.GetString("org-name"); orgName != "" {
			updateOrgInput.Name = &orgName
		}
		if adminEmail := viper.GetString("admin-email"); adminEmail != "" {
			updateOrgInput.AdminEmail = &adminEmail
		}
		if viper.GetBool("password") {
			password, err := cli.PromptPassword("New admin password")
			if err != nil {
				return err
			}
			updateOrgInput.Password = &password
		}
		if updateOrgInput.Name == nil && updateOrgInput.AdminEmail == nil && updateOrgInput.Password == nil {
			return fmt.Errorf("failed to receive any fields to update, specify at least one of --org-name, --admin-email or --password")
		}

		client, err := controller.NewClient(controller.NewClientOpts{
			ControllerUrl: viper.GetString("controller-url"),
			BearerAuth: &controller.NewClientBearerAuthOpts{
				Token: sessionToken,
			},
			Id: "orgmaster/update/org",
		})
		if err != nil {
			return fmt.Errorf("failed to create controller client: %s", err)
		}

		updateOrgOutput, err := client.UpdateOrgV1(updateOrgInput)
		if err != nil {
			switch {
			case errors.Is(err, controller.ErrorAuthRequired):
				if err := controller.DeleteSessionToken(); err != nil {
					logrus.Warnf("failed to remove session token: %s", err)
				}
				return fmt.Errorf("your session has expired, please login again")
			case errors.Is(err, controller.ErrorForbidden):
				return fmt.Errorf("you are not allowed to update this organization")
			case errors.Is(err, controller.ErrorEmailExists):
				return fmt.Errorf("an organization with that admin email already exists")
			case errors.Is(err, controller.ErrorNotFound):
				return fmt.Errorf("no such organization")
			}
			return fmt.Errorf("failed to update organization: %s", err)
		}
		logrus.Infof("successfully updated org[%s]", updateOrgOutput.Data.Id)
		fmt.Printf("Organization '%s' is up to date\n", updateOrgOutput.Data.Name)

		return nil
	},
}
