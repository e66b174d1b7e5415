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
		Name:         "org-name",
		DefaultValue: "",
		Usage:        "name of the organization to be created",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "admin-email",
		DefaultValue: "",
		Usage:        "email address of the organization's admin",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "password",
		DefaultValue: "",
		Usage:        "password for the organization's admin, prompted for when unset",
		Type:         cli.FlagTypeString,
	},
}

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "org",
	Aliases: []string{"o"},
	Short:   "Creates a new organization with its admin account",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		orgName := viper.GetString("org-name")
		adminEmail := viper.GetString("admin-email")
		password := viper.GetString("password")

		var err error
		if orgName == "" {
			if orgName, err = cli.PromptString("Organization name"); err != nil {
				return err
			}
		}
		if adminEmail == "" {
			if adminEmail, err = cli.PromptString("Admin email"); err != nil {
				return err
			}
		}
		if password == "" {
			if password, err = cli.PromptPassword("Admin password"); err != nil {
				return err
			}
		}

		client, err := controller.NewClient(controller.NewClientOpts{
			ControllerUrl: viper.GetString("controller-url"),
			Id:            "orgmaster/create/org",
		})
		if err != nil {
			return fmt.Errorf("failed to create controller client: %s", err)
		}

		createOrgOutput, err := client.CreateOrgV1(controller.CreateOrgV1Input{
			Name:       orgName,
			AdminEmail: adminEmail,
			Password:   password,
		})
		if err != nil {
			if errors.Is(err, controller.ErrorEmailExists) {
				return fmt.Errorf("an organization with admin email[%s] already exists", adminEmail)
			}
			return fmt.Errorf("failed to create an org: %s", err)
		}
		logrus.Infof("successfully created org[%s]", createOrgOutput.Data.OrganizationId)
		fmt.Printf("Organization ID: %s\n", createOrgOutput.Data.OrganizationId)

		return nil
	},
}
