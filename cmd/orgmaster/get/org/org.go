package org

import (
	"encoding/json"
	"errors"
	"fmt"
	"orgmaster/internal/cli"
	"orgmaster/pkg/controller"

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
		Usage:        "id of the organization to retrieve",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "admin-email",
		DefaultValue: "",
		Usage:        "email of the organization's admin, used instead of --id when set",
		Type:         cli.FlagTypeString,
	},
}

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "org",
	Aliases: []string{"o"},
	Short:   "Retrieves information about an organization",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		orgId := viper.GetString("id")
		adminEmail := viper.GetString("admin-email")
		if orgId == "" && adminEmail == "" {
			return fmt.Errorf("failed to receive an organization identifier, specify one using --id or --admin-email")
		}

		client, err := controller.NewClient(controller.NewClientOpts{
			ControllerUrl: viper.GetString("controller-url"),
			Id:            "orgmaster/get/org",
		})
		if err != nil {
			return fmt.Errorf("failed to create controller client: %s", err)
		}

		org, err := client.GetOrgV1(controller.GetOrgV1Input{
			Id:         orgId,
			AdminEmail: adminEmail,
		})
		if err != nil {
			if errors.Is(err, controller.ErrorNotFound) {
				return fmt.Errorf("no such organization")
			}
			return fmt.Errorf("failed to retrieve organization: %s", err)
		}

		switch viper.GetString("output") {
		case "json":
			o, _ := json.MarshalIndent(org.Data, "", "  ")
			fmt.Println(string(o))
		case "text":
			fallthrough
		default:
			table := cli.NewTable(cli.NewTableOpts{
				Headers: []string{"ID", "Name", "Admin Email", "Created At"},
				Rows: func(t *cli.Table) error {
					return t.NewRow(
						org.Data.Id,
						org.Data.Name,
						org.Data.AdminEmail,
						org.Data.CreatedAt.Local().Format("Jan 2 2006 03:04:05 PM"),
					)
				},
			})
			fmt.Println(table.Render().GetString())
		}

		return nil
	},
}
