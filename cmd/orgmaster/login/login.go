package login

import (
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
		DefaultValue: "http://localhost:54321",
		Usage:        "Defines the url where the controller service is accessible at",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "admin-email",
		DefaultValue: "",
		Usage:        "the email address of the admin account you are logging in as",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "password",
		DefaultValue: "",
		Usage:        "the password for your admin account, prompted for when unset",
		Type:         cli.FlagTypeString,
	},
}

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:   "login",
	Short: "Logs in to the controller as an organization admin",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, err := controller.GetSessionToken()
		if err == nil {
			return fmt.Errorf("looks like you're already logged in, run `orgmaster logout` first before running this command")
		}

		adminEmail := viper.GetString("admin-email")
		password := viper.GetString("password")
		if password != "" {
			fmt.Println(
				"⚠️ !!! WARNING !!! ⚠️\n" +
					"Using a password directly on the command line isn't generally recommended\n" +
					"since anyone can see it using the `history` command. Run `history -c` to\n" +
					"remove this from this shell if this is a shared shell")
		}

		if adminEmail == "" {
			if adminEmail, err = cli.PromptString("Admin email"); err != nil {
				return err
			}
		}
		if password == "" {
			if password, err = cli.PromptPassword("Password"); err != nil {
				return err
			}
		}

		client, err := controller.NewClient(controller.NewClientOpts{
			ControllerUrl: viper.GetString("controller-url"),
			Id:            "orgmaster/login",
		})
		if err != nil {
			return fmt.Errorf("failed to create controller client: %s", err)
		}

		createSessionOutput, err := client.CreateSessionV1(controller.CreateSessionV1Input{
			AdminEmail: adminEmail,
			Password:   password,
		})
		if err != nil {
			if errors.Is(err, controller.ErrorInvalidCredentials) {
				fmt.Println("⚠️  The provided credentials doesn't seem correct, try again")
				return fmt.Errorf("credentials validation failed")
			}
			return fmt.Errorf("failed to create session for unexpected reasons: %s", err)
		}

		sessionFilePath, err := controller.SaveSessionToken(createSessionOutput.Data.AccessToken)
		if err != nil {
			return fmt.Errorf("failed to save session token: %s", err)
		}

		fmt.Printf("Welcome back!\nSession saved to %s, expires in %v seconds\n", sessionFilePath, createSessionOutput.Data.ExpiresIn)
		return nil
	},
}
