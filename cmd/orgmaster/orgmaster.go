package orgmaster

import (
	"fmt"
	"orgmaster/cmd/orgmaster/check"
	"orgmaster/cmd/orgmaster/create"
	"orgmaster/cmd/orgmaster/delete"
	"orgmaster/cmd/orgmaster/get"
	"orgmaster/cmd/orgmaster/login"
	"orgmaster/cmd/orgmaster/logout"
	"orgmaster/cmd/orgmaster/start"
	"orgmaster/cmd/orgmaster/update"
	"orgmaster/internal/cli"
	"orgmaster/internal/common"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var availableOutputs = []string{
	"text",
	"json",
}

var availableLogLevels = []string{
	string(common.LogLevelTrace),
	string(common.LogLevelDebug),
	string(common.LogLevelInfo),
	string(common.LogLevelWarn),
	string(common.LogLevelError),
}

var persistentFlags cli.Flags = cli.Flags{
	{
		Name:         "log-level",
		Short:        'l',
		DefaultValue: "info",
		Usage:        fmt.Sprintf("Sets the log level (one of [%s])", strings.Join(availableLogLevels, ", ")),
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "output",
		Short:        'o',
		DefaultValue: "text",
		Usage:        fmt.Sprintf("Sets the output format where applicable (one of [%s])", strings.Join(availableOutputs, ", ")),
		Type:         cli.FlagTypeString,
	},
}

func init() {
	Command.AddCommand(check.Command)
	Command.AddCommand(create.Command)
	Command.AddCommand(delete.Command)
	Command.AddCommand(get.Command)
	Command.AddCommand(login.Command)
	Command.AddCommand(logout.Command)
	Command.AddCommand(start.Command)
	Command.AddCommand(update.Command)
	Command.SilenceErrors = true
	Command.SilenceUsage = true

	persistentFlags.AddToCommand(Command, true)

	logrus.SetOutput(os.Stderr)
	cobra.OnInitialize(func() {
		persistentFlags.BindViper(Command, true)
		cli.InitLogging(viper.GetString("log-level"))
	})

	cli.InitConfig()
}

var Command = &cobra.Command{
	Use:     "orgmaster",
	Short:   "Organization management service and its command line client",
	Long:    "Organization management service and its command line client",
	Version: "1.0.0",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
