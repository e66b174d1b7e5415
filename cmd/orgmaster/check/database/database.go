package database

import (
	"fmt"
	"orgmaster/internal/cli"
	"orgmaster/internal/persistence"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "mongo-uri",
		DefaultValue: "mongodb://localhost:27017",
		Usage:        "Specifies the uri of the mongo instance",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "mongo-database",
		Short:        'N',
		DefaultValue: "org_master_db",
		Usage:        "Specifies the name of the database",
		Type:         cli.FlagTypeString,
	},
}

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "database",
	Aliases: []string{"db"},
	Short:   "Checks database connectivity with the platform database (MongoDB)",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logrus.Infof("verifying platform database connectivity...")
		databaseConnection := persistence.NewMongo(persistence.MongoConnectionOpts{
			AppName:  "orgmaster/check/database",
			Uri:      viper.GetString("mongo-uri"),
			Database: viper.GetString("mongo-database"),
		}, nil)
		if err := databaseConnection.Init(); err != nil {
			return fmt.Errorf("failed to establish connection to database: %w", err)
		}
		defer databaseConnection.Shutdown()
		fmt.Printf(
			"Successfully connected to database[%s] at uri[%s]\n",
			viper.GetString("mongo-database"),
			viper.GetString("mongo-uri"),
		)
		return nil
	},
}
