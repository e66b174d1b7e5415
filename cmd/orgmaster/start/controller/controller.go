package controller

import (
	"fmt"
	"orgmaster/internal/cli"
	"orgmaster/internal/common"
	"orgmaster/internal/controller"
	"orgmaster/internal/persistence"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "listen-addr",
		DefaultValue: "0.0.0.0:54321",
		Usage:        "specifies the listen address of the server",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "mongo-uri",
		DefaultValue: "mongodb://localhost:27017",
		Usage:        "specifies the uri of the mongo instance",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "mongo-database",
		Short:        'N',
		DefaultValue: "org_master_db",
		Usage:        "specifies the name of the database",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "jwt-signing-secret",
		DefaultValue: "",
		Usage:        "specifies the secret used to sign access tokens, the server refuses to start without this",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "token-ttl",
		DefaultValue: 60 * time.Minute,
		Usage:        "specifies how long issued access tokens stay valid for",
		Type:         cli.FlagTypeDuration,
	},
}

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "controller",
	Aliases: []string{"c"},
	Short:   "Starts the controller component",
	Long:    "Starts the controller component which serves the organization management API",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		jwtSigningSecret := viper.GetString("jwt-signing-secret")
		if jwtSigningSecret == "" {
			return fmt.Errorf("failed to receive a jwt signing secret, specify one using --jwt-signing-secret or the JWT_SIGNING_SECRET environment variable")
		}

		logrus.Debugf("starting logging engine...")
		serviceLogs := make(chan common.ServiceLog, 64)
		common.StartServiceLogLoop(serviceLogs)
		logrus.Debugf("started logging engine")

		logrus.Infof("establishing connection to database...")
		databaseConnection := persistence.NewMongo(persistence.MongoConnectionOpts{
			AppName:  "orgmaster/controller",
			Uri:      viper.GetString("mongo-uri"),
			Database: viper.GetString("mongo-database"),
		}, &serviceLogs)
		if err := databaseConnection.Init(); err != nil {
			return fmt.Errorf("failed to establish connection to database: %w", err)
		}
		defer databaseConnection.Shutdown()
		logrus.Debugf("established connection to database")

		logrus.Infof("initialising application...")
		controllerHandler, err := controller.GetHttpApplication(controller.HttpApplicationOpts{
			DatabaseConnection: databaseConnection,
			JwtSigningSecret:   jwtSigningSecret,
			TokenTtl:           viper.GetDuration("token-ttl"),
			ReadinessChecks: []func() error{
				func() error {
					if !databaseConnection.GetStatus().IsOk() {
						return fmt.Errorf("database connection is pending restoration")
					}
					return nil
				},
			},
			LivenessChecks: []func() error{
				func() error {
					status := databaseConnection.GetStatus()
					if !status.IsOk() && status.GetLastChangedAt().Before(time.Now().Add(-30*time.Second)) {
						return fmt.Errorf("database connection is invalid")
					}
					return nil
				},
			},
			ServiceLogs: serviceLogs,
		})
		if err != nil {
			return fmt.Errorf("failed to initialise application: %w", err)
		}
		logrus.Debugf("initialised application")

		logrus.Infof("initialising application server...")
		httpServerDone := make(chan common.Done)
		listenAddress := viper.GetString("listen-addr")
		server, err := common.NewHttpServer(common.NewHttpServerOpts{
			Addr:        listenAddress,
			Done:        httpServerDone,
			Handler:     controllerHandler,
			ServiceLogs: serviceLogs,
		})
		if err != nil {
			return fmt.Errorf("failed to create new http server: %w", err)
		}
		logrus.Debugf("initialised server")
		logrus.Infof("starting server on addr[%s]...", listenAddress)
		if err := server.Start(); err != nil {
			return fmt.Errorf("failed to start http server: %w", err)
		}
		return nil
	},
}
