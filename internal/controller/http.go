package controller

import (
	"errors"
	"fmt"
	"net/http"
	"orgmaster/internal/common"
	"orgmaster/internal/controller/models"
	"orgmaster/internal/persistence"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

const defaultTokenTtl = 60 * time.Minute

type HttpApplicationOpts struct {
	// DatabaseConnection provides a managed connection to a MongoDB
	// instance
	DatabaseConnection *persistence.Mongo

	// JwtSigningSecret is the secret used to sign and verify access
	// tokens; the application refuses to start without it
	JwtSigningSecret string

	// TokenTtl is how long an issued access token stays valid for,
	// defaults to an hour when unset
	TokenTtl time.Duration

	// LivenessChecks are sequentially executed when the liveness probe endpoint is hit
	LivenessChecks []func() error

	// ReadinessChecks are sequentially executed when the readiness probe endpoint is hit
	ReadinessChecks []func() error

	// ServiceLogs is a centralised channel where logs get sent to
	ServiceLogs chan<- common.ServiceLog
}

func (o HttpApplicationOpts) Validate() error {
	errs := []error{}

	if o.DatabaseConnection == nil {
		errs = append(errs, fmt.Errorf("failed to receive a database connection: %w", ErrorMissingDatabaseConnection))
	}

	if o.JwtSigningSecret == "" {
		errs = append(errs, fmt.Errorf("failed to receive a token signing secret: %w", ErrorMissingJwtSigningSecret))
	}

	if o.ServiceLogs == nil {
		errs = append(errs, fmt.Errorf("failed to receive a service log: %w", ErrorMissingServiceLog))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// GetHttpApplication godoc
// @title           Orgmaster Controller Service
// @version         1.0
// @description     API for the organization management service
// @host            localhost:54321
// @BasePath        /
//
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description			Used for authenticating with endpoints
func GetHttpApplication(opts HttpApplicationOpts) (http.Handler, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("failed to initialise http application: %w", err)
	}

	// initialise common globals

	serviceLogs = &opts.ServiceLogs

	databaseConnection = opts.DatabaseConnection
	db = opts.DatabaseConnection.GetDatabase()

	jwtSigningSecret = opts.JwtSigningSecret
	tokenTtl = opts.TokenTtl
	if tokenTtl == 0 {
		tokenTtl = defaultTokenTtl
	}
	*serviceLogs <- common.ServiceLogf(common.LogLevelInfo, "controller issues tokens with a ttl of %v", tokenTtl)

	if err := models.InitOrgsCollectionV1(db); err != nil {
		return nil, fmt.Errorf("failed to initialise orgs collection: %w", err)
	}

	handler := mux.NewRouter()
	handler.NotFoundHandler = common.GetNotFoundHandler()
	common.RegisterCommonHttpEndpoints(common.CommonHttpEndpointsOpts{
		Router:          handler,
		ServiceLogs:     opts.ServiceLogs,
		LivenessChecks:  opts.LivenessChecks,
		ReadinessChecks: opts.ReadinessChecks,
	})

	routeOpts := RouteRegistrationOpts{
		Router:      handler,
		ServiceLogs: opts.ServiceLogs,
	}

	registerHealthRoutes(routeOpts)
	registerOrgRoutes(routeOpts)
	registerSessionRoutes(routeOpts)

	if err := handler.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		pathTemplate, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}
		methods, err := route.GetMethods()
		if err != nil {
			methods = []string{"*"}
		}
		*serviceLogs <- common.ServiceLogf(common.LogLevelDebug, "registered route[%s] with methods[%s]", pathTemplate, strings.Join(methods, "|"))
		return nil
	}); err != nil {
		return nil, err
	}

	return handler, nil
}
