package controller

import (
	"orgmaster/internal/common"
	"orgmaster/internal/persistence"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	jwtIssuer   = "orgmaster/controller"
	jwtAudience = "orgmaster"
)

var db *mongo.Database
var databaseConnection *persistence.Mongo
var jwtSigningSecret string
var tokenTtl time.Duration
var serviceLogs *chan<- common.ServiceLog

type RouteRegistrationOpts struct {
	Router      *mux.Router
	ServiceLogs chan<- common.ServiceLog
}
