package controller

import (
	"net/http"
	"orgmaster/internal/common"
)

func registerHealthRoutes(opts RouteRegistrationOpts) {
	opts.Router.HandleFunc("/health", handleHealthV1).Methods(http.MethodGet)
}

type handleHealthV1Output struct {
	Db string `json:"db"`
}

// handleHealthV1 godoc
// @Summary      Reports database connectivity
// @Description  Returns whether the controller currently holds a healthy database connection
// @Tags         controller-service
// @Produce      json
// @Success      200 {object} common.HttpResponse "ok"
// @Router       /health [get]
func handleHealthV1(w http.ResponseWriter, r *http.Request) {
	dbStatus := "disconnected"
	if databaseConnection.GetStatus().IsOk() {
		dbStatus = "connected"
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", handleHealthV1Output{
		Db: dbStatus,
	})
}
