package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"orgmaster/internal/auth"
	"orgmaster/internal/common"
	"orgmaster/internal/controller/models"
	"time"
)

func registerOrgRoutes(opts RouteRegistrationOpts) {
	requiresAuth := getRouteAuther(opts.ServiceLogs)

	v1 := opts.Router.PathPrefix("/org").Subrouter()

	v1.HandleFunc("/create", handleCreateOrgV1).Methods(http.MethodPost)
	v1.HandleFunc("/get", handleGetOrgV1).Methods(http.MethodGet)
	v1.Handle("/update", requiresAuth(http.HandlerFunc(handleUpdateOrgV1))).Methods(http.MethodPut)
	v1.Handle("/delete", requiresAuth(http.HandlerFunc(handleDeleteOrgV1))).Methods(http.MethodDelete)
}

type handleCreateOrgV1Input struct {
	Name       string `json:"name"`
	AdminEmail string `json:"adminEmail"`
	Password   string `json:"password"`
}

type handleCreateOrgV1Output struct {
	OrganizationId string `json:"organizationId"`
}

// handleCreateOrgV1 godoc
// @Summary      Creates a new organization
// @Description  Creates a new organization together with its admin credential in a single document
// @Tags         controller-service
// @Accept       json
// @Produce      json
// @Param        request body handleCreateOrgV1Input true "Organization details"
// @Success      201 {object} common.HttpResponse "created"
// @Failure      409 {object} common.HttpResponse "admin email already registered"
// @Failure      422 {object} common.HttpResponse "validation failed"
// @Router       /org/create [post]
func handleCreateOrgV1(w http.ResponseWriter, r *http.Request) {
	log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)
	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to read request body", ErrorInvalidInput)
		return
	}
	var input handleCreateOrgV1Input
	if err := json.Unmarshal(requestBody, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to parse request body", ErrorInvalidInput)
		return
	}
	log(common.LogLevelDebug, "successfully parsed body into expected input class")

	if err := validateCreateOrgV1Input(input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusUnprocessableEntity, fmt.Sprintf("failed to validate input: %s", err), ErrorInvalidInput)
		return
	}

	passwordHash, err := auth.HashPassword(input.Password)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to hash password", ErrorGeneric)
		return
	}

	orgId, err := models.CreateOrgV1(models.CreateOrgV1Opts{
		Db:                db,
		Name:              input.Name,
		AdminEmail:        input.AdminEmail,
		AdminPasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, models.ErrorDuplicateEntry) {
			common.SendHttpFailResponse(w, r, http.StatusConflict, "admin email already registered", ErrorEmailExists)
			return
		}
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to create org", ErrorDatabaseIssue)
		return
	}
	log(common.LogLevelDebug, fmt.Sprintf("successfully created org[%s]", orgId))

	common.SendHttpSuccessResponse(w, r, http.StatusCreated, "ok", handleCreateOrgV1Output{
		OrganizationId: orgId,
	})
}

type handleGetOrgV1Output struct {
	Id         string     `json:"id"`
	Name       string     `json:"name"`
	AdminEmail string     `json:"adminEmail"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

// handleGetOrgV1 godoc
// @Summary      Retrieves an organization
// @Description  Retrieves an organization by its id or its admin's email address
// @Tags         controller-service
// @Produce      json
// @Param        id query string false "Organization id"
// @Param        adminEmail query string false "Admin email"
// @Success      200 {object} common.HttpResponse "ok"
// @Failure      404 {object} common.HttpResponse "not found"
// @Router       /org/get [get]
func handleGetOrgV1(w http.ResponseWriter, r *http.Request) {
	getOpts := models.GetOrgV1Opts{Db: db}
	if id := r.URL.Query().Get("id"); id != "" {
		getOpts.Id = &id
	}
	if adminEmail := r.URL.Query().Get("adminEmail"); adminEmail != "" {
		getOpts.AdminEmail = &adminEmail
	}
	if getOpts.Id == nil && getOpts.AdminEmail == nil {
		common.SendHttpFailResponse(w, r, http.StatusUnprocessableEntity, "failed to receive an id or adminEmail query parameter", ErrorInvalidInput)
		return
	}

	org, err := models.GetOrgV1(getOpts)
	if err != nil {
		if errors.Is(err, models.ErrorNotFound) {
			common.SendHttpFailResponse(w, r, http.StatusNotFound, "org not found", ErrorNotFound)
			return
		}
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to retrieve org", ErrorDatabaseIssue)
		return
	}

	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", handleGetOrgV1Output{
		Id:         org.Id,
		Name:       org.Name,
		AdminEmail: org.AdminEmail,
		CreatedAt:  org.CreatedAt,
		UpdatedAt:  org.UpdatedAt,
	})
}

type handleUpdateOrgV1Input struct {
	// OrganizationId identifies the target organization; when empty,
	// the organization the token was issued for is targeted
	OrganizationId string `json:"organizationId"`

	Name       *string `json:"name"`
	AdminEmail *string `json:"adminEmail"`
	Password   *string `json:"password"`
}

// handleUpdateOrgV1 godoc
// @Summary      Updates an organization
// @Description  Applies a partial update to an organization; only supplied fields change
// @Tags         controller-service
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handleUpdateOrgV1Input true "Fields to update"
// @Success      200 {object} common.HttpResponse "ok"
// @Failure      401 {object} common.HttpResponse "unauthorized"
// @Failure      403 {object} common.HttpResponse "forbidden"
// @Failure      404 {object} common.HttpResponse "not found"
// @Failure      409 {object} common.HttpResponse "admin email already registered"
// @Router       /org/update [put]
func handleUpdateOrgV1(w http.ResponseWriter, r *http.Request) {
	log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)
	session := r.Context().Value(userAuthRequestContext).(identity)
	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to read request body", ErrorInvalidInput)
		return
	}
	var input handleUpdateOrgV1Input
	if err := json.Unmarshal(requestBody, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to parse request body", ErrorInvalidInput)
		return
	}

	targetOrgId := input.OrganizationId
	if targetOrgId == "" {
		targetOrgId = session.OrgId
	}

	org, err := models.GetOrgV1(models.GetOrgV1Opts{Db: db, Id: &targetOrgId})
	if err != nil {
		if errors.Is(err, models.ErrorNotFound) {
			common.SendHttpFailResponse(w, r, http.StatusNotFound, "org not found", ErrorNotFound)
			return
		}
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to retrieve org", ErrorDatabaseIssue)
		return
	}
	if org.Id != session.OrgId {
		log(common.LogLevelWarn, fmt.Sprintf("admin[%s] of org[%s] attempted to update org[%s]", session.AdminEmail, session.OrgId, org.Id))
		common.SendHttpFailResponse(w, r, http.StatusForbidden, "you are not allowed to update this organization", ErrorForbidden)
		return
	}

	if err := validateUpdateOrgV1Input(input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusUnprocessableEntity, fmt.Sprintf("failed to validate input: %s", err), ErrorInvalidInput)
		return
	}

	updateOpts := models.UpdateOrgV1Opts{
		Db:         db,
		Id:         org.Id,
		Name:       input.Name,
		AdminEmail: input.AdminEmail,
	}
	if input.Password != nil {
		passwordHash, err := auth.HashPassword(*input.Password)
		if err != nil {
			common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to hash password", ErrorGeneric)
			return
		}
		updateOpts.AdminPasswordHash = &passwordHash
	}

	updatedOrg, err := models.UpdateOrgV1(updateOpts)
	if err != nil {
		if errors.Is(err, models.ErrorNotFound) {
			common.SendHttpFailResponse(w, r, http.StatusNotFound, "org not found", ErrorNotFound)
			return
		}
		if errors.Is(err, models.ErrorDuplicateEntry) {
			common.SendHttpFailResponse(w, r, http.StatusConflict, "admin email already registered", ErrorEmailExists)
			return
		}
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to update org", ErrorDatabaseIssue)
		return
	}
	log(common.LogLevelDebug, fmt.Sprintf("successfully updated org[%s]", org.Id))

	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", updatedOrg)
}

type handleDeleteOrgV1Output struct {
	Deleted bool `json:"deleted"`
}

// handleDeleteOrgV1 godoc
// @Summary      Deletes an organization
// @Description  Deletes an organization and its admin credential atomically
// @Tags         controller-service
// @Produce      json
// @Security     BearerAuth
// @Param        id query string false "Organization id, defaults to the caller's own organization"
// @Success      200 {object} common.HttpResponse "ok"
// @Failure      401 {object} common.HttpResponse "unauthorized"
// @Failure      403 {object} common.HttpResponse "forbidden"
// @Failure      404 {object} common.HttpResponse "not found"
// @Router       /org/delete [delete]
func handleDeleteOrgV1(w http.ResponseWriter, r *http.Request) {
	log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)
	session := r.Context().Value(userAuthRequestContext).(identity)

	targetOrgId := r.URL.Query().Get("id")
	if targetOrgId == "" {
		targetOrgId = session.OrgId
	}

	org, err := models.GetOrgV1(models.GetOrgV1Opts{Db: db, Id: &targetOrgId})
	if err != nil {
		if errors.Is(err, models.ErrorNotFound) {
			common.SendHttpFailResponse(w, r, http.StatusNotFound, "org not found", ErrorNotFound)
			return
		}
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to retrieve org", ErrorDatabaseIssue)
		return
	}
	if org.Id != session.OrgId {
		log(common.LogLevelWarn, fmt.Sprintf("admin[%s] of org[%s] attempted to delete org[%s]", session.AdminEmail, session.OrgId, org.Id))
		common.SendHttpFailResponse(w, r, http.StatusForbidden, "you are not allowed to delete this organization", ErrorForbidden)
		return
	}

	if err := models.DeleteOrgV1(models.DeleteOrgV1Opts{Db: db, Id: org.Id}); err != nil {
		if errors.Is(err, models.ErrorNotFound) {
			common.SendHttpFailResponse(w, r, http.StatusNotFound, "org not found", ErrorNotFound)
			return
		}
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to delete org", ErrorDatabaseIssue)
		return
	}
	log(common.LogLevelDebug, fmt.Sprintf("successfully deleted org[%s]", org.Id))

	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", handleDeleteOrgV1Output{
		Deleted: true,
	})
}
