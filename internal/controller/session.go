package controller

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"orgmaster/internal/auth"
	"orgmaster/internal/common"
	"orgmaster/internal/controller/models"

	"github.com/google/uuid"
)

func registerSessionRoutes(opts RouteRegistrationOpts) {
	v1 := opts.Router.PathPrefix("/admin").Subrouter()

	v1.HandleFunc("/login", handleAdminLoginV1).Methods(http.MethodPost)
}

type handleAdminLoginV1Input struct {
	AdminEmail string `json:"adminEmail"`
	Password   string `json:"password"`
}

type handleAdminLoginV1Output struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// handleAdminLoginV1 godoc
// @Summary      Exchanges admin credentials for an access token
// @Description  Verifies the supplied credentials and issues a bearer token scoped to the admin's organization
// @Tags         controller-service
// @Accept       json
// @Produce      json
// @Param        request body handleAdminLoginV1Input true "Admin credentials"
// @Success      200 {object} common.HttpResponse "ok"
// @Failure      401 {object} common.HttpResponse "invalid credentials"
// @Router       /admin/login [post]
func handleAdminLoginV1(w http.ResponseWriter, r *http.Request) {
	log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)
	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to read request body", ErrorInvalidInput)
		return
	}
	var input handleAdminLoginV1Input
	if err := json.Unmarshal(requestBody, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to parse request body", ErrorInvalidInput)
		return
	}

	// every credential failure below responds identically so that the
	// endpoint cannot be used to probe which emails are registered
	if input.AdminEmail == "" || input.Password == "" {
		common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "failed to verify credentials", ErrorInvalidCredentials)
		return
	}

	org, err := models.GetOrgV1(models.GetOrgV1Opts{Db: db, AdminEmail: &input.AdminEmail})
	if err != nil {
		if errors.Is(err, models.ErrorNotFound) {
			common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "failed to verify credentials", ErrorInvalidCredentials)
			return
		}
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to retrieve admin", ErrorDatabaseIssue)
		return
	}

	isPasswordValid, err := auth.ValidatePassword(input.Password, org.AdminPasswordHash)
	if err != nil {
		log(common.LogLevelError, "failed to parse the stored password hash")
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to verify credentials", ErrorGeneric)
		return
	}
	if !isPasswordValid {
		common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "failed to verify credentials", ErrorInvalidCredentials)
		return
	}

	accessToken, err := auth.GenerateJwt(auth.GenerateJwtOpts{
		Audience: jwtAudience,
		Id:       uuid.NewString(),
		Issuer:   jwtIssuer,
		OrgId:    org.Id,
		Secret:   jwtSigningSecret,
		Subject:  org.AdminEmail,
		Ttl:      tokenTtl,
	})
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to issue token", ErrorGeneric)
		return
	}
	log(common.LogLevelInfo, "issued access token for admin of org["+org.Id+"]")

	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", handleAdminLoginV1Output{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   int64(tokenTtl.Seconds()),
	})
}
