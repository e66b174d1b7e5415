package controller

import (
	"errors"
	"net/http"
	"net/url"
	"time"
)

type CreateOrgV1Input struct {
	Name       string `json:"name"`
	AdminEmail string `json:"adminEmail"`
	Password   string `json:"password"`
}

type CreateOrgV1Output struct {
	Data CreateOrgV1OutputData

	http.Response
}

type CreateOrgV1OutputData struct {
	OrganizationId string `json:"organizationId"`
}

func (c Client) CreateOrgV1(input CreateOrgV1Input) (*CreateOrgV1Output, error) {
	var outputData CreateOrgV1OutputData
	outputClient, err := c.do(request{
		Method: http.MethodPost,
		Path:   "/org/create",
		Data:   input,
		Output: &outputData,
	})
	var output *CreateOrgV1Output = nil
	if !errors.Is(err, ErrorOutputNil) && outputClient != nil {
		output = &CreateOrgV1Output{
			Data:     outputData,
			Response: outputClient.GetResponse(),
		}
	}
	if err != nil && outputClient != nil {
		switch outputClient.GetErrorCode().Error() {
		case ErrorEmailExists.Error():
			err = ErrorEmailExists
		case ErrorInvalidInput.Error():
			err = ErrorInvalidInput
		}
	}
	return output, err
}

type GetOrgV1Input struct {
	Id         string `json:"-"`
	AdminEmail string `json:"-"`
}

type GetOrgV1Output struct {
	Data GetOrgV1OutputData

	http.Response
}

type GetOrgV1OutputData struct {
	Id         string     `json:"id"`
	Name       string     `json:"name"`
	AdminEmail string     `json:"adminEmail"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

func (c Client) GetOrgV1(input GetOrgV1Input) (*GetOrgV1Output, error) {
	query := url.Values{}
	if input.Id != "" {
		query.Set("id", input.Id)
	}
	if input.AdminEmail != "" {
		query.Set("adminEmail", input.AdminEmail)
	}
	var outputData GetOrgV1OutputData
	outputClient, err := c.do(request{
		Method: http.MethodGet,
		Path:   "/org/get",
		Query:  query,
		Output: &outputData,
	})
	var output *GetOrgV1Output = nil
	if !errors.Is(err, ErrorOutputNil) && outputClient != nil {
		output = &GetOrgV1Output{
			Data:     outputData,
			Response: outputClient.GetResponse(),
		}
	}
	if err != nil && outputClient != nil {
		switch outputClient.GetErrorCode().Error() {
		case ErrorNotFound.Error():
			err = ErrorNotFound
		}
	}
	return output, err
}

type UpdateOrgV1Input struct {
	OrganizationId string  `json:"organizationId"`
	Name           *string `json:"name"`
	AdminEmail     *string `json:"adminEmail"`
	Password       *string `json:"password"`
}

type UpdateOrgV1Output struct {
	Data UpdateOrgV1OutputData

	http.Response
}

type UpdateOrgV1OutputData struct {
	Id         string     `json:"id"`
	Name       string     `json:"name"`
	AdminEmail string     `json:"adminEmail"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

func (c Client) UpdateOrgV1(input UpdateOrgV1Input) (*UpdateOrgV1Output, error) {
	var outputData UpdateOrgV1OutputData
	outputClient, err := c.do(request{
		Method: http.MethodPut,
		Path:   "/org/update",
		Data:   input,
		Output: &outputData,
	})
	var output *UpdateOrgV1Output = nil
	if !errors.Is(err, ErrorOutputNil) && outputClient != nil {
		output = &UpdateOrgV1Output{
			Data:     outputData,
			Response: outputClient.GetResponse(),
		}
	}
	if err != nil && outputClient != nil {
		switch outputClient.GetErrorCode().Error() {
		case ErrorEmailExists.Error():
			err = ErrorEmailExists
		case ErrorForbidden.Error():
			err = ErrorForbidden
		case ErrorInvalidInput.Error():
			err = ErrorInvalidInput
		case ErrorMissingToken.Error(),
			ErrorTokenExpired.Error(),
			ErrorTokenSignature.Error(),
			ErrorTokenMalformed.Error(),
			ErrorClaimsInvalid.Error():
			err = ErrorAuthRequired
		case ErrorNotFound.Error():
			err = ErrorNotFound
		}
	}
	return output, err
}

type DeleteOrgV1Input struct {
	Id string `json:"-"`
}

type DeleteOrgV1Output struct {
	Data DeleteOrgV1OutputData

	http.Response
}

type DeleteOrgV1OutputData struct {
	Deleted bool `json:"deleted"`
}

func (c Client) DeleteOrgV1(input DeleteOrgV1Input) (*DeleteOrgV1Output, error) {
	query := url.Values{}
	if input.Id != "" {
		query.Set("id", input.Id)
	}
	var outputData DeleteOrgV1OutputData
	outputClient, err := c.do(request{
		Method: http.MethodDelete,
		Path:   "/org/delete",
		Query:  query,
		Output: &outputData,
	})
	var output *DeleteOrgV1Output = nil
	if !errors.Is(err, ErrorOutputNil) && outputClient != nil {
		output = &DeleteOrgV1Output{
			Data:     outputData,
			Response: outputClient.GetResponse(),
		}
	}
	if err != nil && outputClient != nil {
		switch outputClient.GetErrorCode().Error() {
		case ErrorForbidden.Error():
			err = ErrorForbidden
		case ErrorMissingToken.Error(),
			ErrorTokenExpired.Error(),
			ErrorTokenSignature.Error(),
			ErrorTokenMalformed.Error(),
			ErrorClaimsInvalid.Error():
			err = ErrorAuthRequired
		case ErrorNotFound.Error():
			err = ErrorNotFound
		}
	}
	return output, err
}
