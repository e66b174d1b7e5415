package controller

import (
	"errors"
	"net/http"
)

type CreateSessionV1Input struct {
	AdminEmail string `json:"adminEmail"`
	Password   string `json:"password"`
}

type CreateSessionV1Output struct {
	Data CreateSessionV1OutputData

	http.Response
}

type CreateSessionV1OutputData struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}

func (c Client) CreateSessionV1(input CreateSessionV1Input) (*CreateSessionV1Output, error) {
	var outputData CreateSessionV1OutputData
	outputClient, err := c.do(request{
		Method: http.MethodPost,
		Path:   "/admin/login",
		Data:   input,
		Output: &outputData,
	})
	var output *CreateSessionV1Output = nil
	if !errors.Is(err, ErrorOutputNil) && outputClient != nil {
		output = &CreateSessionV1Output{
			Data:     outputData,
			Response: outputClient.GetResponse(),
		}
	}
	if err != nil && outputClient != nil {
		switch outputClient.GetErrorCode().Error() {
		case ErrorInvalidCredentials.Error():
			err = ErrorInvalidCredentials
		}
	}
	return output, err
}
