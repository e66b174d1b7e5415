package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"orgmaster/internal/common"
)

type NewClientOpts struct {
	ControllerUrl string
	BearerAuth    *NewClientBearerAuthOpts
	Id            string
}

type NewClientBearerAuthOpts struct {
	Token string
}

func NewClient(opts NewClientOpts) (*Client, error) {
	client := &Client{
		BearerAuth: opts.BearerAuth,
		HttpClient: &http.Client{},
		Id:         opts.Id,
	}

	controllerUrl, err := url.Parse(opts.ControllerUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse provided controllerUrl[%s]: %s", opts.ControllerUrl, err)
	}

	if controllerUrl.Scheme == "" {
		return nil, fmt.Errorf("failed to determine url scheme of controllerUrl[%s]", opts.ControllerUrl)
	}
	client.ControllerUrl = controllerUrl

	return client, nil
}

type Client struct {
	// ControllerUrl is the URL where the controller service is
	// accessible at
	ControllerUrl *url.URL
	BearerAuth    *NewClientBearerAuthOpts

	// HttpClient is the HTTP client
	HttpClient *http.Client

	// Id will be included in the user-agent for identification
	Id string
}

type request struct {
	Method string
	Path   string
	Query  url.Values
	Data   any
	Output any
}

type response struct {
	errorCode string
	message   string

	http.Response
}

// GetErrorCode returns the machine-readable error code the controller
// placed in the response data of a failed request
func (r *response) GetErrorCode() error {
	if r.errorCode == "" {
		return ErrorGeneric
	}
	return errors.New(r.errorCode)
}

func (r *response) GetMessage() string {
	return r.message
}

func (r *response) GetResponse() http.Response {
	return r.Response
}

func (c Client) do(req request) (*response, error) {
	controllerUrl := *c.ControllerUrl
	controllerUrl.Path = req.Path
	if req.Query != nil {
		controllerUrl.RawQuery = req.Query.Encode()
	}
	var requestBody io.Reader = nil
	if req.Data != nil {
		requestBodyData, err := json.Marshal(req.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request data: %s", err)
		}
		requestBody = bytes.NewBuffer(requestBodyData)
	}
	httpRequest, err := http.NewRequest(req.Method, controllerUrl.String(), requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request to path[%s]: %s", req.Path, err)
	}
	httpRequest.Header.Add("Content-Type", "application/json")
	httpRequest.Header.Add("User-Agent", fmt.Sprintf("orgmaster/controller-sdk/client-%s", c.Id))
	if c.BearerAuth != nil {
		httpRequest.Header.Add("Authorization", fmt.Sprintf("Bearer %s", c.BearerAuth.Token))
	}
	httpResponse, err := c.HttpClient.Do(httpRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to execute http request to path[%s]: %s", req.Path, err)
	}
	defer httpResponse.Body.Close()
	responseBody, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %s", err)
	}
	if !isControllerResponse(httpResponse) {
		return nil, fmt.Errorf("failed to receive a response from the controller service (status code: %v): %s", httpResponse.StatusCode, string(responseBody))
	}
	var envelope common.HttpResponse
	if err := json.Unmarshal(responseBody, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse response from controller service: %s", err)
	}
	output := &response{
		message:  envelope.Message,
		Response: *httpResponse,
	}
	if !isSuccessResponse(httpResponse) {
		if errorCode, ok := envelope.Data.(string); ok {
			output.errorCode = errorCode
		}
		return output, fmt.Errorf("failed to receive a successful response (status code: %v): %s", httpResponse.StatusCode, envelope.Message)
	}
	if req.Output != nil {
		if envelope.Data == nil {
			return output, ErrorOutputNil
		}
		responseData, err := json.Marshal(envelope.Data)
		if err != nil {
			return output, fmt.Errorf("failed to parse response data from controller service: %s", err)
		}
		if err := json.Unmarshal(responseData, req.Output); err != nil {
			return output, fmt.Errorf("failed to parse response data into the expected output: %s", err)
		}
	}
	return output, nil
}
