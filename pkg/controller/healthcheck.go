package controller

import (
	"errors"
	"net/http"
)

type HealthcheckPingOutput struct {
	Data HealthcheckPingOutputData

	http.Response
}

type HealthcheckPingOutputData struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	Status   string   `json:"status"`
}

func (c Client) HealthcheckPing() (*HealthcheckPingOutput, error) {
	var outputData HealthcheckPingOutputData
	outputClient, err := c.do(request{
		Method: http.MethodGet,
		Path:   "/healthz",
		Output: &outputData,
	})
	if err != nil {
		if errors.Is(err, ErrorOutputNil) || outputClient == nil {
			return nil, err
		}
	}
	return &HealthcheckPingOutput{
		Data:     outputData,
		Response: outputClient.GetResponse(),
	}, err
}

type GetHealthV1Output struct {
	Data GetHealthV1OutputData

	http.Response
}

type GetHealthV1OutputData struct {
	Db string `json:"db"`
}

func (c Client) GetHealthV1() (*GetHealthV1Output, error) {
	var outputData GetHealthV1OutputData
	outputClient, err := c.do(request{
		Method: http.MethodGet,
		Path:   "/health",
		Output: &outputData,
	})
	if err != nil {
		if errors.Is(err, ErrorOutputNil) || outputClient == nil {
			return nil, err
		}
	}
	return &GetHealthV1Output{
		Data:     outputData,
		Response: outputClient.GetResponse(),
	}, err
}
