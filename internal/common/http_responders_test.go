package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendHttpSuccessResponse(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	SendHttpSuccessResponse(recorder, request, http.StatusCreated, "ok", map[string]string{"hello": "world"})

	if recorder.Code != http.StatusCreated {
		t.Errorf("expected status %v, got %v", http.StatusCreated, recorder.Code)
	}
	if contentType := recorder.Header().Get("Content-Type"); contentType != "application/json" {
		t.Errorf("expected content type application/json, got %s", contentType)
	}
	var response HttpResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response body: %s", err)
	}
	if !response.Success {
		t.Errorf("expected success to be true")
	}
	if response.Message != "ok" {
		t.Errorf("expected message[ok], got [%s]", response.Message)
	}
}

func TestSendHttpFailResponse(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	SendHttpFailResponse(recorder, request, http.StatusConflict, "failed to create resource", errors.New("duplicate_entry"))

	if recorder.Code != http.StatusConflict {
		t.Errorf("expected status %v, got %v", http.StatusConflict, recorder.Code)
	}
	var response HttpResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response body: %s", err)
	}
	if response.Success {
		t.Errorf("expected success to be false")
	}
	if errorCode, _ := response.Data.(string); errorCode != "duplicate_entry" {
		t.Errorf("expected error code[duplicate_entry], got [%v]", response.Data)
	}
}

func TestSendHttpFailResponseWithoutErrorCode(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	SendHttpFailResponse(recorder, request, http.StatusInternalServerError, "something went wrong")

	var response HttpResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response body: %s", err)
	}
	if errorCode, _ := response.Data.(string); errorCode != "generic_error" {
		t.Errorf("expected error code[generic_error], got [%v]", response.Data)
	}
}
