package test_utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResponse is what the request helpers hand back to assertions.
type TestResponse struct {
	StatusCode int
	Body       []byte
}

func makeRequest(
	t *testing.T,
	router *gin.Engine,
	method string,
	path string,
	authHeader string,
	body any,
	expectedStatusCode int,
) *TestResponse {
	t.Helper()

	var requestBody *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		requestBody = bytes.NewBuffer(payload)
	} else {
		requestBody = bytes.NewBuffer(nil)
	}

	request, err := http.NewRequest(method, path, requestBody)
	require.NoError(t, err)

	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		request.Header.Set("Authorization", authHeader)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, expectedStatusCode, recorder.Code,
		"unexpected status for %s %s: %s", method, path, recorder.Body.String())

	return &TestResponse{
		StatusCode: recorder.Code,
		Body:       recorder.Body.Bytes(),
	}
}

func MakeGetRequest(
	t *testing.T,
	router *gin.Engine,
	path string,
	authHeader string,
	expectedStatusCode int,
) *TestResponse {
	t.Helper()
	return makeRequest(t, router, http.MethodGet, path, authHeader, nil, expectedStatusCode)
}

func MakePostRequest(
	t *testing.T,
	router *gin.Engine,
	path string,
	authHeader string,
	body any,
	expectedStatusCode int,
) *TestResponse {
	t.Helper()
	return makeRequest(t, router, http.MethodPost, path, authHeader, body, expectedStatusCode)
}

func MakePutRequest(
	t *testing.T,
	router *gin.Engine,
	path string,
	authHeader string,
	body any,
	expectedStatusCode int,
) *TestResponse {
	t.Helper()
	return makeRequest(t, router, http.MethodPut, path, authHeader, body, expectedStatusCode)
}

func MakeDeleteRequest(
	t *testing.T,
	router *gin.Engine,
	path string,
	authHeader string,
	expectedStatusCode int,
) *TestResponse {
	t.Helper()
	return makeRequest(t, router, http.MethodDelete, path, authHeader, nil, expectedStatusCode)
}

func MakeGetRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	path string,
	authHeader string,
	expectedStatusCode int,
	out any,
) *TestResponse {
	t.Helper()

	response := MakeGetRequest(t, router, path, authHeader, expectedStatusCode)
	require.NoError(t, json.Unmarshal(response.Body, out))

	return response
}

func MakePostRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	path string,
	authHeader string,
	body any,
	expectedStatusCode int,
	out any,
) *TestResponse {
	t.Helper()

	response := MakePostRequest(t, router, path, authHeader, body, expectedStatusCode)
	require.NoError(t, json.Unmarshal(response.Body, out))

	return response
}
