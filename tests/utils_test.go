package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

func decodeResponseBody[T any](resp *http.Response) (*T, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return &result, nil
}

func (s *APITestSuite) do(method, path, body string) *http.Response {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}

	req, err := http.NewRequest(method, s.baseUrl+path, reader)
	s.Require().NoError(err)

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	response, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)

	return response
}
