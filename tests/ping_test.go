package tests

import (
	"io"
	"net/http"
)

func (s *APITestSuite) TestPing() {
	response := s.do(http.MethodGet, "/ping", "")

	byteBody, err := io.ReadAll(response.Body)
	s.NoError(err)

	response.Body.Close()

	s.Equal(http.StatusOK, response.StatusCode)
	s.Equal("pong", string(byteBody))
}
