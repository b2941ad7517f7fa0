package webapi_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/locali/locali/webapi/testutils"
	"github.com/stretchr/testify/suite"
)

type AppTestSuite struct {
	testutils.WebTestSuite
}

func (s *AppTestSuite) TestRootIsOnline() {
	resp := s.MakeRequest("GET", "/", "")
	s.Equal(fiber.StatusOK, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	}
	s.DecodeBody(resp, &body)
	s.Equal("online", body.Status)
	s.NotEmpty(body.Message)
}

func (s *AppTestSuite) TestCORSAllowsAnyOrigin() {
	req := httptest.NewRequest("GET", "/cities", nil)
	req.Header.Set(fiber.HeaderOrigin, "https://example.com")
	resp, err := s.App.Test(req, -1)
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck
	s.Equal("*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}

func (s *AppTestSuite) TestUnknownRouteReturnsProblemJSON() {
	resp := s.MakeRequest("GET", "/nope", "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
	s.Contains(resp.Header.Get(fiber.HeaderContentType), "application/problem+json")
}

func TestAppTestSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}
