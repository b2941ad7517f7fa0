// Package testutils provides a suite base that assembles the full Fiber
// app over in-memory fakes, plus request helpers.
package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/locali/locali/internal/fixtures"
	"github.com/locali/locali/pkg/app"
	"github.com/locali/locali/pkg/config"
	"github.com/locali/locali/pkg/service"
	"github.com/locali/locali/webapi"
	"github.com/stretchr/testify/suite"
)

// WebTestSuite runs handler tests against the assembled app with fresh
// fakes per test.
type WebTestSuite struct {
	suite.Suite
	App        *fiber.App
	Cities     *fixtures.CityRepo
	Categories *fixtures.CategoryRepo
	Users      *fixtures.UserRepo
	Services   *fixtures.ServiceRepo
	Blobs      *fixtures.BlobStore
}

// SetupTest rebuilds the app and all fakes.
func (s *WebTestSuite) SetupTest() {
	s.Cities = fixtures.NewCityRepo()
	s.Categories = fixtures.NewCategoryRepo()
	s.Users = fixtures.NewUserRepo()
	s.Services = fixtures.NewServiceRepo(s.Cities, s.Categories)
	s.Blobs = fixtures.NewBlobStore()

	cfg := &config.AppConfig{
		Env: "test",
		Storage: config.StorageConfig{
			AvatarBucket: "avatars",
			LogoBucket:   "logos",
		},
		RateLimit: config.RateLimitConfig{MaxRequests: 10000, Window: time.Minute},
	}
	logger := slog.Default()

	assetSvc := service.NewAssetService(s.Users, s.Services, s.Blobs, cfg.Storage, logger)
	s.App = webapi.SetupApp(&app.App{
		Config:          cfg,
		Logger:          logger,
		CityService:     service.NewCityService(s.Cities, s.Services, logger),
		CategoryService: service.NewCategoryService(s.Categories, s.Services, logger),
		UserService:     service.NewUserService(s.Users, assetSvc, logger),
		ServiceService:  service.NewServiceService(s.Services, s.Cities, s.Categories, assetSvc, logger),
		AssetService:    assetSvc,
	})
}

// MakeRequest sends a JSON request through the app.
func (s *WebTestSuite) MakeRequest(method, path, body string) *http.Response {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.App.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// MakeUpload sends a multipart request with a single file part named
// "file".
func (s *WebTestSuite) MakeUpload(path, fileName, contentType string, content []byte) *http.Response {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	partHeader.Set("Content-Type", contentType)
	part, err := writer.CreatePart(partHeader)
	s.Require().NoError(err)
	_, err = part.Write(content)
	s.Require().NoError(err)
	s.Require().NoError(writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := s.App.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// DecodeData unmarshals the data field of the success envelope into out.
func (s *WebTestSuite) DecodeData(resp *http.Response, out any) {
	defer resp.Body.Close() //nolint:errcheck
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&envelope))
	s.Require().NoError(json.Unmarshal(envelope.Data, out))
}

// DecodeBody unmarshals a flat JSON response body into out.
func (s *WebTestSuite) DecodeBody(resp *http.Response, out any) {
	defer resp.Body.Close() //nolint:errcheck
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
}
