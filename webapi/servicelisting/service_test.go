package servicelisting_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/locali/locali/pkg/domain"
	"github.com/locali/locali/pkg/dto"
	"github.com/locali/locali/webapi/testutils"
	"github.com/stretchr/testify/suite"
)

type ServiceTestSuite struct {
	testutils.WebTestSuite
}

// seedRefs creates a city and a category and returns their ids.
func (s *ServiceTestSuite) seedRefs() (uint, uint) {
	city, err := s.Cities.Create(context.Background(), &dto.CityCreate{Name: "Campinas", State: "SP"})
	s.Require().NoError(err)
	category, err := s.Categories.Create(context.Background(), &dto.CategoryCreate{Name: "Plumbing"})
	s.Require().NoError(err)
	return city.ID, category.ID
}

func (s *ServiceTestSuite) TestCreateVariants() {
	cityID, categoryID := s.seedRefs()

	testCases := []struct {
		desc       string
		body       string
		wantStatus int
	}{
		{
			desc:       "success",
			body:       fmt.Sprintf(`{"name":"Fast Plumbing","city_id":%d,"category_id":%d}`, cityID, categoryID),
			wantStatus: fiber.StatusCreated,
		},
		{
			desc:       "unknown city",
			body:       fmt.Sprintf(`{"name":"Fast Plumbing","city_id":42,"category_id":%d}`, categoryID),
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "unknown category",
			body:       fmt.Sprintf(`{"name":"Fast Plumbing","city_id":%d,"category_id":42}`, cityID),
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "missing references",
			body:       `{"name":"Fast Plumbing"}`,
			wantStatus: fiber.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.MakeRequest("POST", "/services", tc.body)
			defer resp.Body.Close() //nolint:errcheck
			s.Equal(tc.wantStatus, resp.StatusCode)
		})
	}

	// Only the valid create left a row behind.
	services, err := s.Services.List(context.Background(), nil)
	s.Require().NoError(err)
	s.Len(services, 1)
}

func (s *ServiceTestSuite) TestGetCarriesJoins() {
	cityID, categoryID := s.seedRefs()
	created, err := s.Services.Create(context.Background(), &dto.ServiceCreate{
		Name: "Fast Plumbing", CityID: cityID, CategoryID: categoryID,
	})
	s.Require().NoError(err)

	resp := s.MakeRequest("GET", fmt.Sprintf("/services/%d", created.ID), "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
	var got domain.Service
	s.DecodeData(resp, &got)
	s.Equal("Campinas", got.City.Name)
	s.Equal("SP", got.City.State)
	s.Equal("Plumbing", got.Category.Name)
}

func (s *ServiceTestSuite) TestListFilters() {
	cityID, categoryID := s.seedRefs()
	otherCity, err := s.Cities.Create(context.Background(), &dto.CityCreate{Name: "Niterói", State: "RJ"})
	s.Require().NoError(err)

	_, err = s.Services.Create(context.Background(), &dto.ServiceCreate{
		Name: "Fast Plumbing", CityID: cityID, CategoryID: categoryID,
	})
	s.Require().NoError(err)
	_, err = s.Services.Create(context.Background(), &dto.ServiceCreate{
		Name: "Coastal Plumbing", CityID: otherCity.ID, CategoryID: categoryID,
	})
	s.Require().NoError(err)

	resp := s.MakeRequest("GET", fmt.Sprintf("/services?city_id=%d", cityID), "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
	var services []domain.Service
	s.DecodeData(resp, &services)
	s.Require().Len(services, 1)
	s.Equal(cityID, services[0].CityID)
	s.Equal("Campinas", services[0].City.Name)

	resp = s.MakeRequest("GET", fmt.Sprintf("/services?category_id=%d", categoryID), "")
	s.DecodeData(resp, &services)
	s.Len(services, 2)

	resp = s.MakeRequest("GET", "/services", "")
	s.DecodeData(resp, &services)
	s.Len(services, 2)

	resp = s.MakeRequest("GET", "/services?city_id=42", "")
	s.DecodeData(resp, &services)
	s.Empty(services)
}

func (s *ServiceTestSuite) TestUpdateVariants() {
	cityID, categoryID := s.seedRefs()
	created, err := s.Services.Create(context.Background(), &dto.ServiceCreate{
		Name: "Fast Plumbing", CityID: cityID, CategoryID: categoryID,
	})
	s.Require().NoError(err)

	testCases := []struct {
		desc       string
		path       string
		body       string
		wantStatus int
	}{
		{
			desc:       "rename",
			path:       fmt.Sprintf("/services/%d", created.ID),
			body:       `{"name":"Faster Plumbing"}`,
			wantStatus: fiber.StatusOK,
		},
		{
			desc:       "unknown city reference",
			path:       fmt.Sprintf("/services/%d", created.ID),
			body:       `{"city_id":42}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "empty body",
			path:       fmt.Sprintf("/services/%d", created.ID),
			body:       `{}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "unknown id",
			path:       "/services/42",
			body:       `{"name":"Nothing"}`,
			wantStatus: fiber.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.MakeRequest("PUT", tc.path, tc.body)
			defer resp.Body.Close() //nolint:errcheck
			s.Equal(tc.wantStatus, resp.StatusCode)
		})
	}
}

func (s *ServiceTestSuite) TestLogoLifecycle() {
	cityID, categoryID := s.seedRefs()
	created, err := s.Services.Create(context.Background(), &dto.ServiceCreate{
		Name: "Fast Plumbing", CityID: cityID, CategoryID: categoryID,
	})
	s.Require().NoError(err)

	resp := s.MakeUpload(fmt.Sprintf("/services/%d/logo", created.ID), "logo.svg", "image/svg+xml", []byte("<svg/>"))
	s.Equal(fiber.StatusOK, resp.StatusCode)
	var uploaded struct {
		LogoURL string `json:"logo_url"`
	}
	s.DecodeBody(resp, &uploaded)
	s.NotEmpty(uploaded.LogoURL)
	s.Equal(1, s.Blobs.Len())

	resp = s.MakeRequest("GET", fmt.Sprintf("/services/%d", created.ID), "")
	var got domain.Service
	s.DecodeData(resp, &got)
	s.Require().NotNil(got.LogoURL)
	s.Equal(uploaded.LogoURL, *got.LogoURL)

	resp = s.MakeRequest("DELETE", fmt.Sprintf("/services/%d/logo", created.ID), "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.Zero(s.Blobs.Len())
}

func (s *ServiceTestSuite) TestDeleteLogoWithoutOneFails() {
	cityID, categoryID := s.seedRefs()
	created, err := s.Services.Create(context.Background(), &dto.ServiceCreate{
		Name: "Fast Plumbing", CityID: cityID, CategoryID: categoryID,
	})
	s.Require().NoError(err)

	resp := s.MakeRequest("DELETE", fmt.Sprintf("/services/%d/logo", created.ID), "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *ServiceTestSuite) TestLogoUploadForUnknownServiceWritesNoBlob() {
	resp := s.MakeUpload("/services/42/logo", "logo.svg", "image/svg+xml", []byte("<svg/>"))
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
	s.Zero(s.Blobs.Len())
}

func (s *ServiceTestSuite) TestDeleteServiceSucceedsEvenIfBlobRemovalFails() {
	cityID, categoryID := s.seedRefs()
	created, err := s.Services.Create(context.Background(), &dto.ServiceCreate{
		Name: "Fast Plumbing", CityID: cityID, CategoryID: categoryID,
	})
	s.Require().NoError(err)

	resp := s.MakeUpload(fmt.Sprintf("/services/%d/logo", created.ID), "logo.svg", "image/svg+xml", []byte("<svg/>"))
	s.Equal(fiber.StatusOK, resp.StatusCode)

	s.Blobs.RemoveErr = errors.New("bucket unavailable")
	resp = s.MakeRequest("DELETE", fmt.Sprintf("/services/%d", created.ID), "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)

	found, err := s.Services.Get(context.Background(), created.ID)
	s.Require().NoError(err)
	s.Nil(found)
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
