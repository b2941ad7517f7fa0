package category_test

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/locali/locali/pkg/domain"
	"github.com/locali/locali/pkg/dto"
	"github.com/locali/locali/webapi/testutils"
	"github.com/stretchr/testify/suite"
)

type CategoryTestSuite struct {
	testutils.WebTestSuite
}

func (s *CategoryTestSuite) TestCreateVariants() {
	testCases := []struct {
		desc       string
		body       string
		wantStatus int
	}{
		{
			desc:       "success",
			body:       `{"name":"Plumbing"}`,
			wantStatus: fiber.StatusCreated,
		},
		{
			desc:       "missing name",
			body:       `{}`,
			wantStatus: fiber.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.MakeRequest("POST", "/categories", tc.body)
			defer resp.Body.Close() //nolint:errcheck
			s.Equal(tc.wantStatus, resp.StatusCode)
		})
	}
}

func (s *CategoryTestSuite) TestGetAndList() {
	s.MakeRequest("POST", "/categories", `{"name":"Plumbing"}`)

	resp := s.MakeRequest("GET", "/categories/1", "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
	var category domain.Category
	s.DecodeData(resp, &category)
	s.Equal("Plumbing", category.Name)

	resp = s.MakeRequest("GET", "/categories", "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
	var categories []domain.Category
	s.DecodeData(resp, &categories)
	s.Len(categories, 1)

	resp = s.MakeRequest("GET", "/categories/9", "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func (s *CategoryTestSuite) TestUpdateEmptyBodyFails() {
	s.MakeRequest("POST", "/categories", `{"name":"Plumbing"}`)

	resp := s.MakeRequest("PUT", "/categories/1", `{}`)
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *CategoryTestSuite) TestDeleteReferencedFailsWithConflict() {
	city, err := s.Cities.Create(context.Background(), &dto.CityCreate{Name: "Campinas", State: "SP"})
	s.Require().NoError(err)
	category, err := s.Categories.Create(context.Background(), &dto.CategoryCreate{Name: "Plumbing"})
	s.Require().NoError(err)
	_, err = s.Services.Create(context.Background(), &dto.ServiceCreate{
		Name: "Fast Plumbing", CityID: city.ID, CategoryID: category.ID,
	})
	s.Require().NoError(err)

	resp := s.MakeRequest("DELETE", "/categories/1", "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *CategoryTestSuite) TestDeleteUnreferencedSucceeds() {
	s.MakeRequest("POST", "/categories", `{"name":"Plumbing"}`)

	resp := s.MakeRequest("DELETE", "/categories/1", "")
	s.Equal(fiber.StatusOK, resp.StatusCode)

	resp = s.MakeRequest("GET", "/categories/1", "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func TestCategoryTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryTestSuite))
}
