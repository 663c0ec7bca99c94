package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"pc-build-tracker-backend/internal/api/handlers"
	"pc-build-tracker-backend/internal/database/models"
	apperrors "pc-build-tracker-backend/internal/errors"
	"pc-build-tracker-backend/internal/mocks"
	"pc-build-tracker-backend/internal/service"
	"pc-build-tracker-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testUserID = "user-123"

// withUser stands in for the auth middleware
func withUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

// ComponentHandlerTestSuite defines the test suite for ComponentHandler
type ComponentHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockComponentServiceInterface
	handler     *handlers.ComponentHandler
	http        *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ComponentHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockComponentServiceInterface(suite.ctrl)
	suite.handler = handlers.NewComponentHandler(suite.mockService)
	suite.http = testutils.SetupHTTPTest()

	router := suite.http.Router
	router.GET("/anonymous/components", suite.handler.ListComponents)

	components := router.Group("/components", withUser(testUserID))
	components.GET("", suite.handler.ListComponents)
	components.POST("", suite.handler.CreateComponent)
	components.GET("/:id", suite.handler.GetComponent)
	components.PATCH("/:id", suite.handler.UpdateComponent)
	components.DELETE("/:id", suite.handler.DeleteComponent)
}

// TearDownTest cleans up after each test
func (suite *ComponentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ComponentHandlerTestSuite) TestListComponents() {
	suite.Run("passes the category filter through", func() {
		cpu := models.CategoryCPU
		suite.mockService.EXPECT().
			ListVisible(gomock.Any(), testUserID, &cpu).
			Return([]service.ComponentResponse{{ID: uuid.New(), Name: "Ryzen 7", Category: cpu, IsCatalog: true}}, nil)

		w := suite.http.MakeRequest(http.MethodGet, "/components?category=cpu", nil)

		suite.Equal(http.StatusOK, w.Code)
		var body []service.ComponentResponse
		testutils.ParseJSONResponse(suite.T(), w, &body)
		suite.Require().Len(body, 1)
		suite.Equal("Ryzen 7", body[0].Name)
	})

	suite.Run("without filter", func() {
		suite.mockService.EXPECT().
			ListVisible(gomock.Any(), testUserID, nil).
			Return([]service.ComponentResponse{}, nil)

		w := suite.http.MakeRequest(http.MethodGet, "/components", nil)
		suite.Equal(http.StatusOK, w.Code)
	})

	suite.Run("unknown category is a bad request", func() {
		suite.mockService.EXPECT().
			ListVisible(gomock.Any(), testUserID, gomock.Any()).
			Return(nil, apperrors.NewValidationError("category", `unknown category "psu"`))

		w := suite.http.MakeRequest(http.MethodGet, "/components?category=psu", nil)
		testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "category")
	})

	suite.Run("requires an authenticated user", func() {
		w := suite.http.MakeRequest(http.MethodGet, "/anonymous/components", nil)
		testutils.AssertErrorResponse(suite.T(), w, http.StatusUnauthorized, "authentication required")
	})
}

func (suite *ComponentHandlerTestSuite) TestGetComponent() {
	suite.Run("invalid id", func() {
		w := suite.http.MakeRequest(http.MethodGet, "/components/not-a-uuid", nil)
		testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid component ID")
	})

	suite.Run("not visible", func() {
		id := uuid.New()
		suite.mockService.EXPECT().
			GetVisible(gomock.Any(), id, testUserID).
			Return(nil, apperrors.NewNotFoundError("component", id.String()))

		w := suite.http.MakeRequest(http.MethodGet, "/components/"+id.String(), nil)
		testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "not found")
	})
}

func (suite *ComponentHandlerTestSuite) TestCreateComponent() {
	suite.Run("created", func() {
		id := uuid.New()
		owner := testUserID
		suite.mockService.EXPECT().
			Create(gomock.Any(), testUserID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req *service.CreateComponentRequest) (*service.ComponentResponse, error) {
				suite.Equal("RTX 4070", req.Name)
				suite.Equal(models.CategoryGPU, req.Category)
				return &service.ComponentResponse{ID: id, Name: req.Name, Category: req.Category, OwnerID: &owner}, nil
			})

		w := suite.http.MakeRequest(http.MethodPost, "/components", map[string]interface{}{
			"name":     "RTX 4070",
			"category": "gpu",
			"brand":    "NVIDIA",
			"model":    "4070",
		})

		suite.Equal(http.StatusCreated, w.Code)
		var body service.ComponentResponse
		testutils.ParseJSONResponse(suite.T(), w, &body)
		suite.Equal(id, body.ID)
	})

	suite.Run("malformed json", func() {
		w := suite.http.MakeRequest(http.MethodPost, "/components", `{"name":`)
		suite.Equal(http.StatusBadRequest, w.Code)
	})
}

func (suite *ComponentHandlerTestSuite) TestUpdateComponent() {
	suite.Run("catalog entries are forbidden", func() {
		id := uuid.New()
		suite.mockService.EXPECT().
			Update(gomock.Any(), id, testUserID, gomock.Any()).
			Return(nil, apperrors.ErrCatalogComponentLocked)

		w := suite.http.MakeRequest(http.MethodPatch, "/components/"+id.String(), map[string]interface{}{"name": "x"})
		testutils.AssertErrorResponse(suite.T(), w, http.StatusForbidden, "catalog")
	})

	suite.Run("only supplied keys are marked present", func() {
		id := uuid.New()
		suite.mockService.EXPECT().
			Update(gomock.Any(), id, testUserID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, req *service.UpdateComponentRequest) (*service.ComponentResponse, error) {
				suite.True(req.Brand.Set)
				suite.Equal("AMD", req.Brand.Value)
				suite.False(req.Name.Set)
				suite.False(req.Specs.Set)
				return &service.ComponentResponse{ID: id, Brand: "AMD"}, nil
			})

		w := suite.http.MakeRequest(http.MethodPatch, "/components/"+id.String(), map[string]interface{}{"brand": "AMD"})
		suite.Equal(http.StatusOK, w.Code)
	})
}

func (suite *ComponentHandlerTestSuite) TestDeleteComponent() {
	suite.Run("deleted", func() {
		id := uuid.New()
		suite.mockService.EXPECT().Delete(gomock.Any(), id, testUserID).Return(nil)

		w := suite.http.MakeRequest(http.MethodDelete, "/components/"+id.String(), nil)
		suite.Equal(http.StatusNoContent, w.Code)
	})

	suite.Run("in use", func() {
		id := uuid.New()
		suite.mockService.EXPECT().Delete(gomock.Any(), id, testUserID).Return(apperrors.ErrComponentInUse)

		w := suite.http.MakeRequest(http.MethodDelete, "/components/"+id.String(), nil)
		testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "in use")
	})
}

// Run the test suite
func TestComponentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ComponentHandlerTestSuite))
}
