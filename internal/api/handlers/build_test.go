package handlers_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"pc-build-tracker-backend/internal/api/handlers"
	apperrors "pc-build-tracker-backend/internal/errors"
	"pc-build-tracker-backend/internal/mocks"
	"pc-build-tracker-backend/internal/service"
	"pc-build-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testMaxImageBytes = 64

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

// BuildHandlerTestSuite defines the test suite for BuildHandler
type BuildHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockBuildServiceInterface
	handler     *handlers.BuildHandler
	http        *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *BuildHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockBuildServiceInterface(suite.ctrl)
	suite.handler = handlers.NewBuildHandler(suite.mockService, testMaxImageBytes)
	suite.http = testutils.SetupHTTPTest()

	router := suite.http.Router
	router.GET("/public/builds/:id", suite.handler.GetPublicBuild)
	router.GET("/anonymous/builds", suite.handler.ListBuilds)

	builds := router.Group("/builds", withUser(testUserID))
	builds.GET("", suite.handler.ListBuilds)
	builds.POST("", suite.handler.CreateBuild)
	builds.GET("/:id", suite.handler.GetBuild)
	builds.PATCH("/:id", suite.handler.PatchBuild)
	builds.DELETE("/:id", suite.handler.DeleteBuild)
	builds.POST("/:id/duplicate", suite.handler.DuplicateBuild)
	builds.POST("/:id/components", suite.handler.AddComponent)
	builds.DELETE("/:id/components/:componentId", suite.handler.RemoveComponent)
	builds.PUT("/:id/components/:componentId", suite.handler.ReplaceComponent)
	builds.PUT("/:id/image", suite.handler.SetImage)
	builds.DELETE("/:id/image", suite.handler.ClearImage)
}

// TearDownTest cleans up after each test
func (suite *BuildHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BuildHandlerTestSuite) TestCreateBuild() {
	suite.Run("passes build fields and component ids", func() {
		cpu, gpu := uuid.New(), uuid.New()
		buildID := uuid.New()
		suite.mockService.EXPECT().
			CreateBuildWithComponents(gomock.Any(), testUserID, gomock.Any(), []uuid.UUID{cpu, gpu, gpu}).
			DoAndReturn(func(_ context.Context, _ string, req *service.CreateBuildRequest, _ []uuid.UUID) (*service.BuildView, error) {
				suite.Equal("Budget Gamer", req.Name)
				suite.Equal(850.0, req.TotalCost)
				return &service.BuildView{ID: buildID, Name: req.Name}, nil
			})

		w := suite.http.MakeRequest(http.MethodPost, "/builds", map[string]interface{}{
			"name":          "Budget Gamer",
			"total_cost":    850,
			"component_ids": []string{cpu.String(), gpu.String(), gpu.String()},
		})

		suite.Equal(http.StatusCreated, w.Code)
		var body service.BuildView
		testutils.ParseJSONResponse(suite.T(), w, &body)
		suite.Equal(buildID, body.ID)
	})

	suite.Run("invalid component id in body", func() {
		w := suite.http.MakeRequest(http.MethodPost, "/builds", map[string]interface{}{
			"name":          "Bad",
			"component_ids": []string{"nope"},
		})
		suite.Equal(http.StatusBadRequest, w.Code)
	})

	suite.Run("missing component is not found", func() {
		missing := uuid.New()
		suite.mockService.EXPECT().
			CreateBuildWithComponents(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewNotFoundError("component", missing.String()))

		w := suite.http.MakeRequest(http.MethodPost, "/builds", map[string]interface{}{
			"name":          "Ghost",
			"component_ids": []string{missing.String()},
		})
		testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, missing.String())
	})
}

func (suite *BuildHandlerTestSuite) TestListBuilds() {
	suite.Run("lists the caller's builds", func() {
		suite.mockService.EXPECT().
			ListBuildsForUser(gomock.Any(), testUserID).
			Return([]service.BuildView{{Name: "newer"}, {Name: "older"}}, nil)

		w := suite.http.MakeRequest(http.MethodGet, "/builds", nil)

		suite.Equal(http.StatusOK, w.Code)
		var body []service.BuildView
		testutils.ParseJSONResponse(suite.T(), w, &body)
		suite.Require().Len(body, 2)
		suite.Equal("newer", body[0].Name)
	})

	suite.Run("requires an authenticated user", func() {
		w := suite.http.MakeRequest(http.MethodGet, "/anonymous/builds", nil)
		suite.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (suite *BuildHandlerTestSuite) TestErrorMapping() {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", apperrors.ErrEmptyPatch, http.StatusBadRequest, "no updatable fields"},
		{"not found", apperrors.ErrBuildNotFound, http.StatusNotFound, "build not found"},
		{"not owned", apperrors.ErrBuildNotOwned, http.StatusForbidden, "another user"},
		{"conflict", apperrors.ErrAssociationChanged, http.StatusConflict, "concurrently"},
		{"storage", apperrors.NewStorageError("get build", errors.New("dial tcp: refused")), http.StatusServiceUnavailable, "storage temporarily unavailable"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			id := uuid.New()
			suite.mockService.EXPECT().GetBuild(gomock.Any(), id, testUserID).Return(nil, tc.err)

			w := suite.http.MakeRequest(http.MethodGet, "/builds/"+id.String(), nil)
			testutils.AssertErrorResponse(suite.T(), w, tc.status, tc.message)
			suite.NotContains(w.Body.String(), "refused")
		})
	}
}

func (suite *BuildHandlerTestSuite) TestPatchBuild() {
	suite.Run("null clears and absent keys stay untouched", func() {
		id := uuid.New()
		suite.mockService.EXPECT().
			PatchBuild(gomock.Any(), id, testUserID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, patch *service.BuildPatch) (*service.BuildView, error) {
				suite.True(patch.SalePrice.Set)
				suite.Nil(patch.SalePrice.Value)
				suite.True(patch.Status.Set)
				suite.False(patch.Name.Set)
				suite.False(patch.TotalCost.Set)
				return &service.BuildView{ID: id}, nil
			})

		w := suite.http.MakeRequest(http.MethodPatch, "/builds/"+id.String(), `{"sale_price":null,"status":"completed"}`)
		suite.Equal(http.StatusOK, w.Code)
	})

	suite.Run("invalid build id", func() {
		w := suite.http.MakeRequest(http.MethodPatch, "/builds/123", map[string]interface{}{"name": "x"})
		testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid build ID")
	})
}

func (suite *BuildHandlerTestSuite) TestDeleteAndDuplicate() {
	id := uuid.New()
	copyID := uuid.New()

	suite.mockService.EXPECT().DeleteBuild(gomock.Any(), id, testUserID).Return(nil)
	w := suite.http.MakeRequest(http.MethodDelete, "/builds/"+id.String(), nil)
	suite.Equal(http.StatusNoContent, w.Code)

	suite.mockService.EXPECT().
		DuplicateBuild(gomock.Any(), id, testUserID).
		Return(&service.BuildView{ID: copyID, Name: "Rig (Copy)"}, nil)
	w = suite.http.MakeRequest(http.MethodPost, "/builds/"+id.String()+"/duplicate", nil)
	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), "Rig (Copy)")
}

func (suite *BuildHandlerTestSuite) TestComponentEntries() {
	buildID, oldID, newID := uuid.New(), uuid.New(), uuid.New()

	suite.Run("add", func() {
		suite.mockService.EXPECT().
			AddComponent(gomock.Any(), buildID, testUserID, newID).
			Return(&service.BuildView{ID: buildID}, nil)

		w := suite.http.MakeRequest(http.MethodPost, "/builds/"+buildID.String()+"/components",
			map[string]string{"component_id": newID.String()})
		suite.Equal(http.StatusOK, w.Code)
	})

	suite.Run("add without component id", func() {
		w := suite.http.MakeRequest(http.MethodPost, "/builds/"+buildID.String()+"/components", map[string]string{})
		testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "component_id is required")
	})

	suite.Run("add second cpu conflicts", func() {
		suite.mockService.EXPECT().
			AddComponent(gomock.Any(), buildID, testUserID, newID).
			Return(nil, apperrors.ErrSingletonCategoryTaken)

		w := suite.http.MakeRequest(http.MethodPost, "/builds/"+buildID.String()+"/components",
			map[string]string{"component_id": newID.String()})
		suite.Equal(http.StatusConflict, w.Code)
	})

	suite.Run("remove", func() {
		suite.mockService.EXPECT().
			RemoveComponent(gomock.Any(), buildID, testUserID, oldID).
			Return(&service.BuildView{ID: buildID}, nil)

		w := suite.http.MakeRequest(http.MethodDelete, "/builds/"+buildID.String()+"/components/"+oldID.String(), nil)
		suite.Equal(http.StatusOK, w.Code)
	})

	suite.Run("remove with invalid component id", func() {
		w := suite.http.MakeRequest(http.MethodDelete, "/builds/"+buildID.String()+"/components/xyz", nil)
		testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid component ID")
	})

	suite.Run("replace", func() {
		suite.mockService.EXPECT().
			ReplaceComponent(gomock.Any(), buildID, testUserID, oldID, newID).
			Return(&service.BuildView{ID: buildID}, nil)

		w := suite.http.MakeRequest(http.MethodPut, "/builds/"+buildID.String()+"/components/"+oldID.String(),
			map[string]string{"new_component_id": newID.String()})
		suite.Equal(http.StatusOK, w.Code)
	})

	suite.Run("replace without new component id", func() {
		w := suite.http.MakeRequest(http.MethodPut, "/builds/"+buildID.String()+"/components/"+oldID.String(), map[string]string{})
		testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "new_component_id is required")
	})
}

func (suite *BuildHandlerTestSuite) TestSetImage() {
	id := uuid.New()
	url := "/builds/" + id.String() + "/image"

	suite.Run("stores a png", func() {
		suite.mockService.EXPECT().
			SetImage(gomock.Any(), id, testUserID, pngHeader, "image/png").
			Return(&service.BuildView{ID: id, ImageRef: "builds/x.png"}, nil)

		w := suite.http.MakeMultipartRequest(http.MethodPut, url, "image", "rig.png", "image/png", pngHeader)
		suite.Equal(http.StatusOK, w.Code)
	})

	suite.Run("sniffs the type when the part is untyped", func() {
		suite.mockService.EXPECT().
			SetImage(gomock.Any(), id, testUserID, pngHeader, "image/png").
			Return(&service.BuildView{ID: id}, nil)

		w := suite.http.MakeMultipartRequest(http.MethodPut, url, "image", "rig", "application/octet-stream", pngHeader)
		suite.Equal(http.StatusOK, w.Code)
	})

	suite.Run("rejects unsupported types", func() {
		w := suite.http.MakeMultipartRequest(http.MethodPut, url, "image", "notes.txt", "text/plain", []byte("hello"))
		testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "unsupported content type")
	})

	suite.Run("rejects oversized uploads", func() {
		data := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, testMaxImageBytes)...)
		w := suite.http.MakeMultipartRequest(http.MethodPut, url, "image", "big.png", "image/png", data)
		testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "exceeds maximum size")
	})

	suite.Run("requires the image field", func() {
		w := suite.http.MakeMultipartRequest(http.MethodPut, url, "file", "rig.png", "image/png", pngHeader)
		testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "image file is required")
	})

	suite.Run("clear", func() {
		suite.mockService.EXPECT().ClearImage(gomock.Any(), id, testUserID).Return(nil)

		w := suite.http.MakeRequest(http.MethodDelete, url, nil)
		suite.Equal(http.StatusNoContent, w.Code)
	})
}

func (suite *BuildHandlerTestSuite) TestGetPublicBuild() {
	id := uuid.New()
	suite.mockService.EXPECT().
		GetPublicBuildView(gomock.Any(), id).
		Return(&service.PublicBuildView{ID: id, Name: "Showcase"}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/public/builds/"+id.String(), nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Showcase")
	suite.NotContains(w.Body.String(), "user_id")
	suite.NotContains(w.Body.String(), "sale_price")
}

// Run the test suite
func TestBuildHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BuildHandlerTestSuite))
}
