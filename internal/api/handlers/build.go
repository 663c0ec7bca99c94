package handlers

import (
	"io"
	"mime"
	"net/http"

	"pc-build-tracker-backend/internal/auth"
	"pc-build-tracker-backend/internal/service"
	"pc-build-tracker-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BuildHandler handles HTTP requests for builds and their components
type BuildHandler struct {
	buildService  service.BuildServiceInterface
	maxImageBytes int64
}

// NewBuildHandler creates a new build handler
func NewBuildHandler(buildService service.BuildServiceInterface, maxImageBytes int64) *BuildHandler {
	if maxImageBytes <= 0 {
		maxImageBytes = storage.DefaultMaxImageBytes
	}
	return &BuildHandler{
		buildService:  buildService,
		maxImageBytes: maxImageBytes,
	}
}

// CreateBuildBody is the request body for POST /builds
type CreateBuildBody struct {
	service.CreateBuildRequest
	ComponentIDs []uuid.UUID `json:"component_ids"`
}

// AddComponentBody is the request body for POST /builds/:id/components
type AddComponentBody struct {
	ComponentID uuid.UUID `json:"component_id"`
}

// ReplaceComponentBody is the request body for PUT /builds/:id/components/:componentId
type ReplaceComponentBody struct {
	NewComponentID uuid.UUID `json:"new_component_id"`
}

// ListBuilds handles GET /builds
// @Summary List builds
// @Description List the caller's builds, newest first, with their components
// @Tags builds
// @Produce json
// @Success 200 {array} service.BuildView "Successfully retrieved builds"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /builds [get]
func (h *BuildHandler) ListBuilds(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	builds, err := h.buildService.ListBuildsForUser(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, builds)
}

// CreateBuild handles POST /builds
// @Summary Create a build
// @Description Create a build together with its initial components. Repeated component IDs add repeated entries.
// @Tags builds
// @Accept json
// @Produce json
// @Param build body CreateBuildBody true "Build data and component IDs"
// @Success 201 {object} service.BuildView "Successfully created build"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Security BearerAuth
// @Router /builds [post]
func (h *BuildHandler) CreateBuild(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var body CreateBuildBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.buildService.CreateBuildWithComponents(c.Request.Context(), userID, &body.CreateBuildRequest, body.ComponentIDs)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// GetBuild handles GET /builds/:id
// @Summary Get a build
// @Description Get one of the caller's builds with its projected components
// @Tags builds
// @Produce json
// @Param id path string true "Build ID"
// @Success 200 {object} service.BuildView "Successfully retrieved build"
// @Failure 403 {object} ErrorResponse "Build belongs to another user"
// @Failure 404 {object} ErrorResponse "Build not found"
// @Security BearerAuth
// @Router /builds/{id} [get]
func (h *BuildHandler) GetBuild(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "build")
	if !ok {
		return
	}

	view, err := h.buildService.GetBuild(c.Request.Context(), id, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetPublicBuild handles GET /public/builds/:id
// @Summary Get a shared build
// @Description Get the public view of a build. Owner identity and sale financials are omitted.
// @Tags public
// @Produce json
// @Param id path string true "Build ID"
// @Success 200 {object} service.PublicBuildView "Successfully retrieved build"
// @Failure 404 {object} ErrorResponse "Build not found"
// @Router /public/builds/{id} [get]
func (h *BuildHandler) GetPublicBuild(c *gin.Context) {
	id, ok := pathUUID(c, "id", "build")
	if !ok {
		return
	}

	view, err := h.buildService.GetPublicBuildView(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// PatchBuild handles PATCH /builds/:id
// @Summary Update a build
// @Description Partially update a build. Only supplied keys change; null clears nullable fields.
// @Tags builds
// @Accept json
// @Produce json
// @Param id path string true "Build ID"
// @Param patch body service.BuildPatch true "Fields to change"
// @Success 200 {object} service.BuildView "Successfully updated build"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Build belongs to another user"
// @Failure 404 {object} ErrorResponse "Build not found"
// @Security BearerAuth
// @Router /builds/{id} [patch]
func (h *BuildHandler) PatchBuild(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "build")
	if !ok {
		return
	}

	var patch service.BuildPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.buildService.PatchBuild(c.Request.Context(), id, userID, &patch)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// DeleteBuild handles DELETE /builds/:id
// @Summary Delete a build
// @Description Delete a build and all of its component entries
// @Tags builds
// @Param id path string true "Build ID"
// @Success 204 "Successfully deleted build"
// @Failure 403 {object} ErrorResponse "Build belongs to another user"
// @Failure 404 {object} ErrorResponse "Build not found"
// @Security BearerAuth
// @Router /builds/{id} [delete]
func (h *BuildHandler) DeleteBuild(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "build")
	if !ok {
		return
	}

	if err := h.buildService.DeleteBuild(c.Request.Context(), id, userID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// DuplicateBuild handles POST /builds/:id/duplicate
// @Summary Duplicate a build
// @Description Copy a build and its component entries under a new id. The image is not copied.
// @Tags builds
// @Produce json
// @Param id path string true "Source build ID"
// @Success 201 {object} service.BuildView "Successfully duplicated build"
// @Failure 403 {object} ErrorResponse "Build belongs to another user"
// @Failure 404 {object} ErrorResponse "Build not found"
// @Security BearerAuth
// @Router /builds/{id}/duplicate [post]
func (h *BuildHandler) DuplicateBuild(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "build")
	if !ok {
		return
	}

	view, err := h.buildService.DuplicateBuild(c.Request.Context(), id, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// AddComponent handles POST /builds/:id/components
// @Summary Add a component to a build
// @Description Append one component entry to a build
// @Tags builds
// @Accept json
// @Produce json
// @Param id path string true "Build ID"
// @Param body body AddComponentBody true "Component to add"
// @Success 200 {object} service.BuildView "Component added"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Build or component not found"
// @Failure 409 {object} ErrorResponse "Build already has a CPU or motherboard"
// @Security BearerAuth
// @Router /builds/{id}/components [post]
func (h *BuildHandler) AddComponent(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "build")
	if !ok {
		return
	}

	var body AddComponentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if body.ComponentID == uuid.Nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "component_id is required"})
		return
	}

	view, err := h.buildService.AddComponent(c.Request.Context(), id, userID, body.ComponentID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// RemoveComponent handles DELETE /builds/:id/components/:componentId
// @Summary Remove a component from a build
// @Description Remove exactly one entry referencing the component
// @Tags builds
// @Produce json
// @Param id path string true "Build ID"
// @Param componentId path string true "Component ID"
// @Success 200 {object} service.BuildView "Component removed"
// @Failure 404 {object} ErrorResponse "Build or entry not found"
// @Failure 409 {object} ErrorResponse "Entry changed concurrently"
// @Security BearerAuth
// @Router /builds/{id}/components/{componentId} [delete]
func (h *BuildHandler) RemoveComponent(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "build")
	if !ok {
		return
	}
	componentID, ok := pathUUID(c, "componentId", "component")
	if !ok {
		return
	}

	view, err := h.buildService.RemoveComponent(c.Request.Context(), id, userID, componentID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// ReplaceComponent handles PUT /builds/:id/components/:componentId
// @Summary Replace a component in a build
// @Description Swap one entry's component for another of the same category, keeping its position
// @Tags builds
// @Accept json
// @Produce json
// @Param id path string true "Build ID"
// @Param componentId path string true "Component ID being replaced"
// @Param body body ReplaceComponentBody true "Replacement component"
// @Success 200 {object} service.BuildView "Component replaced"
// @Failure 400 {object} ErrorResponse "Invalid input or category mismatch"
// @Failure 404 {object} ErrorResponse "Build, entry or component not found"
// @Failure 409 {object} ErrorResponse "Entry changed concurrently"
// @Security BearerAuth
// @Router /builds/{id}/components/{componentId} [put]
func (h *BuildHandler) ReplaceComponent(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "build")
	if !ok {
		return
	}
	oldID, ok := pathUUID(c, "componentId", "component")
	if !ok {
		return
	}

	var body ReplaceComponentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if body.NewComponentID == uuid.Nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "new_component_id is required"})
		return
	}

	view, err := h.buildService.ReplaceComponent(c.Request.Context(), id, userID, oldID, body.NewComponentID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// SetImage handles PUT /builds/:id/image
// @Summary Upload a build image
// @Description Store a jpeg, png or webp image for the build, replacing any previous one
// @Tags builds
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Build ID"
// @Param image formData file true "Image file"
// @Success 200 {object} service.BuildView "Image stored"
// @Failure 400 {object} ErrorResponse "Missing, unsupported or oversized image"
// @Failure 404 {object} ErrorResponse "Build not found"
// @Security BearerAuth
// @Router /builds/{id}/image [put]
func (h *BuildHandler) SetImage(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "build")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "image file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unable to read image"})
		return
	}
	defer file.Close()

	// One byte past the limit is enough to detect an oversized upload.
	data, err := io.ReadAll(io.LimitReader(file, h.maxImageBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unable to read image"})
		return
	}

	contentType := imageContentType(fileHeader.Header.Get("Content-Type"), data)
	if err := storage.ValidateImage(data, contentType, h.maxImageBytes); err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.buildService.SetImage(c.Request.Context(), id, userID, data, contentType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// ClearImage handles DELETE /builds/:id/image
// @Summary Remove a build image
// @Description Clear the build's image reference and release the stored image
// @Tags builds
// @Param id path string true "Build ID"
// @Success 204 "Image removed"
// @Failure 404 {object} ErrorResponse "Build not found"
// @Security BearerAuth
// @Router /builds/{id}/image [delete]
func (h *BuildHandler) ClearImage(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "build")
	if !ok {
		return
	}

	if err := h.buildService.ClearImage(c.Request.Context(), id, userID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return "", false
	}
	return userID, true
}

func pathUUID(c *gin.Context, param, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + entity + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// imageContentType prefers the declared part type and falls back to sniffing
func imageContentType(declared string, data []byte) string {
	if declared != "" {
		if mediaType, _, err := mime.ParseMediaType(declared); err == nil && mediaType != "application/octet-stream" {
			return mediaType
		}
	}
	mediaType, _, _ := mime.ParseMediaType(http.DetectContentType(data))
	return mediaType
}
