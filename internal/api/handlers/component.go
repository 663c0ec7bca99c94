package handlers

import (
	"net/http"

	"pc-build-tracker-backend/internal/auth"
	"pc-build-tracker-backend/internal/database/models"
	"pc-build-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ComponentHandler handles HTTP requests for catalog and private components
type ComponentHandler struct {
	componentService service.ComponentServiceInterface
}

// NewComponentHandler creates a new component handler
func NewComponentHandler(componentService service.ComponentServiceInterface) *ComponentHandler {
	return &ComponentHandler{
		componentService: componentService,
	}
}

// ListComponents handles GET /components
// @Summary List visible components
// @Description List catalog components plus the caller's private components, optionally filtered by category
// @Tags components
// @Produce json
// @Param category query string false "Category filter (cpu, gpu, motherboard)"
// @Success 200 {array} service.ComponentResponse "Successfully retrieved components"
// @Failure 400 {object} ErrorResponse "Unknown category"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /components [get]
func (h *ComponentHandler) ListComponents(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var category *models.ComponentCategory
	if raw := c.Query("category"); raw != "" {
		cat := models.ComponentCategory(raw)
		category = &cat
	}

	components, err := h.componentService.ListVisible(c.Request.Context(), userID, category)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, components)
}

// GetComponent handles GET /components/:id
// @Summary Get a component
// @Description Get a catalog component or one of the caller's private components
// @Tags components
// @Produce json
// @Param id path string true "Component ID"
// @Success 200 {object} service.ComponentResponse "Successfully retrieved component"
// @Failure 400 {object} ErrorResponse "Invalid component ID"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Security BearerAuth
// @Router /components/{id} [get]
func (h *ComponentHandler) GetComponent(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid component ID"})
		return
	}

	component, err := h.componentService.GetVisible(c.Request.Context(), id, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, component)
}

// CreateComponent handles POST /components
// @Summary Create a private component
// @Description Register a component visible only to the caller
// @Tags components
// @Accept json
// @Produce json
// @Param component body service.CreateComponentRequest true "Component data"
// @Success 201 {object} service.ComponentResponse "Successfully created component"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /components [post]
func (h *ComponentHandler) CreateComponent(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req service.CreateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	component, err := h.componentService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, component)
}

// UpdateComponent handles PATCH /components/:id
// @Summary Update a private component
// @Description Partially update one of the caller's components. Catalog entries cannot be edited.
// @Tags components
// @Accept json
// @Produce json
// @Param id path string true "Component ID"
// @Param component body service.UpdateComponentRequest true "Fields to change"
// @Success 200 {object} service.ComponentResponse "Successfully updated component"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Catalog component"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Security BearerAuth
// @Router /components/{id} [patch]
func (h *ComponentHandler) UpdateComponent(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid component ID"})
		return
	}

	var req service.UpdateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	component, err := h.componentService.Update(c.Request.Context(), id, userID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, component)
}

// DeleteComponent handles DELETE /components/:id
// @Summary Delete a private component
// @Description Delete one of the caller's components. Fails while any build references it.
// @Tags components
// @Param id path string true "Component ID"
// @Success 204 "Successfully deleted component"
// @Failure 403 {object} ErrorResponse "Catalog component"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Failure 409 {object} ErrorResponse "Component is in use"
// @Security BearerAuth
// @Router /components/{id} [delete]
func (h *ComponentHandler) DeleteComponent(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid component ID"})
		return
	}

	if err := h.componentService.Delete(c.Request.Context(), id, userID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
