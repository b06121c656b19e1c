package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"studiorent/internal/middleware"
	"studiorent/internal/pkg/response"
	"studiorent/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/items", h.List)
	rg.GET("/items/:id", h.Get)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/items", h.Create)
	rg.PUT("/items/:id", h.Update)
	rg.DELETE("/items/:id", h.Delete)
	rg.GET("/auth/my-items", h.MyItems)
}

// List handles GET /api/items with optional filters. The front end
// sends "all" for unselected dropdowns; treat it as absent.
func (h *Handler) List(c *gin.Context) {
	var f repository.StudioFilters

	if v := c.Query("category"); v != "" && v != "all" {
		f.Category = v
	}
	if v := c.Query("city"); v != "" && v != "all" {
		f.City = v
	}
	if v := c.Query("status"); v != "" && v != "all" {
		f.Status = v
	}
	if v := c.Query("priceMax"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			f.PriceMax = max
		}
	}
	f.Search = c.Query("search")

	studios, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch studios", err.Error())
		return
	}

	c.JSON(http.StatusOK, studios)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid studio ID")
		return
	}

	studio, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Studio not found")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch studio", err.Error())
		return
	}

	c.JSON(http.StatusOK, studio)
}

func (h *Handler) MyItems(c *gin.Context) {
	userID := c.GetInt64(middleware.CtxUserID)

	studios, err := h.service.MyItems(c.Request.Context(), userID)
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch your studios", err.Error())
		return
	}

	c.JSON(http.StatusOK, studios)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateStudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := c.GetInt64(middleware.CtxUserID)

	studio, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "Missing required fields")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to create studio", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Studio created successfully",
		"id":      studio.ID,
	})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid studio ID")
		return
	}

	var req UpdateStudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := c.GetInt64(middleware.CtxUserID)
	role := c.GetString(middleware.CtxRole)

	changed, err := h.service.Update(c.Request.Context(), userID, role, id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Studio not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "You don't own this studio")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "Invalid field value")
		default:
			response.ErrorWithDetails(c, http.StatusInternalServerError, "Update failed", err.Error())
		}
		return
	}

	if !changed {
		response.Message(c, http.StatusOK, "No changes")
		return
	}
	response.Message(c, http.StatusOK, "Studio updated successfully")
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid studio ID")
		return
	}

	userID := c.GetInt64(middleware.CtxUserID)
	role := c.GetString(middleware.CtxRole)

	if err := h.service.Delete(c.Request.Context(), userID, role, id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Studio not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "You don't own this studio")
		default:
			response.ErrorWithDetails(c, http.StatusInternalServerError, "Delete failed", err.Error())
		}
		return
	}

	response.Message(c, http.StatusOK, "Studio deleted successfully")
}
