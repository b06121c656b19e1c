package review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"studiorent/internal/middleware"
	"studiorent/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/items/:id/reviews", h.List)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/items/:id/reviews", h.Add)
}

func (h *Handler) Add(c *gin.Context) {
	studioID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid studio ID")
		return
	}

	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := c.GetInt64(middleware.CtxUserID)

	if _, err := h.service.Add(c.Request.Context(), userID, studioID, req); err != nil {
		switch {
		case errors.Is(err, ErrInvalidRating):
			response.Error(c, http.StatusBadRequest, "Valid rating (1-5) is required")
		case errors.Is(err, ErrStudioNotFound):
			response.Error(c, http.StatusNotFound, "Studio not found")
		default:
			response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to add review", err.Error())
		}
		return
	}

	response.Message(c, http.StatusCreated, "Review added")
}

func (h *Handler) List(c *gin.Context) {
	studioID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid studio ID")
		return
	}

	reviews, err := h.service.ListByStudio(c.Request.Context(), studioID)
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch reviews", err.Error())
		return
	}

	c.JSON(http.StatusOK, reviews)
}
