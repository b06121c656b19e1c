package scraping

import (
	"errors"
	"net/http"

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

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/scraping/trigger", h.Trigger)
}

func (h *Handler) Trigger(c *gin.Context) {
	city := c.Query("city")
	keyword := c.Query("keyword")
	if city == "" || keyword == "" {
		response.Error(c, http.StatusBadRequest, "City and keyword are required")
		return
	}

	email := c.GetString(middleware.CtxEmail)

	result, err := h.service.Trigger(c.Request.Context(), city, keyword, email)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotConfigured):
			response.Error(c, http.StatusInternalServerError, "Scraping webhook URL is not configured")
		case errors.Is(err, ErrUpstream):
			response.ErrorWithDetails(c, http.StatusBadGateway, "Failed to trigger scraping workflow", err.Error())
		default:
			response.ErrorWithDetails(c, http.StatusInternalServerError, "Internal server error during scraping trigger", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Scraping finished successfully",
		"sheetUrl": result.SheetURL,
	})
}
