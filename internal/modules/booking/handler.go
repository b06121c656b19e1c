package booking

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
	rg.GET("/items/:id/bookings", h.StudioBookings)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	b := rg.Group("/bookings")
	{
		b.POST("", h.Create)
		b.GET("/my-bookings", h.MyBookings)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Studio ID and start date are required")
		return
	}

	userID := c.GetInt64(middleware.CtxUserID)

	b, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "Invalid booking dates")
		case errors.Is(err, ErrStudioNotFound):
			response.Error(c, http.StatusNotFound, "Studio not found")
		case errors.Is(err, ErrOwnerBlocked):
			response.Error(c, http.StatusConflict, "Studio is reserved by its owner for this period")
		case errors.Is(err, ErrRangeConflict):
			response.Error(c, http.StatusConflict, "Studio is already booked for all or part of this period")
		default:
			response.ErrorWithDetails(c, http.StatusInternalServerError, "Booking failed", err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking confirmed",
		"id":      b.ID,
	})
}

func (h *Handler) MyBookings(c *gin.Context) {
	userID := c.GetInt64(middleware.CtxUserID)

	rows, err := h.service.MyBookings(c.Request.Context(), userID)
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch bookings", err.Error())
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *Handler) StudioBookings(c *gin.Context) {
	studioID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid studio ID")
		return
	}

	dates, err := h.service.StudioBookingDates(c.Request.Context(), studioID)
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch availability", err.Error())
		return
	}

	c.JSON(http.StatusOK, dates)
}
