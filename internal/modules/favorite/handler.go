package favorite

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"studiorent/internal/middleware"
	"studiorent/internal/pkg/response"
	"studiorent/internal/repository"
)

// Handler serves the favorites endpoints. Both add and remove are
// idempotent: re-adding reports success, removing an absent pair is a
// no-op success.
type Handler struct {
	favorites *repository.FavoriteRepository
	studios   *repository.StudioRepository
}

func NewHandler(favorites *repository.FavoriteRepository, studios *repository.StudioRepository) *Handler {
	return &Handler{favorites: favorites, studios: studios}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	f := rg.Group("/favorites")
	{
		f.POST("/:itemId", h.Add)
		f.DELETE("/:itemId", h.Remove)
		f.GET("/my-favorites", h.MyFavorites)
	}
}

func (h *Handler) Add(c *gin.Context) {
	studioID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid studio ID")
		return
	}

	userID := c.GetInt64(middleware.CtxUserID)
	ctx := c.Request.Context()

	if _, err := h.studios.GetByID(ctx, studioID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "Studio not found")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to add favorite", err.Error())
		return
	}

	exists, err := h.favorites.Exists(ctx, userID, studioID)
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to add favorite", err.Error())
		return
	}
	if exists {
		response.Message(c, http.StatusOK, "Already in favorites")
		return
	}

	if err := h.favorites.Add(ctx, userID, studioID); err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to add favorite", err.Error())
		return
	}

	response.Message(c, http.StatusOK, "Added to favorites")
}

func (h *Handler) Remove(c *gin.Context) {
	studioID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid studio ID")
		return
	}

	userID := c.GetInt64(middleware.CtxUserID)

	if err := h.favorites.Remove(c.Request.Context(), userID, studioID); err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to remove favorite", err.Error())
		return
	}

	response.Message(c, http.StatusOK, "Removed from favorites")
}

func (h *Handler) MyFavorites(c *gin.Context) {
	userID := c.GetInt64(middleware.CtxUserID)

	studios, err := h.favorites.ListStudiosByUser(c.Request.Context(), userID)
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch favorites", err.Error())
		return
	}

	c.JSON(http.StatusOK, studios)
}
