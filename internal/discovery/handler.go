package discovery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"chef-backend/internal/recipes"
	"chef-backend/internal/shared/server/middleware"
	"chef-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches recipe and feed routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/recipes", h.search)
	rg.GET("/recipes/featured", h.featured)
	rg.GET("/recipes/:id", h.detail)
	rg.POST("/recipes/:id/favorite", h.toggleFavorite)
	rg.GET("/feed", h.feed)
}

func (h *Handler) search(c *gin.Context) {
	list := h.Svc.Search(c.Request.Context(), middleware.PrincipalFromContext(c), c.Query("q"))
	c.Set("resultCount", len(list))
	respond.OK(c, gin.H{"recipes": list})
}

func (h *Handler) featured(c *gin.Context) {
	list := h.Svc.Featured(c.Request.Context(), middleware.PrincipalFromContext(c))
	respond.OK(c, gin.H{"recipes": list})
}

func (h *Handler) feed(c *gin.Context) {
	feed := h.Svc.Feed(c.Request.Context(), middleware.PrincipalFromContext(c))
	c.Set("resultCount", len(feed.Recipes))
	respond.OK(c, feed)
}

func (h *Handler) detail(c *gin.Context) {
	id := c.Param("id")
	c.Set("recipeId", id)

	detail, err := h.Svc.Detail(c.Request.Context(), middleware.PrincipalFromContext(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, detail)
}

func (h *Handler) toggleFavorite(c *gin.Context) {
	id := c.Param("id")
	c.Set("recipeId", id)

	fav, err := h.Svc.ToggleFavorite(c.Request.Context(), middleware.PrincipalFromContext(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"recipeId": id, "isFavorite": fav})
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, recipes.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Recipe not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal", "Unexpected server error", nil)
	}
}
