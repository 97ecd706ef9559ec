package pantry

import (
	"net/http"

	"github.com/gin-gonic/gin"

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

// RegisterRoutes attaches selection routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ingredients", h.list)
	rg.POST("/ingredients", h.add)
	rg.DELETE("/ingredients", h.removeOrClear)
	rg.DELETE("/ingredients/:ingredient", h.remove)
}

// RegisterSuggestRoutes attaches the typeahead route, kept separate so it can
// carry its own rate limit.
func (h *Handler) RegisterSuggestRoutes(rg *gin.RouterGroup) {
	rg.GET("/suggestions", h.suggest)
}

// addIngredientRequest is also the body of a remove.
type addIngredientRequest struct {
	Ingredient *string `json:"ingredient" binding:"required"`
}

func (h *Handler) list(c *gin.Context) {
	respond.OK(c, h.Svc.List(c.Request.Context(), middleware.PrincipalFromContext(c)))
}

func (h *Handler) add(c *gin.Context) {
	var req addIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "ingredient is required", nil)
		return
	}
	respond.OK(c, h.Svc.Add(c.Request.Context(), middleware.PrincipalFromContext(c), *req.Ingredient))
}

func (h *Handler) remove(c *gin.Context) {
	respond.OK(c, h.Svc.Remove(c.Request.Context(), middleware.PrincipalFromContext(c), c.Param("ingredient")))
}

// removeOrClear removes the ingredient named by the ingredient query
// parameter or JSON body, which also carries values containing "/". Without
// either it clears the selection.
func (h *Handler) removeOrClear(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)
	if v, ok := c.GetQuery("ingredient"); ok {
		respond.OK(c, h.Svc.Remove(c.Request.Context(), principal, v))
		return
	}
	if c.Request.ContentLength != 0 {
		var req addIngredientRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "ingredient is required", nil)
			return
		}
		respond.OK(c, h.Svc.Remove(c.Request.Context(), principal, *req.Ingredient))
		return
	}
	respond.OK(c, h.Svc.Clear(c.Request.Context(), principal))
}

func (h *Handler) suggest(c *gin.Context) {
	results := h.Svc.Suggest(c.Query("q"))
	c.Set("resultCount", len(results))
	respond.OK(c, gin.H{"suggestions": results})
}
