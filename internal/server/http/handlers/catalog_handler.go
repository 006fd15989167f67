package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/starbuy/shop/internal/server/http/dto"
)

// CatalogHandler serves the storefront listing and public settings.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Packages handles GET /api/packages.
func (h *CatalogHandler) Packages(c *gin.Context) {
	packages, err := h.facade.Packages(c.Request.Context())
	if err != nil {
		WriteError(c, err)
		return
	}

	response := make([]dto.PackageResponse, 0, len(packages))
	for _, p := range packages {
		response = append(response, dto.PackageResponse{
			ID:             p.ID,
			Name:           p.Name,
			Price:          p.Price,
			StarsPrice:     p.StarsPrice,
			Type:           p.Type,
			InputLabel:     p.InputLabel,
			Description:    p.Description,
			AllowStars:     p.AllowStars,
			RequirePremium: p.RequirePremium,
		})
	}
	c.JSON(http.StatusOK, response)
}

// Settings handles GET /api/settings.
func (h *CatalogHandler) Settings(c *gin.Context) {
	settings, err := h.facade.StoreSettings(c.Request.Context())
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
