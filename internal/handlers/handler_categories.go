package handlers

import (
	"net/http"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// registerCategoryRoutes exposes the fixed category catalog.
func registerCategoryRoutes(rg *gin.RouterGroup, catalog *domain.CategoryCatalog) {
	rg.GET("/categories", listCategories(catalog))
}

// listCategories godoc
// @Summary List categories
// @Description Returns the fixed category catalog with display names and icons.
// @Tags categories
// @Produce  json
// @Success 200 {array} dto.CategoryResponse
// @Security BearerAuth
// @Router /categories [get]
func listCategories(catalog *domain.CategoryCatalog) gin.HandlerFunc {
	categories := dto.ToListCategoryResponse(catalog.All())
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, categories)
	}
}
