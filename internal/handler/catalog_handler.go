package handler

import (
	"github.com/gin-gonic/gin"

	"casamento/registry/internal/service"
	"casamento/registry/pkg/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) ListTemplateItems(c *gin.Context) {
	groups, err := h.catalogService.ListGrouped(c.Request.Context())
	if err != nil {
		response.InternalError(c, "list template items failed")
		return
	}

	response.Success(c, gin.H{"groups": groups})
}
