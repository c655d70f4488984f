package catalog

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lumenkb/lumen-server/internal/response"
)

// CatalogHandler exposes the model catalog reads.
type CatalogHandler struct {
	service CatalogService
	logger  *zap.Logger
}

// NewCatalogHandler registers catalog endpoints on the authenticated group.
func NewCatalogHandler(router *gin.RouterGroup, service CatalogService, logger *zap.Logger) *CatalogHandler {
	h := &CatalogHandler{service: service, logger: logger}
	router.GET("/model/embeddings", h.Embeddings)
	router.GET("/model/chats/:scenario", h.Chats)
	return h
}

// Embeddings godoc
// @Summary      List embedding models
// @Tags         model
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Body{data=[]EmbeddingModelView}
// @Router       /model/embeddings [get]
func (h *CatalogHandler) Embeddings(c *gin.Context) {
	response.OK(c, h.service.Embeddings())
}

// Chats godoc
// @Summary      List chat models for a usage scenario
// @Tags         model
// @Produce      json
// @Security     BearerAuth
// @Param        scenario  path      string  true  "Usage scenario"  Enums(chat, agent, knowledge, workflow)
// @Success      200       {object}  response.Body{data=[]ChatModelView}
// @Failure      400       {object}  response.Body
// @Router       /model/chats/{scenario} [get]
func (h *CatalogHandler) Chats(c *gin.Context) {
	scenario, ok := ParseUsageScenario(c.Param("scenario"))
	if !ok {
		response.BadRequest(c, "unknown usage scenario")
		return
	}
	response.OK(c, h.service.Chats(scenario))
}
