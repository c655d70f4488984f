package knowledge

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lumenkb/lumen-server/internal/apperr"
	"github.com/lumenkb/lumen-server/internal/authentication"
	"github.com/lumenkb/lumen-server/internal/response"
)

// KnowledgeHandler exposes the knowledge-base CRUD endpoints. All routes
// require a bearer identity.
type KnowledgeHandler struct {
	service KnowledgeService
	logger  *zap.Logger
}

func NewKnowledgeHandler(router *gin.RouterGroup, service KnowledgeService, logger *zap.Logger) *KnowledgeHandler {
	h := &KnowledgeHandler{service: service, logger: logger}
	router.GET("/knowledge", h.List)
	router.POST("/knowledge", h.Create)
	router.GET("/knowledge/languages", h.Languages)
	router.GET("/knowledge/participle/plugins", h.ParticiplePlugins)
	router.GET("/knowledge/:id", h.Get)
	router.PUT("/knowledge/:id", h.Update)
	router.DELETE("/knowledge/:id", h.Remove)
	return h
}

func (h *KnowledgeHandler) caller(c *gin.Context) (int64, bool) {
	identity, ok := authentication.CurrentIdentity(c)
	if !ok {
		response.Fail(c, h.logger, apperr.NewUnauthorized("unauthorized"))
		return 0, false
	}
	return identity.UserID, true
}

func (h *KnowledgeHandler) bindID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid or missing id")
		return 0, false
	}
	return id, true
}

// List godoc
// @Summary      List the caller's knowledge bases
// @Tags         knowledge
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Body{data=[]Knowledge}
// @Router       /knowledge [get]
func (h *KnowledgeHandler) List(c *gin.Context) {
	callerID, ok := h.caller(c)
	if !ok {
		return
	}
	list, err := h.service.List(c.Request.Context(), callerID)
	if err != nil {
		response.Fail(c, h.logger, err)
		return
	}
	response.OK(c, list)
}

// Create godoc
// @Summary      Create a knowledge base
// @Tags         knowledge
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      Input  true  "Knowledge base"
// @Success      200      {object}  response.Body{data=Knowledge}
// @Router       /knowledge [post]
func (h *KnowledgeHandler) Create(c *gin.Context) {
	callerID, ok := h.caller(c)
	if !ok {
		return
	}
	var in Input
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid knowledge payload", zap.Error(err))
		response.BadRequest(c, "invalid knowledge base payload")
		return
	}
	k, err := h.service.Create(c.Request.Context(), callerID, in)
	if err != nil {
		response.Fail(c, h.logger, err)
		return
	}
	response.OK(c, k)
}

// Get godoc
// @Summary      Get a knowledge base
// @Tags         knowledge
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Knowledge base id"
// @Success      200  {object}  response.Body{data=Knowledge}
// @Router       /knowledge/{id} [get]
func (h *KnowledgeHandler) Get(c *gin.Context) {
	if _, ok := h.caller(c); !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	k, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, h.logger, err)
		return
	}
	response.OK(c, k)
}

// Update godoc
// @Summary      Update a knowledge base
// @Tags         knowledge
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true  "Knowledge base id"
// @Param        payload  body      Input   true  "Knowledge base"
// @Success      200      {object}  response.Body
// @Router       /knowledge/{id} [put]
func (h *KnowledgeHandler) Update(c *gin.Context) {
	callerID, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var in Input
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid knowledge payload", zap.Error(err))
		response.BadRequest(c, "invalid knowledge base payload")
		return
	}
	if err := h.service.Update(c.Request.Context(), callerID, id, in); err != nil {
		response.Fail(c, h.logger, err)
		return
	}
	response.OK(c, nil)
}

// Remove godoc
// @Summary      Remove a knowledge base
// @Tags         knowledge
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Knowledge base id"
// @Success      200  {object}  response.Body
// @Router       /knowledge/{id} [delete]
func (h *KnowledgeHandler) Remove(c *gin.Context) {
	callerID, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	if err := h.service.Remove(c.Request.Context(), callerID, id); err != nil {
		response.Fail(c, h.logger, err)
		return
	}
	response.OK(c, nil)
}

// Languages godoc
// @Summary      List selectable knowledge-base languages
// @Tags         knowledge
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Body{data=[]Language}
// @Router       /knowledge/languages [get]
func (h *KnowledgeHandler) Languages(c *gin.Context) {
	response.OK(c, h.service.Languages())
}

// ParticiplePlugins godoc
// @Summary      List available participle plugins
// @Tags         knowledge
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Body{data=[]ragindex.PluginOption}
// @Router       /knowledge/participle/plugins [get]
func (h *KnowledgeHandler) ParticiplePlugins(c *gin.Context) {
	response.OK(c, h.service.ParticiplePlugins())
}
