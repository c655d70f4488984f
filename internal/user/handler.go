package user

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lumenkb/lumen-server/internal/apperr"
	"github.com/lumenkb/lumen-server/internal/authentication"
	"github.com/lumenkb/lumen-server/internal/response"
)

// CredentialsRequest is the payload for register and login.
type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserHandler exposes the account operations as REST endpoints.
type UserHandler struct {
	service UserService
	logger  *zap.Logger
}

// NewUserHandler registers account endpoints. Routes on public need no
// identity; routes on protected run behind the bearer middleware.
func NewUserHandler(public, protected *gin.RouterGroup, service UserService, logger *zap.Logger) *UserHandler {
	h := &UserHandler{service: service, logger: logger}
	public.POST("/user/refresh/:refreshToken", h.Refresh)
	public.POST("/user/register", h.Register)
	public.POST("/user/login", h.Login)
	public.POST("/user/anonymous/login", h.LoginAnonymous)
	protected.POST("/user/anonymous/register", h.RegisterAnonymous)
	protected.POST("/user/logout", h.Logout)
	return h
}

// Refresh godoc
// @Summary      Refresh tokens
// @Description  Exchange a refresh token for a new access/refresh pair; the old token is consumed
// @Tags         user
// @Produce      json
// @Param        refreshToken  path      string  true  "Raw refresh token"
// @Success      200           {object}  response.Body{data=authentication.TokenPair}
// @Failure      401           {object}  response.Body
// @Router       /user/refresh/{refreshToken} [post]
func (h *UserHandler) Refresh(c *gin.Context) {
	pair, err := h.service.Refresh(c.Request.Context(), c.Param("refreshToken"))
	if err != nil {
		response.Fail(c, h.logger, err)
		return
	}
	response.OK(c, pair)
}

// Register godoc
// @Summary      Register
// @Description  Create an account and issue its first token pair
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        payload  body      CredentialsRequest  true  "Credentials"
// @Success      200      {object}  response.Body{data=authentication.TokenPair}
// @Router       /user/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid register payload", zap.Error(err))
		response.BadRequest(c, "username and password are required")
		return
	}
	pair, err := h.service.Register(c.Request.Context(), req.Username, req.Password, nil)
	if err != nil {
		response.Fail(c, h.logger, err)
		return
	}
	response.OK(c, pair)
}

// Login godoc
// @Summary      Login
// @Description  Verify credentials and issue a token pair
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        payload  body      CredentialsRequest  true  "Credentials"
// @Success      200      {object}  response.Body{data=authentication.TokenPair}
// @Router       /user/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login payload", zap.Error(err))
		response.BadRequest(c, "username and password are required")
		return
	}
	pair, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Fail(c, h.logger, err)
		return
	}
	response.OK(c, pair)
}

// LoginAnonymous godoc
// @Summary      Anonymous login
// @Description  Issue a long-lived token pair for a fresh anonymous identity
// @Tags         user
// @Produce      json
// @Success      200  {object}  response.Body{data=authentication.TokenPair}
// @Router       /user/anonymous/login [post]
func (h *UserHandler) LoginAnonymous(c *gin.Context) {
	pair, err := h.service.LoginAnonymous(c.Request.Context())
	if err != nil {
		response.Fail(c, h.logger, err)
		return
	}
	response.OK(c, pair)
}

// RegisterAnonymous godoc
// @Summary      Promote anonymous identity
// @Description  Register the calling anonymous identity as a durable account keeping its id
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      CredentialsRequest  true  "Credentials"
// @Success      200      {object}  response.Body{data=authentication.TokenPair}
// @Failure      401      {object}  response.Body
// @Router       /user/anonymous/register [post]
func (h *UserHandler) RegisterAnonymous(c *gin.Context) {
	identity, ok := authentication.CurrentIdentity(c)
	if !ok {
		response.Fail(c, h.logger, apperr.NewUnauthorized(msgAnonymousNoCaller))
		return
	}
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid anonymous register payload", zap.Error(err))
		response.BadRequest(c, "username and password are required")
		return
	}
	pair, err := h.service.RegisterAnonymous(c.Request.Context(), identity.UserID, req.Username, req.Password)
	if err != nil {
		response.Fail(c, h.logger, err)
		return
	}
	response.OK(c, pair)
}

// Logout godoc
// @Summary      Logout
// @Description  Disable every enabled refresh token owned by the caller
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Body
// @Failure      401  {object}  response.Body
// @Router       /user/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	identity, ok := authentication.CurrentIdentity(c)
	if !ok {
		response.Fail(c, h.logger, apperr.NewUnauthorized("unauthorized"))
		return
	}
	if err := h.service.Logout(c.Request.Context(), identity.UserID); err != nil {
		response.Fail(c, h.logger, err)
		return
	}
	response.OK(c, nil)
}
