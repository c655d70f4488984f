package authentication

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lumenkb/lumen-server/internal/apperr"
	"github.com/lumenkb/lumen-server/internal/response"
	"github.com/lumenkb/lumen-server/internal/utils"
)

const identityContextKey = "identity"

// Identity is the caller resolved from a validated access token. It is
// threaded through handlers as an explicit value; an anonymous caller is
// simply an id with no users row behind it.
type Identity struct {
	UserID int64
}

// CurrentIdentity returns the identity set by AuthMiddleware, if any.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	raw, exists := c.Get(identityContextKey)
	if !exists {
		return Identity{}, false
	}
	id, ok := raw.(Identity)
	return id, ok
}

// AuthMiddleware validates the bearer access token and stores the caller's
// identity on the request. Validation is signature + expiry only; no store
// lookup happens here.
func AuthMiddleware(cfg *utils.TokenConfig, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header required")
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "Authorization header format must be Bearer <token>")
			return
		}

		claims, err := utils.ParseAccessToken(parts[1], cfg.Secret, cfg.Issuer, cfg.Audience)
		if err != nil {
			logger.Warn("access token parse failed", zap.Error(err))
			abortUnauthorized(c, "invalid or expired access token")
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			logger.Error("invalid subject claim", zap.String("subject", claims.Subject), zap.Error(err))
			abortUnauthorized(c, "invalid token subject")
			return
		}

		c.Set(identityContextKey, Identity{UserID: userID})
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, response.Body{
		Code:    int(apperr.Unauthorized),
		Message: msg,
	})
}
