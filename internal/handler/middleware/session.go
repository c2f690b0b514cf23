package middleware

import (
	"net/http"

	"devion-storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionContextKey = "storefront_session_id"

// SessionMiddleware assigns every browser an anonymous session id. The
// cookie is the only identity in the system; a missing or malformed cookie
// mints a fresh session rather than failing the request.
func SessionMiddleware(cfg config.StoreConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sessionID uuid.UUID

		if raw, err := c.Cookie(cfg.SessionCookie); err == nil {
			if parsed, parseErr := uuid.Parse(raw); parseErr == nil {
				sessionID = parsed
			}
		}

		if sessionID == uuid.Nil {
			sessionID = uuid.New()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cfg.SessionCookie, sessionID.String(), 30*24*3600, "/", "", false, true)
		}

		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

func GetSessionID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(sessionContextKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetSessionIDString(c *gin.Context) string {
	if id, ok := GetSessionID(c); ok {
		return id.String()
	}
	return ""
}
