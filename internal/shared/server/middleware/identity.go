package middleware

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"

	"chef-backend/internal/shared/server/respond"
)

const (
	principalKey = "principal"

	// GuestHeader carries the caller's anonymous guest id.
	GuestHeader = "X-Guest-Id"
	// DefaultPrincipal is used when no guest id is sent.
	DefaultPrincipal = "default"

	maxGuestIDLength = 128
)

// Identity resolves the caller's principal. There is no authentication: a
// guest id only selects which persisted selection the caller works on.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := strings.TrimSpace(c.GetHeader(GuestHeader))
		if guestID == "" {
			c.Set(principalKey, DefaultPrincipal)
			c.Next()
			return
		}
		if !validGuestID(guestID) {
			respond.Error(c, http.StatusBadRequest, "invalid_identity", "Invalid guest id", nil)
			return
		}
		c.Set(principalKey, "guest:"+guestID)
		c.Next()
	}
}

// PrincipalFromContext returns the principal set by Identity, or DefaultPrincipal.
func PrincipalFromContext(c *gin.Context) string {
	if c == nil {
		return DefaultPrincipal
	}
	val, _ := c.Get(principalKey)
	if p, ok := val.(string); ok && p != "" {
		return p
	}
	return DefaultPrincipal
}

func validGuestID(id string) bool {
	if len(id) > maxGuestIDLength {
		return false
	}
	for _, r := range id {
		if unicode.IsControl(r) || r == '/' || unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
