package public

import (
	"github.com/sochitour-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ContextKeyClaims is the gin context key the auth middleware stores token
// claims under.
const ContextKeyClaims = "token_claims"

// claimsFrom extracts the verified token claims from the request context.
func claimsFrom(c *gin.Context) *service.TokenClaims {
	value, ok := c.Get(ContextKeyClaims)
	if !ok {
		return nil
	}
	claims, ok := value.(*service.TokenClaims)
	if !ok {
		return nil
	}
	return claims
}

// currentUserID returns the authenticated user's id, 0 when absent.
func currentUserID(c *gin.Context) uint {
	claims := claimsFrom(c)
	if claims == nil {
		return 0
	}
	return claims.UserID
}
