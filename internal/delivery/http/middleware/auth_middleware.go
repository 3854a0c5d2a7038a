package middleware

import (
	"net/http"
	"strings"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware is the access guard on every protected route:
//
//  1. extract the bearer token,
//  2. verify the signature (expiry deliberately not checked here),
//  3. confirm a live session row exists for the token.
//
// Step 3 is the compensating control for step 2's relaxed policy; a renewed
// session keeps working after the token's own exp claim has passed, and a
// revoked one dies immediately.
func AuthMiddleware(issuer *auth.TokenIssuer, sessionUC domain.SessionUsecase, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header missing", nil)
			c.Abort()
			return
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			response.Error(c, http.StatusUnauthorized, "Invalid authorization format. Expected: Bearer <token>", nil)
			c.Abort()
			return
		}

		userID, err := issuer.Decode(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		session, err := sessionUC.FindLive(c.Request.Context(), token)
		if err != nil || session == nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		user, err := authUC.GetCurrentUser(c.Request.Context(), userID)
		if err != nil || !user.Active {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), user.Role)
		c.Set(string(domain.KeyToken), token)

		c.Next()
	}
}
