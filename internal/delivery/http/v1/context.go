package v1

import (
	"context"
	"strings"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// withIdentity copies the authenticated identity from gin's key store onto
// the request context, so usecases can read it with plain context.Value.
func withIdentity(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if id, ok := c.Get(string(domain.KeyUserID)); ok {
		ctx = context.WithValue(ctx, domain.KeyUserID, id)
	}
	if email, ok := c.Get(string(domain.KeyUserEmail)); ok {
		ctx = context.WithValue(ctx, domain.KeyUserEmail, email)
	}
	if role, ok := c.Get(string(domain.KeyUserRole)); ok {
		ctx = context.WithValue(ctx, domain.KeyUserRole, role)
	}
	return ctx
}

// bearerToken pulls the raw token out of the Authorization header; empty
// when the header is missing or not a Bearer scheme.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// bindError turns request binding failures into a 400 with per-field
// messages where the validator can provide them.
func bindError(err error) error {
	if messages := validation.Messages(err); len(messages) > 0 {
		return apperror.BadRequest(strings.Join(messages, "; "))
	}
	return apperror.BadRequest("Invalid request body")
}
