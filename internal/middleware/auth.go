package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"

	"impag-tasks/internal/model"
	"impag-tasks/internal/user"
	"impag-tasks/pkg/response"
)

// validateToken is swapped in tests; idtoken.Validate needs Google's
// public keys.
var validateToken = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
	return idtoken.Validate(ctx, token, audience)
}

// Auth verifies the Bearer Google ID token, enforces the email
// whitelist, and injects the caller's Scope into the gin context.
// Verified tokens are cached until they expire.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token := bearerToken(c)
		if token == "" {
			response.Unauthorized(c, "missing bearer token")
			return
		}
		if m.cfg.GoogleClientID == "" {
			m.l.Warn(ctx, "middleware.Auth: no Google client id configured, rejecting")
			response.Unauthorized(c, "authentication is not configured")
			return
		}

		if cached, ok := m.cache.Get(token); ok && cached.expires > time.Now().Unix() {
			setScope(c, cached.scope)
			c.Next()
			return
		}

		payload, err := validateToken(ctx, token, m.cfg.GoogleClientID)
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth: token validation failed: %v", err)
			response.Unauthorized(c, "invalid token")
			return
		}

		email := normalizeEmail(claimString(payload, "email"))
		if email == "" {
			response.Unauthorized(c, "token has no email claim")
			return
		}
		if len(m.allowed) > 0 && !m.allowed[email] {
			m.l.Warnf(ctx, "middleware.Auth: email %s not in whitelist", email)
			response.Forbidden(c, "email not allowed")
			return
		}

		u, err := m.users.EnsureUser(ctx, user.EnsureUserInput{
			Email:       email,
			DisplayName: claimString(payload, "name"),
			AvatarURL:   claimString(payload, "picture"),
		})
		if err != nil {
			if err == user.ErrUserInactive {
				response.Forbidden(c, "user is inactive")
				return
			}
			m.l.Errorf(ctx, "middleware.Auth: ensure user: %v", err)
			response.Unauthorized(c, "could not resolve user")
			return
		}

		sc := model.Scope{
			UserID:      u.ID,
			Email:       u.Email,
			DisplayName: u.DisplayName,
			AvatarURL:   u.AvatarURL,
		}
		m.cache.Add(token, cachedIdentity{scope: sc, expires: payload.Expires})
		setScope(c, sc)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

func claimString(payload *idtoken.Payload, key string) string {
	if v, ok := payload.Claims[key].(string); ok {
		return v
	}
	return ""
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
