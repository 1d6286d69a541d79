// internal/auth/claims.go
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pracharai/campaign-backend/internal/model"
)

type contextKey struct{}

// Middleware decodes identity claims from the bearer token forwarded by the
// API gateway. The gateway has already verified the signature, so the token is
// only decoded here; a missing or undecodable token just means an anonymous
// caller.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if uc := FromToken(bearerToken(r)); uc != nil {
			r = r.WithContext(WithUser(r.Context(), uc))
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

// FromToken extracts the Cognito-style claims from a raw JWT. Returns nil when
// the token is empty, malformed, or carries none of the claims we care about.
func FromToken(raw string) *model.UserContext {
	if raw == "" {
		return nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil
	}

	uc := &model.UserContext{
		UserID:   stringClaim(claims, "sub"),
		Email:    stringClaim(claims, "email"),
		Username: stringClaim(claims, "cognito:username"),
	}
	if uc.UserID == "" && uc.Email == "" && uc.Username == "" {
		return nil
	}
	return uc
}

func stringClaim(claims jwt.MapClaims, name string) string {
	if v, ok := claims[name].(string); ok {
		return v
	}
	return ""
}

// WithUser returns a context carrying the given user.
func WithUser(ctx context.Context, uc *model.UserContext) context.Context {
	return context.WithValue(ctx, contextKey{}, uc)
}

// FromContext returns the user attached to the context, or nil.
func FromContext(ctx context.Context) *model.UserContext {
	uc, _ := ctx.Value(contextKey{}).(*model.UserContext)
	return uc
}
