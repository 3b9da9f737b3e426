package auth

import (
	"context"

	"github.com/dentora/backoffice/internal/shared"
)

// SessionCredentials resolves the upstream bearer token from the session
// attached to the request context. Anonymous requests yield an empty token.
type SessionCredentials struct{}

// Token implements gateway.Credentials.
func (SessionCredentials) Token(ctx context.Context) string {
	sess := shared.SessionFromContext(ctx)
	if sess == nil {
		return ""
	}
	return sess.Token()
}
