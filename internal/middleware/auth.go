// Package middleware holds the request authentication layer. Every protected
// operation requires a Firebase ID token; the verified UID is the only source
// of record ownership.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/danielgtaylor/huma/v2"
)

// TokenVerifier checks a bearer token and returns the user ID it belongs to.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (string, error)
}

// FirebaseVerifier verifies Firebase ID tokens.
type FirebaseVerifier struct {
	client *auth.Client
}

// NewFirebaseVerifier wraps a Firebase auth client.
func NewFirebaseVerifier(client *auth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", err
	}
	return token.UID, nil
}

type userIDKey struct{}

// WithUserID returns a context carrying the authenticated user's ID.
func WithUserID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, userIDKey{}, uid)
}

// UserID returns the authenticated user's ID, or "" when the request was not
// authenticated.
func UserID(ctx context.Context) string {
	uid, _ := ctx.Value(userIDKey{}).(string)
	return uid
}

// NewAuth builds the huma middleware that authenticates every operation
// except the ones whose IDs are listed in skipOperations.
func NewAuth(api huma.API, verifier TokenVerifier, skipOperations ...string) func(huma.Context, func(huma.Context)) {
	skip := make(map[string]bool, len(skipOperations))
	for _, id := range skipOperations {
		skip[id] = true
	}

	return func(ctx huma.Context, next func(huma.Context)) {
		if skip[ctx.Operation().OperationID] {
			next(ctx)
			return
		}

		header := ctx.Header("Authorization")
		idToken, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || idToken == "" {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing bearer token")
			return
		}

		uid, err := verifier.Verify(ctx.Context(), idToken)
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid token")
			return
		}

		next(huma.WithValue(ctx, userIDKey{}, uid))
	}
}
