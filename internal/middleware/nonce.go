package middleware

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
)

type nonceKey struct{}

// NonceMiddleware generates a per-request CSP nonce. Components read it with
// templ.GetNonce; SecurityHeaders reads it with GetNonce.
func NonceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nonce, err := randomToken(16, base64.StdEncoding)
		if err != nil {
			// Scripts will be blocked by CSP, the page still renders.
			slog.Error("failed to generate nonce", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		ctx := templ.WithNonce(r.Context(), nonce)
		ctx = context.WithValue(ctx, nonceKey{}, nonce)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetNonce(ctx context.Context) string {
	nonce, _ := ctx.Value(nonceKey{}).(string)
	return nonce
}
