package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/kristofferme/leader/internal/ctxkeys"
)

const (
	csrfCookieName = "csrf_token"
	csrfFormField  = "csrf_token"
	csrfHeader     = "X-CSRF-Token"
	csrfTokenLen   = 32
)

// CSRFProtection validates a double-submit token on every state-changing
// request. htmx sends it as a header (set on <body>), plain forms as a field.
func CSRFProtection(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Safe methods only need the token issued.
		if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
			token := csrfToken(w, r)
			ctx := ctxkeys.WithCSRFToken(r.Context(), token)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		token := csrfToken(w, r)
		ctx := ctxkeys.WithCSRFToken(r.Context(), token)

		// Header first (htmx), then the hidden form field.
		submittedToken := r.Header.Get(csrfHeader)
		if submittedToken == "" {
			submittedToken = r.PostFormValue(csrfFormField)
		}

		if !validCSRFToken(token, submittedToken) {
			slog.Warn("csrf validation failed",
				"path", r.URL.Path,
				"method", r.Method,
				"ip", clientIP(r),
			)
			http.Error(w, "Invalid CSRF token", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// csrfToken returns the token from the cookie, issuing a new one when the
// cookie is missing or malformed.
func csrfToken(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(csrfCookieName)
	if err == nil && len(cookie.Value) == base64.RawURLEncoding.EncodedLen(csrfTokenLen) {
		return cookie.Value
	}

	token, err := randomToken(csrfTokenLen, base64.RawURLEncoding)
	if err != nil {
		slog.Error("failed to generate csrf token", "error", err)
		return ""
	}

	cfg := ctxkeys.Config(r.Context())

	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg != nil && cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   7 * 24 * 60 * 60,
	})

	return token
}

func randomToken(n int, enc *base64.Encoding) (string, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return enc.EncodeToString(b), nil
}

func validCSRFToken(expected, actual string) bool {
	if expected == "" || actual == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(actual)) == 1
}
