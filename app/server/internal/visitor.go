// Package internal provides shared utilities for server subpackages.
package internal

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// VisitorCookieName is the cookie holding the visitor id that scopes stored preferences.
const VisitorCookieName = "shade-visitor"

// ColorSchemeHint is the client hint carrying the system color-scheme preference.
const ColorSchemeHint = "Sec-CH-Prefers-Color-Scheme"

type visitorCtxKey struct{}

// Visitor makes sure every request has a visitor id, issuing a cookie when
// the request has none or a malformed one.
func Visitor(cookiePath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := visitorFromCookie(r)
			if id == "" {
				id = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     VisitorCookieName,
					Value:    id,
					Path:     cookiePath,
					MaxAge:   365 * 24 * 60 * 60, // 1 year
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			next.ServeHTTP(w, r.WithContext(WithVisitor(r.Context(), id)))
		})
	}
}

// WithVisitor returns a context carrying the visitor id.
func WithVisitor(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, visitorCtxKey{}, id)
}

// VisitorID returns the visitor id from context, or empty string if not set.
func VisitorID(ctx context.Context) string {
	id, _ := ctx.Value(visitorCtxKey{}).(string)
	return id
}

func visitorFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(VisitorCookieName)
	if err != nil {
		return ""
	}
	id, err := uuid.Parse(cookie.Value)
	if err != nil {
		return ""
	}
	return id.String()
}

// ClientHints asks browsers to send the color-scheme hint and marks responses as varying on it.
func ClientHints(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Accept-CH", ColorSchemeHint)
		w.Header().Set("Critical-CH", ColorSchemeHint)
		w.Header().Add("Vary", ColorSchemeHint)
		next.ServeHTTP(w, r)
	})
}

// SystemPrefersDark reports whether the request's color-scheme hint asks for dark.
// The hint is a structured-header string, so the value may be quoted.
func SystemPrefersDark(r *http.Request) bool {
	v := strings.TrimSpace(r.Header.Get(ColorSchemeHint))
	return strings.EqualFold(strings.Trim(v, `"`), "dark")
}
