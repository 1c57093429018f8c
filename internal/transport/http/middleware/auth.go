package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/murmur-social/murmur/internal/token"
	"github.com/rs/zerolog/log"
)

// Identity is best-effort optional authentication: it looks for a token in
// the request body, the query string, then the Authorization header, and
// attaches the decoded identity to the context when verification succeeds.
// A missing, malformed or expired token degrades the request to anonymous;
// it is never rejected here. Resolvers that require auth check the context.
func Identity(tokens *token.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := extractToken(r)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := tokens.Verify(raw)
			if err != nil {
				log.Debug().Msg("invalid token, continuing as anonymous")
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(token.NewContext(r.Context(), identity)))
		})
	}
}

func extractToken(r *http.Request) string {
	if t := bodyToken(r); t != "" {
		return t
	}

	if t := r.URL.Query().Get("token"); t != "" {
		return t
	}

	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	// "Bearer <token>" or a bare token value
	parts := strings.Fields(header)
	return parts[len(parts)-1]
}

// bodyToken peeks at a JSON body for a top-level "token" field and restores
// the body so downstream handlers can read it again.
func bodyToken(r *http.Request) string {
	if r.Body == nil || !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return ""
	}

	raw, err := io.ReadAll(r.Body)
	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil {
		return ""
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Token
}
