package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/murmur-social/murmur/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityProbe(t *testing.T, captured **token.Identity, body *string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if identity, ok := token.FromContext(r.Context()); ok {
			*captured = identity
		}
		if body != nil {
			raw, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			*body = string(raw)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func issueToken(t *testing.T, svc *token.Service, username string) string {
	t.Helper()
	raw, err := svc.Issue(token.Identity{ID: uuid.New(), Username: username, Email: username + "@x.com"})
	require.NoError(t, err)
	return raw
}

func TestIdentityFromAuthorizationHeader(t *testing.T) {
	svc := token.NewService("test-secret", time.Hour)
	var captured *token.Identity

	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{"query":"{me}"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+issueToken(t, svc, "ann"))

	Identity(svc)(identityProbe(t, &captured, nil)).ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, captured)
	assert.Equal(t, "ann", captured.Username)
}

func TestIdentityFromQueryParam(t *testing.T) {
	svc := token.NewService("test-secret", time.Hour)
	var captured *token.Identity

	req := httptest.NewRequest(http.MethodPost, "/graphql?token="+issueToken(t, svc, "bob"), nil)

	Identity(svc)(identityProbe(t, &captured, nil)).ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, captured)
	assert.Equal(t, "bob", captured.Username)
}

func TestIdentityFromBodyFieldPreservesBody(t *testing.T) {
	svc := token.NewService("test-secret", time.Hour)
	var captured *token.Identity
	var seenBody string

	payload := `{"query":"{me}","token":"` + issueToken(t, svc, "cat") + `"}`
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	Identity(svc)(identityProbe(t, &captured, &seenBody)).ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, captured)
	assert.Equal(t, "cat", captured.Username)
	// Downstream handlers must still see the full body.
	assert.Equal(t, payload, seenBody)
}

func TestNoTokenContinuesAnonymous(t *testing.T) {
	svc := token.NewService("test-secret", time.Hour)
	var captured *token.Identity

	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{"query":"{listThoughts}"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	Identity(svc)(identityProbe(t, &captured, nil)).ServeHTTP(rec, req)

	assert.Nil(t, captured)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInvalidTokenContinuesAnonymous(t *testing.T) {
	svc := token.NewService("test-secret", time.Hour)
	var captured *token.Identity

	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")

	rec := httptest.NewRecorder()
	Identity(svc)(identityProbe(t, &captured, nil)).ServeHTTP(rec, req)

	assert.Nil(t, captured)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExpiredTokenContinuesAnonymous(t *testing.T) {
	expired := token.NewService("test-secret", -time.Minute)
	var captured *token.Identity

	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, expired, "dot"))

	rec := httptest.NewRecorder()
	Identity(token.NewService("test-secret", time.Hour))(identityProbe(t, &captured, nil)).ServeHTTP(rec, req)

	assert.Nil(t, captured)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBodyTokenTakesPriorityOverHeader(t *testing.T) {
	svc := token.NewService("test-secret", time.Hour)
	var captured *token.Identity

	payload := `{"token":"` + issueToken(t, svc, "body-user") + `"}`
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+issueToken(t, svc, "header-user"))

	Identity(svc)(identityProbe(t, &captured, nil)).ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, captured)
	assert.Equal(t, "body-user", captured.Username)
}
