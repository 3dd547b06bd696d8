package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte(strings.Repeat("k", MinSecretLength))

func protected(secret []byte) (http.Handler, *string) {
	var user string
	return RequireWriter(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, _ = UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})), &user
}

func call(h http.Handler, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/notes", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestIssueAndParse(t *testing.T) {
	now := time.Now()
	tok, err := IssueToken(testSecret, "alice", RoleWriter, time.Hour, now)
	require.NoError(t, err)

	claims, err := ParseToken(tok, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, RoleWriter, claims.Role)
}

func TestIssueToken_Validation(t *testing.T) {
	_, err := IssueToken([]byte("short"), "alice", RoleWriter, time.Hour, time.Now())
	assert.Error(t, err)

	_, err = IssueToken(testSecret, "", RoleWriter, time.Hour, time.Now())
	assert.Error(t, err)
}

func TestParseToken_Rejects(t *testing.T) {
	expired, err := IssueToken(testSecret, "alice", RoleWriter, time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	_, err = ParseToken(expired, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	good, err := IssueToken(testSecret, "alice", RoleWriter, time.Hour, time.Now())
	require.NoError(t, err)
	_, err = ParseToken(good, []byte(strings.Repeat("x", MinSecretLength)))
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "alice", "role": RoleWriter}).
		SignedString(testSecret)
	require.NoError(t, err)
	_, err = ParseToken(noExp, testSecret)
	assert.Error(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "alice"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = ParseToken(none, testSecret)
	assert.Error(t, err)
}

func TestRequireWriter(t *testing.T) {
	writer, err := IssueToken(testSecret, "alice", RoleWriter, time.Hour, time.Now())
	require.NoError(t, err)
	reader, err := IssueToken(testSecret, "bob", "reader", time.Hour, time.Now())
	require.NoError(t, err)

	tests := []struct {
		name   string
		authz  string
		status int
		user   string
	}{
		{"valid writer", "Bearer " + writer, http.StatusOK, "alice"},
		{"lowercase scheme", "bearer " + writer, http.StatusOK, "alice"},
		{"missing header", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz", http.StatusUnauthorized, ""},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized, ""},
		{"wrong role", "Bearer " + reader, http.StatusForbidden, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, user := protected(testSecret)
			rr := call(h, tt.authz)
			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.user, *user)
			if tt.status == http.StatusUnauthorized {
				assert.NotEmpty(t, rr.Header().Get("WWW-Authenticate"))
				assert.JSONEq(t, `{"status":"error","message":"Unauthorized"}`, rr.Body.String())
			}
		})
	}
}

func TestRequireWriter_DisabledWithoutSecret(t *testing.T) {
	h, _ := protected(nil)
	assert.Equal(t, http.StatusOK, call(h, "").Code)
}

func TestRequireWriter_RecordsMetrics(t *testing.T) {
	before := testutil.ToFloat64(authRequestsTotal.WithLabelValues("unauthorized"))
	h, _ := protected(testSecret)
	call(h, "")
	assert.Equal(t, before+1, testutil.ToFloat64(authRequestsTotal.WithLabelValues("unauthorized")))
}
