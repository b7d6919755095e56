// AngelaMos | 2026
// handler_test.go

package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeSancho/GeospartialLib/internal/middleware"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	svc, _, _ := newTestService(t, Options{})
	h := NewHandler(svc)
	authenticator := middleware.Authenticator(svc)

	r := chi.NewRouter()
	h.RegisterRoutes(r, authenticator)
	r.With(authenticator, middleware.RequireAdmin).
		Get("/admin", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

	return r
}

func doJSON(
	t *testing.T,
	h http.Handler,
	method, path, token string,
	body any,
) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRegisterLoginAdminFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/users/register", "", map[string]string{
		"username": "geo1",
		"email":    "Geo1@X.com",
		"password": "pw123456",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var registered UserMessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&registered))
	assert.Equal(t, "User registered", registered.Message)
	assert.Equal(t, "geo1@x.com", registered.User.Email)
	assert.Equal(t, "user", registered.User.Role)
	assert.NotContains(t, rec.Body.String(), "password")

	rec = doJSON(t, router, http.MethodPost, "/users/login", "", map[string]string{
		"email":    "geo1@x.com",
		"password": "pw123456",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var login LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&login))
	assert.True(t, login.Success)
	require.NotEmpty(t, login.Token)

	rec = doJSON(t, router, http.MethodGet, "/users/profile", login.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"geo1@x.com"`)

	rec = doJSON(t, router, http.MethodGet, "/admin", login.Token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "insufficient role")

	rec = doJSON(t, router, http.MethodPost, "/users/logout", login.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Logout successful")
}

func TestHandlerErrors(t *testing.T) {
	router := newTestRouter(t)
	doJSON(t, router, http.MethodPost, "/users/register", "", map[string]string{
		"username": "geo1",
		"email":    "geo1@x.com",
		"password": "pw123456",
	})

	tests := []struct {
		name    string
		method  string
		path    string
		token   string
		body    any
		status  int
		message string
	}{
		{
			name:    "register missing fields",
			method:  http.MethodPost,
			path:    "/users/register",
			body:    map[string]string{"email": "a@b.co"},
			status:  http.StatusBadRequest,
			message: "missing required fields",
		},
		{
			name:    "wrong password",
			method:  http.MethodPost,
			path:    "/users/login",
			body:    map[string]string{"email": "geo1@x.com", "password": "bad"},
			status:  http.StatusUnauthorized,
			message: "invalid credentials",
		},
		{
			name:    "unknown email",
			method:  http.MethodPost,
			path:    "/users/login",
			body:    map[string]string{"email": "ghost@x.com", "password": "bad"},
			status:  http.StatusUnauthorized,
			message: "invalid credentials",
		},
		{
			name:    "profile without token",
			method:  http.MethodGet,
			path:    "/users/profile",
			status:  http.StatusUnauthorized,
			message: "no token provided",
		},
		{
			name:    "profile with bad token",
			method:  http.MethodGet,
			path:    "/users/profile",
			token:   "not.a.token",
			status:  http.StatusForbidden,
			message: "invalid token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
		})
	}
}

func TestUpdateProfileNoFieldsHandler(t *testing.T) {
	router := newTestRouter(t)
	doJSON(t, router, http.MethodPost, "/users/register", "", map[string]string{
		"username": "geo1",
		"email":    "geo1@x.com",
		"password": "pw123456",
	})

	rec := doJSON(t, router, http.MethodPost, "/users/login", "", map[string]string{
		"email":    "geo1@x.com",
		"password": "pw123456",
	})
	var login LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&login))

	rec = doJSON(t, router, http.MethodPatch, "/users/profile", login.Token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no valid fields provided")

	rec = doJSON(t, router, http.MethodPatch, "/users/profile", login.Token, map[string]string{
		"username": "renamed",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Profile updated")
	assert.Contains(t, rec.Body.String(), `"renamed"`)
}

func TestPasswordOverBcryptLimitIsRejected(t *testing.T) {
	router := newTestRouter(t)
	long := strings.Repeat("é", 40)

	rec := doJSON(t, router, http.MethodPost, "/users/register", "", map[string]string{
		"username": "geo1",
		"email":    "geo1@x.com",
		"password": long,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "password too long")

	rec = doJSON(t, router, http.MethodPost, "/users/register", "", map[string]string{
		"username": "geo1",
		"email":    "geo1@x.com",
		"password": "pw123456",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/users/login", "", map[string]string{
		"email":    "geo1@x.com",
		"password": "pw123456",
	})
	var login LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&login))

	rec = doJSON(t, router, http.MethodPatch, "/users/profile", login.Token, map[string]string{
		"currentPassword": "pw123456",
		"newPassword":     long,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "password too long")
}
