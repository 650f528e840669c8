package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"staffhub/handlers"
	"staffhub/repository"
	"staffhub/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newServer(t *testing.T) http.Handler {
	t.Helper()
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	return New(Options{
		UserHandler: &handlers.UserHandler{
			Repo:      repository.NewMemoryUserRepo(),
			JWTSecret: testSecret,
		},
		EmployeeHandler: &handlers.EmployeeHandler{
			Repo:  repository.NewMemoryEmployeeRepo(),
			Store: store,
		},
		JWTSecret:    testSecret,
		ClientOrigin: "*",
	})
}

func do(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func envelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// Full signup → login → CRUD walk-through against the real router.
func TestSignupLoginEmployeeLifecycle(t *testing.T) {
	router := newServer(t)

	// signup
	rec := do(t, router, http.MethodPost, "/user/signup", "", map[string]string{
		"username": "alice", "email": "a@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotEmpty(t, envelope(t, rec)["data"].(map[string]interface{})["user_id"])

	// login
	rec = do(t, router, http.MethodPost, "/user/login", "", map[string]string{
		"email": "a@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	token := envelope(t, rec)["data"].(map[string]interface{})["token"].(string)
	require.NotEmpty(t, token)

	// employee routes are gated
	rec = do(t, router, http.MethodGet, "/employees", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// empty list with a valid token
	rec = do(t, router, http.MethodGet, "/employees", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, envelope(t, rec)["data"].([]interface{}))

	// create
	rec = do(t, router, http.MethodPost, "/employees", token, map[string]string{
		"first_name": "Bob", "last_name": "Lee", "email": "bob@x.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	bobID := envelope(t, rec)["data"].(map[string]interface{})["employee_id"].(string)

	// search with no match
	rec = do(t, router, http.MethodGet, "/employees/search?position=Manager", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, envelope(t, rec)["data"].([]interface{}))

	// delete, then the record is gone
	rec = do(t, router, http.MethodDelete, "/employees/"+bobID, token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodGet, "/employees/"+bobID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSignupAndLoginStayPublic(t *testing.T) {
	router := newServer(t)

	rec := do(t, router, http.MethodPost, "/user/signup", "", map[string]string{
		"username": "alice", "email": "a@x.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodPost, "/user/login", "", map[string]string{
		"username": "alice", "password": "secret1",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEmployeeRoutesRejectBadToken(t *testing.T) {
	router := newServer(t)

	for _, path := range []string{"/employees", "/employees/search?department=IT"} {
		rec := do(t, router, http.MethodGet, path, "garbage", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}
