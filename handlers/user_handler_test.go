package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"staffhub/auth"
	"staffhub/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newUserHandler() *UserHandler {
	return &UserHandler{Repo: repository.NewMemoryUserRepo(), JWTSecret: testSecret}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSignupCreatesUser(t *testing.T) {
	h := newUserHandler()

	rec := postJSON(t, h.Signup, "/user/signup", map[string]string{
		"username": "alice",
		"email":    "a@x.com",
		"password": "secret1",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, true, resp["status"])
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["user_id"])
}

func TestSignupStoredPasswordIsHashed(t *testing.T) {
	repo := repository.NewMemoryUserRepo()
	h := &UserHandler{Repo: repo, JWTSecret: testSecret}

	rec := postJSON(t, h.Signup, "/user/signup", map[string]string{
		"username": "alice",
		"email":    "a@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	user, err := repo.FindByUsernameOrEmail(t.Context(), "alice", "")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", user.Password)
	assert.True(t, auth.CheckPassword("secret1", user.Password))
}

func TestSignupValidationFailure(t *testing.T) {
	h := newUserHandler()

	rec := postJSON(t, h.Signup, "/user/signup", map[string]string{
		"username": "al",
		"email":    "bad",
		"password": "123",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, false, resp["status"])
	assert.Len(t, resp["errors"], 3)
}

func TestSignupDuplicateUsernameOrEmail(t *testing.T) {
	h := newUserHandler()

	body := map[string]string{"username": "alice", "email": "a@x.com", "password": "secret1"}
	require.Equal(t, http.StatusCreated, postJSON(t, h.Signup, "/user/signup", body).Code)

	rec := postJSON(t, h.Signup, "/user/signup", map[string]string{
		"username": "alice", "email": "other@x.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already exists")

	rec = postJSON(t, h.Signup, "/user/signup", map[string]string{
		"username": "bob", "email": "a@x.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginWithEmail(t *testing.T) {
	h := newUserHandler()
	postJSON(t, h.Signup, "/user/signup", map[string]string{
		"username": "alice", "email": "a@x.com", "password": "secret1",
	})

	rec := postJSON(t, h.Login, "/user/login", map[string]string{
		"email": "a@x.com", "password": "secret1",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	data := resp["data"].(map[string]interface{})
	token := data["token"].(string)

	claims, err := auth.VerifyToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
}

func TestLoginWithUsername(t *testing.T) {
	h := newUserHandler()
	postJSON(t, h.Signup, "/user/signup", map[string]string{
		"username": "alice", "email": "a@x.com", "password": "secret1",
	})

	rec := postJSON(t, h.Login, "/user/login", map[string]string{
		"username": "alice", "password": "secret1",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginWrongPasswordIsUnauthorizedNotNotFound(t *testing.T) {
	h := newUserHandler()
	postJSON(t, h.Signup, "/user/signup", map[string]string{
		"username": "alice", "email": "a@x.com", "password": "secret1",
	})

	rec := postJSON(t, h.Login, "/user/login", map[string]string{
		"email": "a@x.com", "password": "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Incorrect password")
}

func TestLoginUnknownUser(t *testing.T) {
	h := newUserHandler()

	rec := postJSON(t, h.Login, "/user/login", map[string]string{
		"email": "nobody@x.com", "password": "secret1",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "User does not exist")
}

func TestLoginRequiresUsernameOrEmail(t *testing.T) {
	h := newUserHandler()

	rec := postJSON(t, h.Login, "/user/login", map[string]string{
		"password": "secret1",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please provide either username or email")
}
