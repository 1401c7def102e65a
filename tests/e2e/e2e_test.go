package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"githubsearch/internal/database"
	"githubsearch/internal/middleware"
	"githubsearch/internal/modules/auth"
	"githubsearch/internal/modules/github"
	"githubsearch/internal/modules/users"
	"githubsearch/internal/repository"
)

const testJWTSecret = "test_secret_key_32_characters_min"

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type E2ETestSuite struct {
	router *gin.Engine
	github *httptest.Server
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db))

	githubUpstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(github.SearchResponse{
			TotalCount: 2,
			Items: []github.Repository{
				{ID: 1, Name: "awesome-go", FullName: "avelino/awesome-go"},
				{ID: 2, Name: "gin", FullName: "gin-gonic/gin"},
			},
		})
	}))
	t.Cleanup(githubUpstream.Close)

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	userService := users.NewService(userRepo)
	issuer := auth.NewIssuer(userService, tokenRepo, testJWTSecret, time.Hour, 720*time.Hour)
	authService := auth.NewService(userService, tokenRepo, issuer)
	authHandler := auth.NewHandler(authService)

	githubService := github.NewService(githubUpstream.URL)
	githubHandler := github.NewHandler(githubService)

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.ErrorLogger(),
	)

	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)

	protected := v1.Group("/")
	protected.Use(middleware.JWTAuth(testJWTSecret))
	githubHandler.RegisterRoutes(protected)

	return &E2ETestSuite{router: router, github: githubUpstream}
}

func (s *E2ETestSuite) doJSON(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, TestResponse) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var parsed TestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed), "body: %s", w.Body.String())
	return w, parsed
}

func TestAuthFlow(t *testing.T) {
	s := setupTestSuite(t)

	signupBody := map[string]string{
		"firstName": "John",
		"lastName":  "Doe",
		"email":     "john.doe@example.com",
		"password":  "Secret123!",
	}

	// signup
	w, resp := s.doJSON(t, http.MethodPost, "/api/v1/auth/signup", signupBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.True(t, resp.Success)
	user := resp.Data["user"].(map[string]interface{})
	assert.Equal(t, "john.doe@example.com", user["email"])
	assert.NotContains(t, w.Body.String(), "Secret123!")
	assert.NotContains(t, user, "password")

	// duplicate signup
	w, resp = s.doJSON(t, http.MethodPost, "/api/v1/auth/signup", signupBody)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", resp.Error.Code)

	// login
	w, resp = s.doJSON(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "john.doe@example.com",
		"password": "Secret123!",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token := resp.Data["token"].(map[string]interface{})
	accessToken := token["accessToken"].(string)
	refreshToken := token["refreshToken"].(string)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.EqualValues(t, 3600, token["expiresIn"])

	// wrong password: 400, generic message
	w, resp = s.doJSON(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "john.doe@example.com",
		"password": "WrongPass1!",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "PASSWORD_OR_EMAIL_INCORRECT", resp.Error.Code)

	// unknown email: 404, same generic message
	w, resp = s.doJSON(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "Secret123!",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "PASSWORD_OR_EMAIL_INCORRECT", resp.Error.Code)

	// refresh with garbage
	w, resp = s.doJSON(t, http.MethodPost, "/api/v1/auth/refresh-token", map[string]string{
		"refreshToken": "not.a.jwt",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_TOKEN", resp.Error.Code)

	// refresh with the real token
	w, resp = s.doJSON(t, http.MethodPost, "/api/v1/auth/refresh-token", map[string]string{
		"refreshToken": refreshToken,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	newToken := resp.Data["token"].(map[string]interface{})
	assert.NotEmpty(t, newToken["accessToken"])
	assert.NotEmpty(t, newToken["refreshToken"])
}

func TestValidation(t *testing.T) {
	s := setupTestSuite(t)

	// short password
	w, resp := s.doJSON(t, http.MethodPost, "/api/v1/auth/signup", map[string]string{
		"firstName": "John",
		"lastName":  "Doe",
		"email":     "john@example.com",
		"password":  "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)

	// malformed email
	w, resp = s.doJSON(t, http.MethodPost, "/api/v1/auth/signup", map[string]string{
		"firstName": "John",
		"lastName":  "Doe",
		"email":     "not-an-email",
		"password":  "Secret123!",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestProtectedSearch(t *testing.T) {
	s := setupTestSuite(t)

	// no token
	req := httptest.NewRequest(http.MethodGet, "/api/v1/github/search?query=go", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_HEADER_MISSING")

	// signup + login for a token
	_, _ = s.doJSON(t, http.MethodPost, "/api/v1/auth/signup", map[string]string{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "jane@example.com",
		"password":  "Secret123!",
	})
	_, resp := s.doJSON(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "jane@example.com",
		"password": "Secret123!",
	})
	accessToken := resp.Data["token"].(map[string]interface{})["accessToken"].(string)

	// authorized search, ignore filter applied
	req = httptest.NewRequest(http.MethodGet, "/api/v1/github/search?query=go&ignore=gin", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var parsed TestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	assert.EqualValues(t, 1, parsed.Data["total_count"])
	items := parsed.Data["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "awesome-go", items[0].(map[string]interface{})["name"])

	// missing query parameter
	req = httptest.NewRequest(http.MethodGet, "/api/v1/github/search", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}
