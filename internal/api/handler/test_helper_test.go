package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/tohsaka888/societies-server/internal/api/dto"
	"github.com/tohsaka888/societies-server/internal/core/domain"
	"github.com/tohsaka888/societies-server/internal/core/repository"
	"github.com/tohsaka888/societies-server/internal/core/service"
	"github.com/tohsaka888/societies-server/internal/infrastructure/sqlite"
	"github.com/tohsaka888/societies-server/internal/logging"
)

// testEnv holds all test dependencies
type testEnv struct {
	db      *sqlite.DB
	router  *gin.Engine
	key     service.SigningKey
	tokens  *service.TokenService
	auth    *service.AuthService
	signUps *service.SignUpService
	admin   *service.AdminService
	docs    repository.DocumentRepository
}

// setupTestEnv creates a test environment with in-memory SQLite database
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	key, err := service.NewSigningKey("handler test secret")
	if err != nil {
		t.Fatalf("failed to create signing key: %v", err)
	}
	tokens := service.NewTokenService(key, service.DefaultTokenTTL)
	log := logging.Discard()

	credentialRepo := sqlite.NewCredentialRepository(db)
	profileRepo := sqlite.NewProfileRepository(db)
	documentRepo := sqlite.NewDocumentRepository(db)

	env := &testEnv{
		db:      db,
		key:     key,
		tokens:  tokens,
		auth:    service.NewAuthService(credentialRepo, profileRepo, tokens, log),
		signUps: service.NewSignUpService(sqlite.NewSignUpRepository(db), profileRepo, log),
		admin:   service.NewAdminService(sqlite.NewAdminRepository(db)),
		docs:    documentRepo,
	}

	authHandler := NewAuthHandler(env.auth)
	adminHandler := NewAdminHandler(env.admin)
	signUpHandler := NewSignUpHandler(env.signUps)
	contentHandler := NewContentHandler(service.NewContentService(documentRepo))

	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.POST("/login", authHandler.Login)
	router.POST("/login/status", authHandler.Status)
	router.POST("/logout", authHandler.Logout)
	router.POST("/register", authHandler.Register)
	router.POST("/adminLogin", adminHandler.Login)
	router.POST("/signUpCompetition", signUpHandler.SignUpCompetition)
	router.POST("/isSignUp", signUpHandler.IsSignUp)
	router.POST("/competitionUserList", signUpHandler.CompetitionUserList)
	router.POST("/competitionList", contentHandler.CompetitionList)
	router.POST("/pages", contentHandler.Pages)
	router.POST("/awardList", contentHandler.AwardList)
	router.POST("/competitionImages", contentHandler.CompetitionImages)
	router.POST("/addArticle", contentHandler.AddArticle)
	router.GET("/getArticles", contentHandler.GetArticles)

	env.router = router
	return env
}

// register creates an account and returns its profile id
func (env *testEnv) register(t *testing.T, username, password string) string {
	t.Helper()

	profile, err := env.auth.Register(context.Background(), domain.Registration{
		Username:    username,
		Password:    password,
		Phone:       "555-0100",
		ClassID:     "cs-2",
		College:     "Engineering",
		ScoreNumber: "2021001",
	})
	if err != nil {
		t.Fatalf("failed to register %s: %v", username, err)
	}
	return profile.ID
}

// post sends body as JSON and returns the response
func (env *testEnv) post(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req, err := http.NewRequest(http.MethodPost, path, &buf)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// makeRequest performs a GET request and returns the response
func (env *testEnv) makeRequest(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// decode parses the response body into T
func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var resp T
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

// parseErrorResponse parses the response body into ErrorResponse
func parseErrorResponse(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	return decode[dto.ErrorResponse](t, w)
}

func newJSONRequest(t *testing.T, path, body string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

func (env *testEnv) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// signClaims signs arbitrary claims with the environment's key
func (env *testEnv) signClaims(t *testing.T, claims service.TokenClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(env.key))
	if err != nil {
		t.Fatalf("failed to sign claims: %v", err)
	}
	return token
}
