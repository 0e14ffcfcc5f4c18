package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/saucepan-labs/recipebook/backend/config"
	"github.com/saucepan-labs/recipebook/backend/internal/model"
	"github.com/saucepan-labs/recipebook/backend/internal/router"
	"github.com/saucepan-labs/recipebook/backend/internal/service"
)

// newTestServer wires the real route table against an in-memory
// database and local media storage.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Recipe{}))

	cfg := &config.Config{
		Env:       config.Test,
		JWTSecret: "test-secret",
		MediaRoot: t.TempDir(),
	}

	media, err := service.NewLocalMediaStore(cfg.MediaRoot)
	require.NoError(t, err)

	engine := router.Setup(router.Deps{
		Config:  cfg,
		Logger:  zap.NewNop(),
		Auth:    service.NewAuthService(db, cfg.JWTSecret, service.NewMemoryTokenRevoker()),
		Recipes: service.NewRecipeService(db),
		Media:   media,
	})
	return engine, db
}

// registerUser creates an account through the API and returns its
// session token.
func registerUser(t *testing.T, engine *gin.Engine) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "testpass123",
	})
	req := httptest.NewRequest("POST", "/register/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func seedRecipes(t *testing.T, db *gorm.DB, recipes ...model.Recipe) {
	t.Helper()
	for i := range recipes {
		require.NoError(t, db.Create(&recipes[i]).Error)
	}
}

func doJSON(engine *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func doForm(engine *gin.Engine, method, path, token string, fields map[string][]string) *httptest.ResponseRecorder {
	form := url.Values(fields)
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}
