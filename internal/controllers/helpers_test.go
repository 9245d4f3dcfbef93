package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Somye55/colbin-recruitment-platform/internal/auth"
	"github.com/Somye55/colbin-recruitment-platform/internal/controllers"
	"github.com/Somye55/colbin-recruitment-platform/internal/db"
	"github.com/Somye55/colbin-recruitment-platform/internal/store"
)

const testSecret = "test-secret"

type testEnv struct {
	router *gin.Engine
	users  *store.UserStore
	tokens *auth.TokenService
	conn   *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	conn, err := db.Init(sqlite.Open("file:" + name + "?mode=memory&cache=shared"))
	require.NoError(t, err)

	users := store.NewUserStore(conn, bcrypt.MinCost)
	tokens := auth.NewTokenService(testSecret, time.Hour)
	router := controllers.SetupRouter(users, tokens, nil, nil)

	return &testEnv{router: router, users: users, tokens: tokens, conn: conn}
}

type envelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
	User    map[string]any `json:"user"`
	Token   string         `json:"token"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env),
		"body: %s", rec.Body.String())
	return rec.Code, env
}

func registerBody() map[string]any {
	return map[string]any{
		"email":     "a@b.com",
		"password":  "Abcd123!",
		"firstName": "A",
		"lastName":  "B",
	}
}

// register creates a user through the API and returns its id and token.
func (e *testEnv) register(t *testing.T) (string, string) {
	t.Helper()
	code, env := e.do(t, http.MethodPost, "/api/auth/register", "", registerBody())
	require.Equal(t, http.StatusCreated, code)
	require.NotEmpty(t, env.Token)
	id, _ := env.User["id"].(string)
	require.NotEmpty(t, id)
	return id, env.Token
}

func fieldNames(env envelope) []string {
	out := make([]string, 0, len(env.Errors))
	for _, e := range env.Errors {
		out = append(out, e.Field)
	}
	return out
}
