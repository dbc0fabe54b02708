package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xxxsen/common/webapi"

	"github.com/xxxsen/taskradar/internal/handler"
	"github.com/xxxsen/taskradar/internal/middleware"
	"github.com/xxxsen/taskradar/internal/oauth"
	"github.com/xxxsen/taskradar/internal/repo"
	"github.com/xxxsen/taskradar/internal/service"
	"github.com/xxxsen/taskradar/internal/testutil"
)

func setupRouter(t *testing.T) (http.Handler, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, cleanup := testutil.OpenTestDB(t)
	userRepo := repo.NewUserRepo(db)
	oauthRepo := repo.NewOAuthRepo(db)
	taskRepo := repo.NewTaskRepo(db)
	deviceRepo := repo.NewDeviceStateRepo(db)
	notificationRepo := repo.NewNotificationRepo(db)

	jwtSecret := []byte("test-secret")
	authService := service.NewAuthService(userRepo, jwtSecret, time.Hour)
	oauthService := service.NewOAuthService(userRepo, oauthRepo, jwtSecret, time.Hour, map[string]oauth.Provider{})
	taskService := service.NewTaskService(taskRepo)
	settingsService := service.NewSettingsService(deviceRepo)
	notificationService := service.NewNotificationService(notificationRepo)

	deps := handler.RouterDeps{
		Auth:          handler.NewAuthHandler(authService),
		OAuth:         handler.NewOAuthHandler(oauthService),
		Tasks:         handler.NewTaskHandler(taskService),
		Settings:      handler.NewSettingsHandler(settingsService),
		Notifications: handler.NewNotificationHandler(notificationService),
		JWTSecret:     jwtSecret,
	}

	engine, err := webapi.NewEngine(
		"/api/v1",
		"",
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(nil),
		),
	)
	require.NoError(t, err)

	return engine, cleanup
}

type apiResponse struct {
	Code int                    `json:"code"`
	Msg  string                 `json:"msg"`
	Data map[string]interface{} `json:"data"`
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeResponse(t *testing.T, resp *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var result apiResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	return result
}

func registerUser(t *testing.T, router http.Handler, email string) string {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":    email,
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	result := decodeResponse(t, resp)
	require.Equal(t, 0, result.Code)
	token, _ := result.Data["token"].(string)
	require.NotEmpty(t, token)
	return token
}
