package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xxxsen/taskradar/internal/middleware"
)

type RouterDeps struct {
	Auth          *AuthHandler
	OAuth         *OAuthHandler
	Tasks         *TaskHandler
	Settings      *SettingsHandler
	Notifications *NotificationHandler
	JWTSecret     []byte
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	credLimit := middleware.RateLimit(time.Second)
	api.POST("/auth/register", credLimit, deps.Auth.Register)
	api.POST("/auth/login", credLimit, deps.Auth.Login)
	api.POST("/auth/logout", deps.Auth.Logout)

	api.GET("/oauth/:provider/authurl", deps.OAuth.AuthURL)
	api.GET("/oauth/:provider/callback", deps.OAuth.Callback)

	authGroup := api.Group("")
	authGroup.Use(middleware.JWTAuth(deps.JWTSecret))
	authGroup.POST("/tasks", deps.Tasks.Create)
	authGroup.GET("/tasks", deps.Tasks.List)
	authGroup.GET("/tasks/summary", deps.Tasks.Summary)
	authGroup.GET("/tasks/:id", deps.Tasks.Get)
	authGroup.PUT("/tasks/:id", deps.Tasks.Update)
	authGroup.PUT("/tasks/:id/complete", deps.Tasks.Complete)
	authGroup.DELETE("/tasks/:id", deps.Tasks.Delete)

	authGroup.GET("/settings", deps.Settings.Get)
	authGroup.PUT("/settings", deps.Settings.Update)
	authGroup.PUT("/settings/location", deps.Settings.ReportLocation)

	authGroup.GET("/notifications", deps.Notifications.List)
	authGroup.DELETE("/notifications/:id", deps.Notifications.Dismiss)
}
