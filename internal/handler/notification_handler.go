package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xxxsen/taskradar/internal/pkg/response"
	"github.com/xxxsen/taskradar/internal/service"
)

type NotificationHandler struct {
	notifications *service.NotificationService
}

func NewNotificationHandler(notifications *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) List(c *gin.Context) {
	items, err := h.notifications.List(c.Request.Context(), getUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"notifications": items})
}

func (h *NotificationHandler) Dismiss(c *gin.Context) {
	if err := h.notifications.Dismiss(c.Request.Context(), getUserID(c), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"ok": true})
}
