package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xxxsen/taskradar/internal/pkg/errcode"
	"github.com/xxxsen/taskradar/internal/pkg/geo"
	"github.com/xxxsen/taskradar/internal/pkg/response"
	"github.com/xxxsen/taskradar/internal/service"
)

type SettingsHandler struct {
	settings *service.SettingsService
}

func NewSettingsHandler(settings *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	state, err := h.settings.Get(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, state)
}

type settingsRequest struct {
	LocationPermission   bool `json:"location_permission"`
	NotificationsEnabled bool `json:"notifications_enabled"`
	DarkMode             bool `json:"dark_mode"`
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request")
		return
	}
	err := h.settings.Update(c.Request.Context(), getUserID(c), service.SettingsInput{
		LocationPermission:   req.LocationPermission,
		NotificationsEnabled: req.NotificationsEnabled,
		DarkMode:             req.DarkMode,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"ok": true})
}

type locationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (h *SettingsHandler) ReportLocation(c *gin.Context) {
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request")
		return
	}
	err := h.settings.ReportLocation(c.Request.Context(), getUserID(c), geo.Point{Lat: req.Lat, Lng: req.Lng})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"ok": true})
}
