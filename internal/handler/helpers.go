package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/taskradar/internal/pkg/errcode"
	appErr "github.com/xxxsen/taskradar/internal/pkg/errors"
	"github.com/xxxsen/taskradar/internal/pkg/response"
)

func getUserID(c *gin.Context) string {
	value, _ := c.Get("user_id")
	userID, _ := value.(string)
	return userID
}

func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID, _ := c.Get("request_id")
	logutil.GetLogger(c.Request.Context()).Warn("request failed",
		zap.Any("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("user_id", getUserID(c)),
		zap.Error(err),
	)
	switch {
	case appErr.IsNotFound(err):
		response.Error(c, errcode.ErrNotFound, http.StatusText(http.StatusNotFound))
	case err == appErr.ErrUnauthorized:
		response.Error(c, errcode.ErrUnauthorized, http.StatusText(http.StatusUnauthorized))
	case err == appErr.ErrForbidden:
		response.Error(c, errcode.ErrForbidden, http.StatusText(http.StatusForbidden))
	case err == appErr.ErrInvalid:
		response.Error(c, errcode.ErrInvalid, "invalid request")
	case appErr.IsConflict(err):
		response.Error(c, errcode.ErrConflict, http.StatusText(http.StatusConflict))
	default:
		response.Error(c, errcode.ErrInternal, "internal error")
	}
}
