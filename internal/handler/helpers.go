package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/notelink/internal/middleware"
	"github.com/xxxsen/notelink/internal/pkg/errcode"
	appErr "github.com/xxxsen/notelink/internal/pkg/errors"
	"github.com/xxxsen/notelink/internal/pkg/response"
)

// handleError maps service errors to stable HTTP signals. Expired links
// answer 410 so clients can render "this link expired" instead of "this
// link never existed"; internal failures never leak storage error text.
func handleError(c *gin.Context, err error) {
	if err != nil {
		requestID, _ := c.Get(middleware.ContextRequestIDKey)
		logutil.GetLogger(c.Request.Context()).Error("request failed",
			zap.Any("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}
	switch {
	case err == nil:
		return
	case appErr.IsNotFound(err):
		response.Error(c, http.StatusNotFound, errcode.ErrNotFound, "document not found")
	case err == appErr.ErrShareNotFound:
		response.Error(c, http.StatusNotFound, errcode.ErrShareNotFound, "share link not found")
	case err == appErr.ErrLinkExpired:
		response.Error(c, http.StatusGone, errcode.ErrLinkExpired, "link has expired")
	case err == appErr.ErrInvalid:
		response.Error(c, http.StatusBadRequest, errcode.ErrInvalid, "invalid request")
	case appErr.IsConflict(err):
		response.Error(c, http.StatusConflict, errcode.ErrConflict, "conflict")
	default:
		response.Error(c, http.StatusInternalServerError, errcode.ErrInternal, "internal error")
	}
}
