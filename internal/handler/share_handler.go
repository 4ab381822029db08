package handler

import (
	"github.com/gin-gonic/gin"

	appErr "github.com/xxxsen/notelink/internal/pkg/errors"
	"github.com/xxxsen/notelink/internal/pkg/response"
	"github.com/xxxsen/notelink/internal/service"
)

type ShareHandler struct {
	shares *service.ShareService
}

func NewShareHandler(shares *service.ShareService) *ShareHandler {
	return &ShareHandler{shares: shares}
}

type createShareRequest struct {
	DocumentID       string `json:"document_id"`
	ExpiresInSeconds int64  `json:"expires_in_seconds"`
}

type createShareResponse struct {
	URL   string `json:"url"`
	Token string `json:"token"`
	// null means the link never expires.
	ExpiresAt *int64 `json:"expires_at"`
}

func (h *ShareHandler) Create(c *gin.Context) {
	var req createShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, appErr.ErrInvalid)
		return
	}
	result, err := h.shares.CreateShare(c.Request.Context(), req.DocumentID, req.ExpiresInSeconds)
	if err != nil {
		handleError(c, err)
		return
	}
	resp := createShareResponse{URL: result.URL, Token: result.Token}
	if result.ExpiresAt > 0 {
		resp.ExpiresAt = &result.ExpiresAt
	}
	response.Created(c, resp)
}

func (h *ShareHandler) Resolve(c *gin.Context) {
	result, err := h.shares.ResolveShare(c.Request.Context(), c.Param("token"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"note": result.Note, "read_only": result.ReadOnly})
}

func (h *ShareHandler) Revoke(c *gin.Context) {
	if err := h.shares.RevokeShare(c.Request.Context(), c.Param("token")); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "share link revoked"})
}
