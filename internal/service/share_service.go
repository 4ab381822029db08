package service

import (
	"context"
	"strings"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/notelink/internal/model"
	appErr "github.com/xxxsen/notelink/internal/pkg/errors"
	"github.com/xxxsen/notelink/internal/pkg/token"
)

// DocumentStore is the collaborator owning document content. The share
// core only ever reads from it.
type DocumentStore interface {
	GetByID(ctx context.Context, id string) (*model.Document, error)
}

type ShareStore interface {
	Create(ctx context.Context, share *model.Share) error
	GetByToken(ctx context.Context, token string) (*model.Share, error)
	DeleteByToken(ctx context.Context, token string) error
}

type ShareService struct {
	docs       DocumentStore
	shares     ShareStore
	baseURL    string
	tokenBytes int
	now        func() time.Time
}

func NewShareService(docs DocumentStore, shares ShareStore, baseURL string, tokenBytes int) *ShareService {
	if tokenBytes <= 0 {
		tokenBytes = token.DefaultByteLength
	}
	return &ShareService{
		docs:       docs,
		shares:     shares,
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokenBytes: tokenBytes,
		now:        time.Now,
	}
}

type CreateShareResult struct {
	URL   string `json:"url"`
	Token string `json:"token"`
	// ExpiresAt is a unix timestamp, 0 when the link never expires.
	ExpiresAt int64 `json:"expires_at"`
}

// SharedNote is the read-only projection handed to unauthenticated
// viewers. Fields outside this set must never be exposed, whatever the
// underlying document grows in the future.
type SharedNote struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

type ResolveShareResult struct {
	Note       SharedNote `json:"note"`
	ReadOnly   bool       `json:"read_only"`
	AccessMode int        `json:"access_mode"`
}

// CreateShare validates the target document, mints a token and persists
// the binding. expiresInSeconds <= 0 means the link never expires; a
// token collision is retried once before giving up.
func (s *ShareService) CreateShare(ctx context.Context, documentID string, expiresInSeconds int64) (*CreateShareResult, error) {
	if documentID == "" {
		return nil, appErr.ErrInvalid
	}
	if _, err := s.docs.GetByID(ctx, documentID); err != nil {
		return nil, err
	}
	now := s.now().Unix()
	var expiresAt int64
	if expiresInSeconds > 0 {
		expiresAt = now + expiresInSeconds
	}
	share := &model.Share{
		Token:      token.New(s.tokenBytes),
		DocumentID: documentID,
		AccessMode: model.AccessModeReadOnly,
		ExpiresAt:  expiresAt,
		Ctime:      now,
	}
	err := s.shares.Create(ctx, share)
	if appErr.IsConflict(err) {
		logutil.GetLogger(ctx).Warn("share token collision, regenerating",
			zap.String("document_id", documentID))
		share.Token = token.New(s.tokenBytes)
		err = s.shares.Create(ctx, share)
		if appErr.IsConflict(err) {
			return nil, appErr.ErrInternal
		}
	}
	if err != nil {
		return nil, err
	}
	return &CreateShareResult{
		URL:       s.baseURL + "/s/" + share.Token,
		Token:     share.Token,
		ExpiresAt: expiresAt,
	}, nil
}

// ResolveShare looks up a token and returns the projected document.
// Expiry is evaluated lazily against the service clock; an expired link
// reports ErrLinkExpired, never ErrShareNotFound, so callers can tell
// "expired" from "never existed". Resolution is a pure read.
func (s *ShareService) ResolveShare(ctx context.Context, tok string) (*ResolveShareResult, error) {
	share, err := s.shares.GetByToken(ctx, tok)
	if appErr.IsNotFound(err) {
		return nil, appErr.ErrShareNotFound
	}
	if err != nil {
		return nil, err
	}
	if share.ExpiresAt > 0 && s.now().Unix() >= share.ExpiresAt {
		return nil, appErr.ErrLinkExpired
	}
	doc, err := s.docs.GetByID(ctx, share.DocumentID)
	if err != nil {
		// The owning document may have been deleted after the share was
		// created; an orphaned share resolves to not-found.
		return nil, err
	}
	title := doc.Title
	if title == "" {
		title = "Untitled"
	}
	return &ResolveShareResult{
		Note: SharedNote{
			ID:        doc.ID,
			Title:     title,
			Content:   doc.Content,
			CreatedAt: doc.Ctime,
			UpdatedAt: doc.Mtime,
		},
		ReadOnly:   true,
		AccessMode: share.AccessMode,
	}, nil
}

// RevokeShare deletes the binding. Revoking an unknown, expired or
// already-revoked token succeeds, so client retries never see a
// spurious failure.
func (s *ShareService) RevokeShare(ctx context.Context, tok string) error {
	return s.shares.DeleteByToken(ctx, tok)
}
