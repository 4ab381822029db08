package model

const (
	AccessModeReadOnly = 1
)

type Share struct {
	Token      string `json:"token"`
	DocumentID string `json:"document_id"`
	AccessMode int    `json:"access_mode"`
	// ExpiresAt is a unix timestamp; 0 means the link never expires.
	ExpiresAt int64 `json:"expires_at"`
	Ctime     int64 `json:"ctime"`
}
