package errcode

const (
	ErrNotFound = 10000000 + iota
	ErrShareNotFound
	ErrLinkExpired
	ErrInvalid
	ErrConflict
	ErrTooMany
	ErrInternal
)
