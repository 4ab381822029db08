package errors

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrShareNotFound = errors.New("share not found")
	ErrLinkExpired   = errors.New("link expired")
	ErrInvalid       = errors.New("invalid")
	ErrConflict      = errors.New("conflict")
	ErrInternal      = errors.New("internal")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
