package death

import "errors"

var (
	ErrDeathNotFound     = errors.New("death record not found")
	ErrPersonNotFound    = errors.New("person not found")
	ErrAlreadyRegistered = errors.New("death already registered for person")
)
