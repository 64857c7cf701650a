package lookup

import "errors"

var (
	ErrUnknownTable  = errors.New("unknown lookup table")
	ErrEntryNotFound = errors.New("lookup entry not found")
	ErrNameTaken     = errors.New("lookup name already exists")
)
