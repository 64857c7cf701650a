package disability

import "errors"

var (
	ErrDisabilityNotFound = errors.New("disability record not found")
	ErrPersonNotFound     = errors.New("person not found")
)
