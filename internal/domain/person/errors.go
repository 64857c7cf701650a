package person

import "errors"

var (
	ErrPersonNotFound    = errors.New("person not found")
	ErrHouseholdNotFound = errors.New("household not found")
)
