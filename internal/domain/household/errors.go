package household

import "errors"

var (
	ErrHouseholdNotFound = errors.New("household not found")
	ErrHouseholdNoTaken  = errors.New("household number already exists")
	ErrHouseholdInUse    = errors.New("household has registered persons")
)
