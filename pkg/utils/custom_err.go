package utils

import "errors"

var (
	ErrTripNotFound       = errors.New("trip not found")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrInviteNotFound     = errors.New("invite not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrNotTripMember      = errors.New("caller is not a member of this trip")
	ErrNotInviteAddressee = errors.New("invite is addressed to a different email")
	ErrInviteAlreadyDone  = errors.New("invite can no longer be accepted or declined")
	ErrDuplicateActivity  = errors.New("an activity with this title already exists on that day")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrDatabaseError      = errors.New("database error")
)
