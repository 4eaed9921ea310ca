package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
	ErrProfileClosed        = errors.New("profile is closed")

	ErrAdvertisementNotFound = errors.New("advertisement not found")
	ErrNoFreeBumps           = errors.New("no free bumps remaining")
	ErrInsufficientCredits   = errors.New("insufficient credits")
	ErrInvalidBumpType       = errors.New("invalid bump type")

	ErrBookingNotFound      = errors.New("booking not found")
	ErrInvalidBookingStatus = errors.New("invalid booking status")

	ErrInvalidInput = errors.New("invalid input")
)
