package service

import "errors"

var (
	ErrUserAlreadyExists   = errors.New("username or email already taken")
	ErrInvalidRole         = errors.New("invalid role")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrRefreshTokenInvalid = errors.New("refresh token invalid or revoked")
	ErrUserNotFound        = errors.New("user not found")

	ErrListNotFound        = errors.New("list not found")
	ErrItemNotFound        = errors.New("item not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrLinkCollision       = errors.New("shareable link already in use")

	ErrGiftNotAvailable   = errors.New("item not available")
	ErrNotYourReservation = errors.New("not your reservation")
	ErrInvalidRsvpStatus  = errors.New("invalid rsvp status")
	ErrInvalidGiftStatus  = errors.New("invalid gift status")
)
