package services

import "errors"

// Common errors
var (
	ErrNotFound             = errors.New("resource not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrDonationNotFound     = errors.New("donation not found")
	ErrSponsorshipNotFound  = errors.New("sponsorship not found")
	ErrVolunteerNotFound    = errors.New("volunteer application not found")
	ErrStoryNotFound        = errors.New("story not found")
	ErrMessageNotFound      = errors.New("message not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidToken         = errors.New("invalid token")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrInternal             = errors.New("internal server error")
	ErrResourceExists       = errors.New("resource already exists")
	ErrAlreadyRegistered    = errors.New("user is already registered for this event")
	ErrValidation           = errors.New("validation error")
	ErrWebSocketConnection  = errors.New("websocket connection error")
)
