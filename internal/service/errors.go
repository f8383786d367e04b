package service

import "errors"

var (
	ErrUnauthenticated   = errors.New("not authenticated")
	ErrNoRefreshToken    = errors.New("no refresh token stored")
	ErrEmptyPrompt       = errors.New("prompt is empty")
	ErrPromptInFlight    = errors.New("another prompt is already in flight")
	ErrInvalidLicenceKey = errors.New("licence key has invalid format")
)
