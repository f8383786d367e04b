package models

import "encoding/json"

// TokenPairResponse is the body returned by the login and refresh-token
// endpoints.
type TokenPairResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// RegisterResult is the outcome of a registration attempt. It is returned to
// the caller as a value rather than an error so the UI can render Message
// regardless of Success.
type RegisterResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ChatResponse is the body returned by the completion endpoint. Metadata,
// when present, is an array of property listings; unlike the history
// endpoint it arrives as a bare JSON array, so it is kept raw here.
type ChatResponse struct {
	Response string          `json:"response"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// LicenceKeyResponse is the body returned by the licence-key fetch endpoint.
type LicenceKeyResponse struct {
	LicenceKey string `json:"licence_key"`
}
