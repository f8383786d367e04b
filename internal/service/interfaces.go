// Package service holds the business logic of the client: session and
// credential lifecycle, licence gating, and conversation state kept in
// sync with the assistant backend.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/propchat/propchat-client/models"
)

// AuthState is the session's authentication state. It starts at
// AuthStateUnknown and settles after Initialize.
type AuthState int

const (
	AuthStateUnknown AuthState = iota
	AuthStateAuthenticated
	AuthStateUnauthenticated
)

func (s AuthState) String() string {
	switch s {
	case AuthStateAuthenticated:
		return "authenticated"
	case AuthStateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// SessionService owns the credential pair and the authentication state
// machine. It is the only writer to the durable token entries; every other
// component obtains a bearer token through EnsureValidCredential.
type SessionService interface {
	// Initialize loads the persisted credential and settles the initial
	// state: no credential means unauthenticated, an expired access token
	// triggers one refresh attempt, a live token means authenticated.
	Initialize(ctx context.Context)

	// Login authenticates against the backend and persists the returned
	// credential pair. On any failure the state becomes unauthenticated and
	// the error is returned so the caller can show it next to a retry
	// prompt. This is the one operation whose failure is not swallowed.
	Login(ctx context.Context, identifier, password string) error

	// Logout clears the stored credential and moves the state to
	// unauthenticated. Idempotent.
	Logout(ctx context.Context)

	// Register creates an account on the backend. The outcome is returned
	// as a result value rather than an error so the caller can render the
	// backend's message regardless of success.
	Register(ctx context.Context, username, email, password string) models.RegisterResult

	// Refresh exchanges the stored refresh token for a new credential pair.
	// A missing refresh token or any failure is terminal: the credential is
	// cleared and the state becomes unauthenticated. Never retried.
	Refresh(ctx context.Context) error

	// EnsureValidCredential returns a bearer token that is valid right now,
	// transparently refreshing an expired one. Fails with
	// ErrUnauthenticated when no usable credential can be produced.
	EnsureValidCredential(ctx context.Context) (string, error)

	// State reports the current authentication state.
	State() AuthState
}

// LicenceService gates assistant usage behind a licence key. The key lives
// on the backend and is mirrored locally; fetch failures are treated as an
// empty key so a flaky backend cannot deadlock startup.
type LicenceService interface {
	// Fetch loads the licence key from the backend. Any failure is logged
	// and treated as an empty key; either way the gate is marked loaded.
	Fetch(ctx context.Context)

	// ValidateFormat reports whether key is exactly 43 characters drawn
	// from [A-Za-z0-9_-]. Pure, no I/O.
	ValidateFormat(key string) bool

	// Set validates the key's format and, if valid, updates local state
	// immediately. Persistence to the backend and the local store happens
	// best effort: failures are logged, never surfaced, never retried.
	// A format-invalid key returns ErrInvalidLicenceKey with no state
	// change.
	Set(ctx context.Context, key string) error

	// Key returns the current licence key, possibly empty.
	Key() string

	// Loaded reports whether Fetch has completed at least once.
	Loaded() bool
}

// ConversationService owns the transcript and the property set, keeping
// them in sync with the backend's conversation state.
type ConversationService interface {
	// PreloadCache seeds the transcript from the local history cache so the
	// user sees the previous conversation before the first network load.
	PreloadCache(ctx context.Context)

	// LoadHistory fetches the full history and replaces the transcript
	// wholesale. The last record's metadata, when present, replaces the
	// property set; malformed metadata keeps the previous set and is
	// reported through the returned error.
	LoadHistory(ctx context.Context) error

	// SendPrompt appends the user's turn, submits it to the assistant, and
	// appends the reply as an assistant turn. Backend failures are rendered
	// as the assistant turn's content instead of being returned: the method
	// errors only on an empty prompt (ErrEmptyPrompt) or when another
	// prompt is already in flight (ErrPromptInFlight). The returned message
	// is always the appended assistant turn.
	SendPrompt(ctx context.Context, text string) (models.Message, error)

	// Reset clears the conversation on the backend and, only on success,
	// the local transcript and property set. On failure nothing local is
	// touched and the error is returned for display.
	Reset(ctx context.Context) error

	// Messages returns a copy of the transcript.
	Messages() []models.Message

	// Properties returns a copy of the current property set.
	Properties() []models.Property
}
