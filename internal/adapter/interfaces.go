// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for communicating with the
// realty assistant backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/propchat/propchat-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the assistant
// backend. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// The adapter holds no credential state: the bearer token for authenticated
// endpoints is supplied per call by the session layer, which owns the
// credential lifecycle.
type ServerAdapter interface {
	// Login exchanges the user's identifier and password for a credential
	// pair via POST /login. A 2xx response that is missing either token is
	// reported as [ErrMissingTokens]: the backend's credential contract is
	// both-or-neither.
	Login(ctx context.Context, identifier, password string) (models.Credential, error)

	// RefreshToken exchanges a refresh token for a fresh credential pair via
	// POST /refresh-token, with the same both-tokens rule as Login.
	RefreshToken(ctx context.Context, refreshToken string) (models.Credential, error)

	// Register creates a new account via POST /register. A response carrying
	// a JSON {success, message} body yields a [models.RegisterResult] even
	// for non-2xx statuses, so the caller can render the backend's message;
	// only transport-level failures return an error.
	Register(ctx context.Context, username, email, password string) (models.RegisterResult, error)

	// GetChatHistory fetches the ordered conversation history via
	// GET /get_chat_history. Requires a bearer token.
	GetChatHistory(ctx context.Context, token string) ([]models.HistoryRecord, error)

	// SendMessage submits a prompt to the completion endpoint via POST /chat
	// and returns the assistant's reply with optional property metadata.
	// Requires a bearer token.
	SendMessage(ctx context.Context, token, message string) (models.ChatResponse, error)

	// ResetChat clears the server-side conversation via POST /reset-chat.
	// Requires a bearer token.
	ResetChat(ctx context.Context, token string) error

	// GetLicenceKey fetches the licence key stored for the authenticated
	// user via GET /get_licence_key. An empty string is a valid result.
	GetLicenceKey(ctx context.Context, token string) (string, error)

	// SaveLicenceKey persists the licence key on the backend via
	// POST /save_licence_key. Requires a bearer token.
	SaveLicenceKey(ctx context.Context, token, key string) error
}
