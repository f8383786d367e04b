// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/propchat/propchat-client/internal/adapter"
	"github.com/propchat/propchat-client/internal/logger"
	"github.com/propchat/propchat-client/internal/utils"
	"github.com/propchat/propchat-client/models"
)

// expiryLeeway counts a nearly-expired access token as expired so a request
// issued with it does not die in flight.
const expiryLeeway = 30 * time.Second

type sessionService struct {
	tokens  *TokenStore
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	// mu guards state and cred. refreshMu serialises refresh attempts so
	// concurrent EnsureValidCredential calls cannot double-refresh.
	mu        sync.RWMutex
	refreshMu sync.Mutex
	state     AuthState
	cred      models.Credential
}

func NewSessionService(tokens *TokenStore, serverAdapter adapter.ServerAdapter, log *logger.Logger) SessionService {
	return &sessionService{
		tokens:  tokens,
		adapter: serverAdapter,
		logger:  log,
		state:   AuthStateUnknown,
	}
}

func (s *sessionService) Initialize(ctx context.Context) {
	cred, err := s.tokens.Load(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("func", "Initialize").Msg("failed to load stored credential")
		s.setSession(AuthStateUnauthenticated, models.Credential{})
		return
	}

	if cred.IsZero() {
		s.setSession(AuthStateUnauthenticated, models.Credential{})
		return
	}

	s.setSession(AuthStateUnknown, cred)

	if utils.IsTokenExpired(cred.AccessToken, expiryLeeway) {
		if err := s.Refresh(ctx); err != nil {
			s.logger.Info().Str("func", "Initialize").Msg("stored credential expired and refresh failed")
		}
		return
	}

	s.setSession(AuthStateAuthenticated, cred)
}

func (s *sessionService) Login(ctx context.Context, identifier, password string) error {
	cred, err := s.adapter.Login(ctx, identifier, password)
	if err != nil {
		s.setSession(AuthStateUnauthenticated, models.Credential{})
		return fmt.Errorf("login: %w", err)
	}

	if err := s.tokens.Save(ctx, cred); err != nil {
		s.logger.Error().Err(err).Str("func", "Login").Msg("failed to persist credential")
		s.setSession(AuthStateUnauthenticated, models.Credential{})
		return fmt.Errorf("persist credential: %w", err)
	}

	s.setSession(AuthStateAuthenticated, cred)
	return nil
}

func (s *sessionService) Logout(ctx context.Context) {
	if err := s.tokens.Clear(ctx); err != nil {
		s.logger.Error().Err(err).Str("func", "Logout").Msg("failed to clear stored credential")
	}
	s.setSession(AuthStateUnauthenticated, models.Credential{})
}

func (s *sessionService) Register(ctx context.Context, username, email, password string) models.RegisterResult {
	result, err := s.adapter.Register(ctx, username, email, password)
	if err != nil {
		// The caller renders the message either way, so transport failures
		// become a failed result rather than an error.
		return models.RegisterResult{Success: false, Message: err.Error()}
	}
	return result
}

func (s *sessionService) Refresh(ctx context.Context) error {
	s.mu.RLock()
	refreshToken := s.cred.RefreshToken
	s.mu.RUnlock()

	if refreshToken == "" {
		s.clearSession(ctx)
		return ErrNoRefreshToken
	}

	cred, err := s.adapter.RefreshToken(ctx, refreshToken)
	if err != nil {
		// Refresh failure is terminal: clear everything, never retry.
		s.clearSession(ctx)
		return fmt.Errorf("refresh token: %w", err)
	}

	if err := s.tokens.Save(ctx, cred); err != nil {
		s.logger.Error().Err(err).Str("func", "Refresh").Msg("failed to persist refreshed credential")
		s.clearSession(ctx)
		return fmt.Errorf("persist refreshed credential: %w", err)
	}

	s.setSession(AuthStateAuthenticated, cred)
	return nil
}

func (s *sessionService) EnsureValidCredential(ctx context.Context) (string, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	s.mu.RLock()
	cred := s.cred
	s.mu.RUnlock()

	if cred.IsZero() {
		return "", ErrUnauthenticated
	}

	if !utils.IsTokenExpired(cred.AccessToken, expiryLeeway) {
		return cred.AccessToken, nil
	}

	if err := s.Refresh(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	s.mu.RLock()
	token := s.cred.AccessToken
	s.mu.RUnlock()
	return token, nil
}

func (s *sessionService) State() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *sessionService) setSession(state AuthState, cred models.Credential) {
	s.mu.Lock()
	s.state = state
	s.cred = cred
	s.mu.Unlock()
}

func (s *sessionService) clearSession(ctx context.Context) {
	if err := s.tokens.Clear(ctx); err != nil {
		s.logger.Error().Err(err).Str("func", "clearSession").Msg("failed to clear stored credential")
	}
	s.setSession(AuthStateUnauthenticated, models.Credential{})
}
