package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/propchat/propchat-client/internal/config"
	"github.com/propchat/propchat-client/internal/logger"
	"github.com/propchat/propchat-client/internal/utils"
	"github.com/propchat/propchat-client/models"
)

type httpServerAdapter struct {
	client *resty.Client
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying resty client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, ids: utils.NewUUIDGenerator(), logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to POST /login
// and decodes the returned token pair. A 2xx response missing either token is
// an [ErrMissingTokens] failure: a half pair is never allowed to reach the
// session layer.
func (h *httpServerAdapter) Login(ctx context.Context, identifier, password string) (models.Credential, error) {
	var body models.TokenPairResponse

	resp, err := h.request(ctx).
		SetBody(map[string]string{"identifier": identifier, "password": password}).
		SetResult(&body).
		Post("/login")
	if err != nil {
		return models.Credential{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}

	return credentialFromPair(body)
}

// RefreshToken implements [ServerAdapter]. It POSTs the refresh token to
// POST /refresh-token; the response follows the same both-tokens rule as
// Login.
func (h *httpServerAdapter) RefreshToken(ctx context.Context, refreshToken string) (models.Credential, error) {
	var body models.TokenPairResponse

	resp, err := h.request(ctx).
		SetBody(map[string]string{"refreshToken": refreshToken}).
		SetResult(&body).
		Post("/refresh-token")
	if err != nil {
		return models.Credential{}, fmt.Errorf("refresh token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}

	return credentialFromPair(body)
}

// Register implements [ServerAdapter]. It POSTs the registration details to
// POST /register. The backend answers with a {success, message} body on both
// acceptance and rejection, so any response carrying a decodable message is
// returned as a result value rather than an error.
func (h *httpServerAdapter) Register(ctx context.Context, username, email, password string) (models.RegisterResult, error) {
	resp, err := h.request(ctx).
		SetBody(map[string]string{"username": username, "email": email, "password": password}).
		Post("/register")
	if err != nil {
		return models.RegisterResult{}, fmt.Errorf("register request: %w", err)
	}

	var result models.RegisterResult
	if decodeErr := json.Unmarshal(resp.Body(), &result); decodeErr == nil && result.Message != "" {
		return result, nil
	}

	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResult{}, err
	}

	return result, nil
}

// GetChatHistory implements [ServerAdapter]. It GETs the ordered history
// array from GET /get_chat_history. Requires a valid bearer token. Returns an
// error if the request, response mapping, or JSON decoding fails.
func (h *httpServerAdapter) GetChatHistory(ctx context.Context, token string) ([]models.HistoryRecord, error) {
	resp, err := h.authedRequest(ctx, token).Get("/get_chat_history")
	if err != nil {
		return nil, fmt.Errorf("get chat history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var records []models.HistoryRecord
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("decode chat history response: %w", err)
	}

	return records, nil
}

// SendMessage implements [ServerAdapter]. It POSTs the prompt to POST /chat
// and decodes the assistant reply. Requires a valid bearer token.
func (h *httpServerAdapter) SendMessage(ctx context.Context, token, message string) (models.ChatResponse, error) {
	var body models.ChatResponse

	resp, err := h.authedRequest(ctx, token).
		SetBody(map[string]string{"message": message}).
		SetResult(&body).
		Post("/chat")
	if err != nil {
		return models.ChatResponse{}, fmt.Errorf("chat request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChatResponse{}, err
	}

	return body, nil
}

// ResetChat implements [ServerAdapter]. It POSTs an empty body to
// POST /reset-chat. Requires a valid bearer token.
func (h *httpServerAdapter) ResetChat(ctx context.Context, token string) error {
	resp, err := h.authedRequest(ctx, token).
		SetBody(map[string]string{}).
		Post("/reset-chat")
	if err != nil {
		return fmt.Errorf("reset chat request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetLicenceKey implements [ServerAdapter]. It GETs the stored licence key
// from GET /get_licence_key. An empty licence_key field is a valid response.
// Requires a valid bearer token.
func (h *httpServerAdapter) GetLicenceKey(ctx context.Context, token string) (string, error) {
	var body models.LicenceKeyResponse

	resp, err := h.authedRequest(ctx, token).
		SetResult(&body).
		Get("/get_licence_key")
	if err != nil {
		return "", fmt.Errorf("get licence key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return body.LicenceKey, nil
}

// SaveLicenceKey implements [ServerAdapter]. It POSTs the licence key to
// POST /save_licence_key. Requires a valid bearer token.
func (h *httpServerAdapter) SaveLicenceKey(ctx context.Context, token, key string) error {
	resp, err := h.authedRequest(ctx, token).
		SetBody(map[string]string{"licence_key": key}).
		Post("/save_licence_key")
	if err != nil {
		return fmt.Errorf("save licence key request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-Id", h.ids.Generate())
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	req := h.request(ctx)
	if token = strings.TrimSpace(token); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func credentialFromPair(pair models.TokenPairResponse) (models.Credential, error) {
	cred := models.Credential{
		AccessToken:  pair.Token,
		RefreshToken: pair.RefreshToken,
	}
	if !cred.Complete() {
		return models.Credential{}, ErrMissingTokens
	}

	return cred, nil
}
