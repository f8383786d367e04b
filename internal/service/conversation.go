// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/propchat/propchat-client/internal/adapter"
	"github.com/propchat/propchat-client/internal/logger"
	"github.com/propchat/propchat-client/internal/store"
	"github.com/propchat/propchat-client/models"
)

type conversationService struct {
	session SessionService
	adapter adapter.ServerAdapter
	cache   store.HistoryCacheRepository
	logger  *logger.Logger

	// mu guards messages and properties. sendMu is the single-in-flight
	// gate for SendPrompt: a second concurrent prompt is rejected, not
	// queued.
	mu         sync.RWMutex
	sendMu     sync.Mutex
	messages   []models.Message
	properties []models.Property
}

func NewConversationService(session SessionService, serverAdapter adapter.ServerAdapter, cache store.HistoryCacheRepository, log *logger.Logger) ConversationService {
	return &conversationService{
		session: session,
		adapter: serverAdapter,
		cache:   cache,
		logger:  log,
	}
}

// PreloadCache seeds the transcript from the local history cache. Failures
// only cost the instant-on transcript, so they are logged and ignored.
func (c *conversationService) PreloadCache(ctx context.Context) {
	cached, err := c.cache.GetAll(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "PreloadCache").Msg("failed to read history cache")
		return
	}
	if len(cached) == 0 {
		return
	}

	c.mu.Lock()
	c.messages = cached
	c.mu.Unlock()
}

func (c *conversationService) LoadHistory(ctx context.Context) error {
	token, err := c.session.EnsureValidCredential(ctx)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	records, err := c.adapter.GetChatHistory(ctx, token)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	// Every record expands to a (user, assistant) turn pair in record
	// order; the previous transcript is replaced wholesale.
	transcript := make([]models.Message, 0, 2*len(records))
	for _, record := range records {
		transcript = append(transcript,
			models.Message{Content: record.UserMessage, Role: models.RoleUser},
			models.Message{Content: record.BotResponse, Role: models.RoleAssistant},
		)
	}

	c.mu.Lock()
	c.messages = transcript
	c.mu.Unlock()

	c.mirrorToCache(ctx, transcript)

	// Only the last record's metadata describes the current listing set.
	if len(records) > 0 && len(records[len(records)-1].Metadata) > 0 {
		if err := c.replaceProperties(records[len(records)-1].Metadata); err != nil {
			return fmt.Errorf("load history: %w", err)
		}
	}

	return nil
}

func (c *conversationService) SendPrompt(ctx context.Context, text string) (models.Message, error) {
	prompt := strings.TrimSpace(text)
	if prompt == "" {
		return models.Message{}, ErrEmptyPrompt
	}

	if !c.sendMu.TryLock() {
		return models.Message{}, ErrPromptInFlight
	}
	defer c.sendMu.Unlock()

	// The user's turn is appended before the network call so it is visible
	// immediately.
	c.append(models.Message{Content: prompt, Role: models.RoleUser})

	token, err := c.session.EnsureValidCredential(ctx)
	if err != nil {
		return c.appendFailure(err), nil
	}

	resp, err := c.adapter.SendMessage(ctx, token, prompt)
	if err != nil {
		return c.appendFailure(err), nil
	}

	reply := models.Message{Content: resp.Response, Role: models.RoleAssistant}
	c.append(reply)

	if err := c.replaceProperties(resp.Metadata); err != nil {
		c.logger.Warn().Err(err).Str("func", "SendPrompt").Msg("reply metadata is not a listing set")
	}

	c.mirrorToCache(ctx, c.Messages())

	return reply, nil
}

func (c *conversationService) Reset(ctx context.Context) error {
	token, err := c.session.EnsureValidCredential(ctx)
	if err != nil {
		return fmt.Errorf("reset chat: %w", err)
	}

	// Fail closed: local state is only cleared once the backend confirms.
	if err := c.adapter.ResetChat(ctx, token); err != nil {
		return fmt.Errorf("reset chat: %w", err)
	}

	c.mu.Lock()
	c.messages = nil
	c.properties = nil
	c.mu.Unlock()

	if err := c.cache.Clear(ctx); err != nil {
		c.logger.Warn().Err(err).Str("func", "Reset").Msg("failed to clear history cache")
	}

	return nil
}

func (c *conversationService) Messages() []models.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *conversationService) Properties() []models.Property {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Property, len(c.properties))
	copy(out, c.properties)
	return out
}

func (c *conversationService) append(message models.Message) {
	c.mu.Lock()
	c.messages = append(c.messages, message)
	c.mu.Unlock()
}

// appendFailure renders a backend failure as the assistant's turn. Errors
// never cross the SendPrompt boundary as errors; the conversation shows
// them instead.
func (c *conversationService) appendFailure(err error) models.Message {
	c.logger.Warn().Err(err).Str("func", "SendPrompt").Msg("prompt failed")
	reply := models.Message{Content: err.Error(), Role: models.RoleAssistant}
	c.append(reply)
	return reply
}

// replaceProperties parses metadata and replaces the listing set wholesale.
// On a parse failure the previous set is kept untouched.
func (c *conversationService) replaceProperties(metadata []byte) error {
	properties, err := parsePropertyMetadata(metadata)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.properties = properties
	c.mu.Unlock()
	return nil
}

func (c *conversationService) mirrorToCache(ctx context.Context, transcript []models.Message) {
	if err := c.cache.Replace(ctx, transcript); err != nil {
		c.logger.Warn().Err(err).Str("func", "mirrorToCache").Msg("failed to mirror transcript to cache")
	}
}
