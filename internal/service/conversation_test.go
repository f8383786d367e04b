// SPDX-License-Identifier: Apache-2.0

package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/propchat/propchat-client/internal/logger"
	"github.com/propchat/propchat-client/internal/mock"
	"github.com/propchat/propchat-client/internal/service"
	"github.com/propchat/propchat-client/models"
)

const testMetadata = `[{"property_name": "Casa Roble", "location": "CDMX", "images": "[]"}]`

func newTestConversation(t *testing.T, ctrl *gomock.Controller) (service.ConversationService, *mock.MockSessionService, *mock.MockServerAdapter, *mock.MockHistoryCacheRepository) {
	t.Helper()
	session := mock.NewMockSessionService(ctrl)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	cache := mock.NewMockHistoryCacheRepository(ctrl)
	conv := service.NewConversationService(session, serverAdapter, cache, logger.Nop())
	return conv, session, serverAdapter, cache
}

// ── LoadHistory ──────────────────────────────────────────────────────────────

func TestConversation_LoadHistory_ExpandsRecordsInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conv, session, serverAdapter, cache := newTestConversation(t, ctrl)
	ctx := context.Background()

	session.EXPECT().EnsureValidCredential(ctx).Return("at-1", nil)
	serverAdapter.EXPECT().GetChatHistory(ctx, "at-1").Return([]models.HistoryRecord{
		{UserMessage: "hi", BotResponse: "hello"},
		{UserMessage: "2BR?", BotResponse: "sure"},
	}, nil)
	cache.EXPECT().Replace(ctx, gomock.Any()).Return(nil)

	require.NoError(t, conv.LoadHistory(ctx))

	want := []models.Message{
		{Content: "hi", Role: models.RoleUser},
		{Content: "hello", Role: models.RoleAssistant},
		{Content: "2BR?", Role: models.RoleUser},
		{Content: "sure", Role: models.RoleAssistant},
	}
	assert.Equal(t, want, conv.Messages())
	assert.Empty(t, conv.Properties())
}

func TestConversation_LoadHistory_ReplacesTranscriptWholesale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conv, session, serverAdapter, cache := newTestConversation(t, ctrl)
	ctx := context.Background()

	session.EXPECT().EnsureValidCredential(ctx).Return("at-1", nil).Times(2)
	cache.EXPECT().Replace(ctx, gomock.Any()).Return(nil).Times(2)

	serverAdapter.EXPECT().GetChatHistory(ctx, "at-1").Return([]models.HistoryRecord{
		{UserMessage: "first", BotResponse: "reply"},
	}, nil)
	require.NoError(t, conv.LoadHistory(ctx))

	serverAdapter.EXPECT().GetChatHistory(ctx, "at-1").Return([]models.HistoryRecord{
		{UserMessage: "second", BotResponse: "reply"},
	}, nil)
	require.NoError(t, conv.LoadHistory(ctx))

	messages := conv.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, "second", messages[0].Content)
}

func TestConversation_LoadHistory_LastRecordMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conv, session, serverAdapter, cache := newTestConversation(t, ctrl)
	ctx := context.Background()

	// History metadata arrives double-encoded: a JSON string holding the array.
	wrapped, err := json.Marshal(testMetadata)
	require.NoError(t, err)

	session.EXPECT().EnsureValidCredential(ctx).Return("at-1", nil)
	serverAdapter.EXPECT().GetChatHistory(ctx, "at-1").Return([]models.HistoryRecord{
		{UserMessage: "anything nearby?", BotResponse: "one option", Metadata: wrapped},
	}, nil)
	cache.EXPECT().Replace(ctx, gomock.Any()).Return(nil)

	require.NoError(t, conv.LoadHistory(ctx))

	properties := conv.Properties()
	require.Len(t, properties, 1)
	assert.Equal(t, "Casa Roble", properties[0].Name)
}

func TestConversation_LoadHistory_MalformedMetadataKeepsPreviousSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conv, session, serverAdapter, cache := newTestConversation(t, ctrl)
	ctx := context.Background()

	session.EXPECT().EnsureValidCredential(ctx).Return("at-1", nil).Times(2)
	cache.EXPECT().Replace(ctx, gomock.Any()).Return(nil).Times(2)

	wrapped, err := json.Marshal(testMetadata)
	require.NoError(t, err)
	serverAdapter.EXPECT().GetChatHistory(ctx, "at-1").Return([]models.HistoryRecord{
		{UserMessage: "q", BotResponse: "a", Metadata: wrapped},
	}, nil)
	require.NoError(t, conv.LoadHistory(ctx))
	require.Len(t, conv.Properties(), 1)

	serverAdapter.EXPECT().GetChatHistory(ctx, "at-1").Return([]models.HistoryRecord{
		{UserMessage: "q2", BotResponse: "a2", Metadata: json.RawMessage(`{"unexpected": true}`)},
	}, nil)
	require.Error(t, conv.LoadHistory(ctx))

	// Transcript was replaced, the listing set was not.
	assert.Len(t, conv.Messages(), 2)
	assert.Len(t, conv.Properties(), 1)
}

func TestConversation_LoadHistory_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conv, session, _, _ := newTestConversation(t, ctrl)
	ctx := context.Background()

	session.EXPECT().EnsureValidCredential(ctx).Return("", service.ErrUnauthenticated)

	err := conv.LoadHistory(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrUnauthenticated)
	assert.Empty(t, conv.Messages())
}

// ── SendPrompt ───────────────────────────────────────────────────────────────

func TestConversation_SendPrompt_EmptyPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conv, _, _, _ := newTestConversation(t, ctrl)

	for _, prompt := range []string{"", "   ", "\n\t"} {
		_, err := conv.SendPrompt(context.Background(), prompt)
		assert.ErrorIs(t, err, service.ErrEmptyPrompt)
	}
	assert.Empty(t, conv.Messages())
}

func TestConversation_SendPrompt_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conv, session, serverAdapter, cache := newTestConversation(t, ctrl)
	ctx := context.Background()

	session.EXPECT().EnsureValidCredential(ctx).Return("at-1", nil)
	serverAdapter.EXPECT().SendMessage(ctx, "at-1", "2BR apartment?").Return(models.ChatResponse{
		Response: "Here is an option",
		Metadata: json.RawMessage(testMetadata),
	}, nil)
	cache.EXPECT().Replace(ctx, gomock.Any()).Return(nil)

	reply, err := conv.SendPrompt(ctx, "2BR apartment?")
	require.NoError(t, err)
	assert.Equal(t, models.Message{Content: "Here is an option", Role: models.RoleAssistant}, reply)

	messages := conv.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, models.Message{Content: "2BR apartment?", Role: models.RoleUser}, messages[0])
	assert.Equal(t, reply, messages[1])

	properties := conv.Properties()
	require.Len(t, properties, 1)
	assert.Equal(t, "Casa Roble", properties[0].Name)
}

func TestConversation_SendPrompt_BackendFailureBecomesAssistantTurn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conv, session, serverAdapter, _ := newTestConversation(t, ctrl)
	ctx := context.Background()

	session.EXPECT().EnsureValidCredential(ctx).Return("at-1", nil)
	serverAdapter.EXPECT().SendMessage(ctx, "at-1", "hi").
		Return(models.ChatResponse{}, errors.New("connection refused"))

	reply, err := conv.SendPrompt(ctx, "hi")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAssistant, reply.Role)
	assert.Contains(t, reply.Content, "connection refused")

	// Exactly one user turn and one assistant turn, success or not.
	messages := conv.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, models.RoleUser, messages[0].Role)
	assert.Equal(t, reply, messages[1])
}

func TestConversation_SendPrompt_NoCredentialBecomesAssistantTurn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conv, session, _, _ := newTestConversation(t, ctrl)
	ctx := context.Background()

	session.EXPECT().EnsureValidCredential(ctx).Return("", service.ErrUnauthenticated)

	reply, err := conv.SendPrompt(ctx, "hi")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAssistant, reply.Role)
	assert.Len(t, conv.Messages(), 2)
}

func TestConversation_SendPrompt_SecondCallInFlightIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conv, session, serverAdapter, cache := newTestConversation(t, ctrl)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})

	session.EXPECT().EnsureValidCredential(ctx).Return("at-1", nil)
	serverAdapter.EXPECT().SendMessage(ctx, "at-1", "slow").
		DoAndReturn(func(context.Context, string, string) (models.ChatResponse, error) {
			close(entered)
			<-release
			return models.ChatResponse{Response: "done", Metadata: json.RawMessage(`[]`)}, nil
		})
	cache.EXPECT().Replace(ctx, gomock.Any()).Return(nil)

	done := make(chan error, 1)
	go func() {
		_, err := conv.SendPrompt(ctx, "slow")
		done <- err
	}()

	<-entered
	_, err := conv.SendPrompt(ctx, "eager")
	assert.ErrorIs(t, err, service.ErrPromptInFlight)

	close(release)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("first prompt did not finish")
	}
}

// ── Reset ────────────────────────────────────────────────────────────────────

func TestConversation_Reset_ClearsOnSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conv, session, serverAdapter, cache := newTestConversation(t, ctrl)
	ctx := context.Background()

	session.EXPECT().EnsureValidCredential(ctx).Return("at-1", nil).Times(2)
	serverAdapter.EXPECT().GetChatHistory(ctx, "at-1").Return([]models.HistoryRecord{
		{UserMessage: "q", BotResponse: "a", Metadata: mustWrap(t, testMetadata)},
	}, nil)
	cache.EXPECT().Replace(ctx, gomock.Any()).Return(nil)
	require.NoError(t, conv.LoadHistory(ctx))

	serverAdapter.EXPECT().ResetChat(ctx, "at-1").Return(nil)
	cache.EXPECT().Clear(ctx).Return(nil)

	require.NoError(t, conv.Reset(ctx))
	assert.Empty(t, conv.Messages())
	assert.Empty(t, conv.Properties())
}

func TestConversation_Reset_FailureLeavesStateUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conv, session, serverAdapter, cache := newTestConversation(t, ctrl)
	ctx := context.Background()

	session.EXPECT().EnsureValidCredential(ctx).Return("at-1", nil).Times(2)
	serverAdapter.EXPECT().GetChatHistory(ctx, "at-1").Return([]models.HistoryRecord{
		{UserMessage: "q", BotResponse: "a"},
	}, nil)
	cache.EXPECT().Replace(ctx, gomock.Any()).Return(nil)
	require.NoError(t, conv.LoadHistory(ctx))

	serverAdapter.EXPECT().ResetChat(ctx, "at-1").Return(errors.New("bad gateway"))

	require.Error(t, conv.Reset(ctx))
	assert.Len(t, conv.Messages(), 2)
}

// ── Cache ────────────────────────────────────────────────────────────────────

func TestConversation_PreloadCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conv, _, _, cache := newTestConversation(t, ctrl)
	ctx := context.Background()

	cached := []models.Message{
		{Content: "hi", Role: models.RoleUser},
		{Content: "hello", Role: models.RoleAssistant},
	}
	cache.EXPECT().GetAll(ctx).Return(cached, nil)

	conv.PreloadCache(ctx)
	assert.Equal(t, cached, conv.Messages())
}

func TestConversation_PreloadCache_FailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conv, _, _, cache := newTestConversation(t, ctrl)
	ctx := context.Background()

	cache.EXPECT().GetAll(ctx).Return(nil, errors.New("database is locked"))

	conv.PreloadCache(ctx)
	assert.Empty(t, conv.Messages())
}

func TestConversation_Messages_ReturnsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conv, _, _, cache := newTestConversation(t, ctrl)
	ctx := context.Background()

	cache.EXPECT().GetAll(ctx).Return([]models.Message{{Content: "hi", Role: models.RoleUser}}, nil)
	conv.PreloadCache(ctx)

	leaked := conv.Messages()
	leaked[0].Content = "mutated"

	assert.Equal(t, "hi", conv.Messages()[0].Content)
}

func mustWrap(t *testing.T, payload string) json.RawMessage {
	t.Helper()
	wrapped, err := json.Marshal(payload)
	require.NoError(t, err)
	return wrapped
}
