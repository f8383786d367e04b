package service

import (
	"github.com/propchat/propchat-client/internal/adapter"
	"github.com/propchat/propchat-client/internal/logger"
	"github.com/propchat/propchat-client/internal/store"
)

type Services struct {
	Session      SessionService
	Licence      LicenceService
	Conversation ConversationService
}

func NewServices(storages *store.Storages, serverAdapter adapter.ServerAdapter, log *logger.Logger) *Services {
	tokens := NewTokenStore(storages.KV)
	sessionSvc := NewSessionService(tokens, serverAdapter, log)

	return &Services{
		Session:      sessionSvc,
		Licence:      NewLicenceService(sessionSvc, serverAdapter, storages.KV, log),
		Conversation: NewConversationService(sessionSvc, serverAdapter, storages.HistoryCache, log),
	}
}
