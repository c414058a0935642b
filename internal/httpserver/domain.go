package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"cashback-advisor/internal/account"
	accountHTTP "cashback-advisor/internal/account/delivery/http"
	accountRepo "cashback-advisor/internal/account/repository/redis"
	accountUC "cashback-advisor/internal/account/usecase"
	"cashback-advisor/internal/agent"
	"cashback-advisor/internal/agent/orchestrator"
	"cashback-advisor/internal/agent/tools"
	chatHTTP "cashback-advisor/internal/chat/delivery/http"
	"cashback-advisor/internal/conversation"
	"cashback-advisor/internal/conversation/modelclient"
	"cashback-advisor/internal/conversation/repository/memory"
	conversationRepo "cashback-advisor/internal/conversation/repository/redis"
)

// Session lock backends accepted by chat.session_lock.
const (
	SessionLockLocal = "local"
	SessionLockRedis = "redis"
)

// setupAccountDomain wires the account domain and registers its routes.
//
//  1. Repository
//  2. UseCase
//  3. HTTP Handler
//  4. Routes
func (srv HTTPServer) setupAccountDomain(ctx context.Context, api *gin.RouterGroup) account.UseCase {
	repo := accountRepo.New(srv.redis, srv.l)
	uc := accountUC.New(repo, srv.l)
	h := accountHTTP.New(srv.l, uc)

	// /api/accounts, /api/accounts/:id/savings, /api/transactions
	accountHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Account domain registered")
	return uc
}

// setupChatDomain wires the conversation engine on top of the account use case.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, accounts account.UseCase) error {
	// 1. Tools
	registry := agent.NewToolRegistry()
	tools.RegisterAll(registry, accounts)

	// 2. History + session lock
	history := conversationRepo.NewHistoryStore(srv.redis, srv.l, conversationRepo.HistoryOptions{
		Window: srv.chat.HistoryWindow,
		TTL:    srv.chat.HistoryTTL,
	})
	locker, err := srv.newSessionLocker()
	if err != nil {
		return err
	}

	// 3. Model client
	model := modelclient.New(srv.llm, registry, srv.l, modelclient.Options{
		Timeout:  srv.chat.ModelTimeout,
		Timezone: srv.chat.Timezone,
	})

	// 4. Engine
	engine := orchestrator.New(model, history, locker, registry, srv.l, orchestrator.Options{
		MaxToolRounds: srv.chat.MaxToolRounds,
		ToolTimeout:   srv.chat.ToolTimeout,
	})

	// 5. Routes: /api/chat, /api/chat/sessions/:id
	chatHTTP.RegisterRoutes(api, chatHTTP.New(srv.l, engine))

	srv.l.Infof(ctx, "Chat domain registered with %d tools (session lock: %s)", len(registry.List()), srv.sessionLockMode())
	return nil
}

func (srv HTTPServer) sessionLockMode() string {
	if srv.chat.SessionLock == "" {
		return SessionLockLocal
	}
	return srv.chat.SessionLock
}

func (srv HTTPServer) newSessionLocker() (conversation.SessionLocker, error) {
	switch srv.sessionLockMode() {
	case SessionLockLocal:
		return memory.NewSessionLocker(), nil
	case SessionLockRedis:
		return conversationRepo.NewSessionLocker(srv.redis, srv.l, srv.chat.LockTTL), nil
	default:
		return nil, fmt.Errorf("unknown chat.session_lock %q (want %s or %s)", srv.chat.SessionLock, SessionLockLocal, SessionLockRedis)
	}
}
