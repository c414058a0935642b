package modelclient

import (
	"context"
	"time"

	"cashback-advisor/internal/conversation"
	"cashback-advisor/pkg/llmprovider"
	"cashback-advisor/pkg/log"
)

// Generator produces a model response. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// ToolCatalog lists the tool declarations sent with every request.
type ToolCatalog interface {
	Definitions() []llmprovider.Tool
}

// Options configures the client. Zero values pick the defaults.
type Options struct {
	Timeout      time.Duration
	Timezone     string
	SystemPrompt string
	Temperature  float64
}

type implModelClient struct {
	gen   Generator
	tools ToolCatalog
	l     log.Logger
	opt   Options
	now   func() time.Time
}

var _ conversation.ModelClient = (*implModelClient)(nil)

// New creates a conversation.ModelClient backed by gen.
func New(gen Generator, tools ToolCatalog, l log.Logger, opt Options) conversation.ModelClient {
	if opt.Timeout <= 0 {
		opt.Timeout = DefaultTimeout
	}
	if opt.Timezone == "" {
		opt.Timezone = DefaultTimezone
	}
	if opt.SystemPrompt == "" {
		opt.SystemPrompt = SystemPromptAdvisor
	}
	return &implModelClient{
		gen:   gen,
		tools: tools,
		l:     l,
		opt:   opt,
		now:   time.Now,
	}
}
