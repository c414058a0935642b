package log_test

import (
	"context"
	"testing"

	"cashback-advisor/pkg/log"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name string
		cfg  log.ZapConfig
	}{
		{"console development", log.ZapConfig{Level: "debug", Mode: "development", Encoding: "console", ColorEnabled: true}},
		{"json production", log.ZapConfig{Level: "info", Mode: "production", Encoding: "json"}},
		{"invalid level falls back", log.ZapConfig{Level: "loud", Mode: "development", Encoding: "console"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := log.Init(tt.cfg)
			if l == nil {
				t.Fatal("expected logger")
			}
			ctx := log.WithSessionID(log.WithRequestID(context.Background(), "req-1"), "default")
			l.Infof(ctx, "hello %s", "world")
			l.Warn(ctx, "warned")
		})
	}
}

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	if got := log.RequestIDFromContext(ctx); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}

	ctx = log.WithRequestID(ctx, "abc")
	ctx = log.WithSessionID(ctx, "s1")
	if got := log.RequestIDFromContext(ctx); got != "abc" {
		t.Errorf("expected abc, got %q", got)
	}
	if got := log.SessionIDFromContext(ctx); got != "s1" {
		t.Errorf("expected s1, got %q", got)
	}
}
