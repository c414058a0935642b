package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"cashback-advisor/config"
)

func TestConnect(t *testing.T) {
	srv := miniredis.RunT(t)
	ctx := context.Background()

	c, err := Connect(ctx, config.RedisConfig{Addr: srv.Addr(), Timeout: time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer Disconnect()

	again, err := Connect(ctx, config.RedisConfig{Addr: "unused:1"})
	if err != nil || again != c {
		t.Errorf("expected the shared client to be reused, got %v %v", again, err)
	}
}

func TestConnect_Unreachable(t *testing.T) {
	srv := miniredis.RunT(t)
	addr := srv.Addr()
	srv.Close()

	if _, err := Connect(context.Background(), config.RedisConfig{Addr: addr, Timeout: 200 * time.Millisecond}); err == nil {
		Disconnect()
		t.Fatal("expected error for closed server")
	}
}
