package redis

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"cashback-advisor/internal/conversation"
	"cashback-advisor/pkg/log"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	srv := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return srv, rdb
}

func TestHistoryStore_LoadMissing(t *testing.T) {
	_, rdb := newTestClient(t)
	store := NewHistoryStore(rdb, log.NewNop(), HistoryOptions{})

	h, err := store.Load(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h == nil || len(h) != 0 {
		t.Errorf("expected empty non-nil history, got %v", h)
	}
}

func TestHistoryStore_SaveLoadRoundTrip(t *testing.T) {
	srv, rdb := newTestClient(t)
	store := NewHistoryStore(rdb, log.NewNop(), HistoryOptions{})
	ctx := context.Background()

	h := conversation.History{
		conversation.UserTurn("can I buy gas?"),
		conversation.ModelCallTurn([]conversation.ToolCall{{ID: "c1", Name: "check_affordability", Args: map[string]interface{}{"amount": 50.0}}}),
		conversation.ToolResultTurn([]conversation.ToolResult{{CallID: "c1", Name: "check_affordability", Result: map[string]interface{}{"can_afford": true}}}),
		conversation.ModelTextTurn("Yes, use Card2."),
	}
	if err := store.Save(ctx, "s1", h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ttl := srv.TTL("chat:history:s1"); ttl != time.Hour {
		t.Errorf("expected 1h TTL, got %v", ttl)
	}

	got, err := store.Load(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 turns, got %d", len(got))
	}
	if got[1].ToolCalls[0].ID != "c1" || got[1].ToolCalls[0].Args["amount"] != 50.0 {
		t.Errorf("tool call not preserved: %+v", got[1])
	}
	if got[2].Role != conversation.RoleToolResult || got[2].ToolResults[0].Result["can_afford"] != true {
		t.Errorf("tool result not preserved: %+v", got[2])
	}
}

func TestHistoryStore_SaveKeepsWindow(t *testing.T) {
	_, rdb := newTestClient(t)
	store := NewHistoryStore(rdb, log.NewNop(), HistoryOptions{})
	ctx := context.Background()

	var h conversation.History
	for i := 0; i < 15; i++ {
		h = append(h, conversation.UserTurn(fmt.Sprintf("q%d", i)), conversation.ModelTextTurn(fmt.Sprintf("a%d", i)))
	}
	if err := store.Save(ctx, "s1", h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := store.Load(ctx, "s1")
	if len(got) != conversation.DefaultWindow {
		t.Fatalf("expected %d turns, got %d", conversation.DefaultWindow, len(got))
	}
	if got[0].Text != "q5" || got[len(got)-1].Text != "a14" {
		t.Errorf("expected oldest turns evicted, got first=%q last=%q", got[0].Text, got[len(got)-1].Text)
	}
}

func TestHistoryStore_CorruptPayload(t *testing.T) {
	srv, rdb := newTestClient(t)
	store := NewHistoryStore(rdb, log.NewNop(), HistoryOptions{})
	srv.Set("chat:history:s1", "{not json")

	h, err := store.Load(context.Background(), "s1")
	if err != nil {
		t.Fatalf("corrupt history must not fail: %v", err)
	}
	if len(h) != 0 {
		t.Errorf("expected empty history, got %d turns", len(h))
	}
}

func TestHistoryStore_ConnectionError(t *testing.T) {
	srv, rdb := newTestClient(t)
	store := NewHistoryStore(rdb, log.NewNop(), HistoryOptions{})
	srv.Close()

	if _, err := store.Load(context.Background(), "s1"); err == nil {
		t.Fatal("expected error when the store is unreachable")
	}
}

func TestHistoryStore_Clear(t *testing.T) {
	srv, rdb := newTestClient(t)
	store := NewHistoryStore(rdb, log.NewNop(), HistoryOptions{})
	ctx := context.Background()

	_ = store.Save(ctx, "s1", conversation.History{conversation.UserTurn("hi")})
	if err := store.Clear(ctx, "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srv.Exists("chat:history:s1") {
		t.Error("expected key to be deleted")
	}
	if err := store.Clear(ctx, "never-existed"); err != nil {
		t.Errorf("clearing an unknown session should succeed: %v", err)
	}
}

func TestSessionLocker_SerializesAndReleases(t *testing.T) {
	srv, rdb := newTestClient(t)
	locker := NewSessionLocker(rdb, log.NewNop(), time.Minute)

	unlock, err := locker.Lock(context.Background(), "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !srv.Exists("chat:lock:s1") {
		t.Fatal("expected lock key")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := locker.Lock(ctx, "s1"); !errors.Is(err, conversation.ErrLockTimeout) {
		t.Fatalf("expected ErrLockTimeout, got %v", err)
	}

	unlock()
	if srv.Exists("chat:lock:s1") {
		t.Fatal("expected lock key to be released")
	}

	again, err := locker.Lock(context.Background(), "s1")
	if err != nil {
		t.Fatalf("expected lock after release: %v", err)
	}
	again()
}

func TestSessionLocker_DoesNotReleaseForeignLock(t *testing.T) {
	srv, rdb := newTestClient(t)
	locker := NewSessionLocker(rdb, log.NewNop(), time.Minute)

	unlock, err := locker.Lock(context.Background(), "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Lease expired and another replica took over.
	srv.Set("chat:lock:s1", "someone-else")
	unlock()

	if v, _ := srv.Get("chat:lock:s1"); v != "someone-else" {
		t.Errorf("foreign lock was released, value now %q", v)
	}
}

func TestSessionLocker_WaitsForRelease(t *testing.T) {
	_, rdb := newTestClient(t)
	locker := NewSessionLocker(rdb, log.NewNop(), time.Minute)

	unlock, _ := locker.Lock(context.Background(), "s1")
	go func() {
		time.Sleep(30 * time.Millisecond)
		unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	next, err := locker.Lock(ctx, "s1")
	if err != nil {
		t.Fatalf("expected to acquire after release: %v", err)
	}
	next()
}

func TestSessionLocker_RenewsLeaseWhileHeld(t *testing.T) {
	srv, rdb := newTestClient(t)
	locker := NewSessionLocker(rdb, log.NewNop(), 2*time.Minute).(*sessionLocker)
	locker.refreshEvery = 5 * time.Millisecond

	unlock, err := locker.Lock(context.Background(), "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Hold the lock well past its ttl; each renewal resets the lease to 2m.
	for i := 0; i < 3; i++ {
		srv.FastForward(90 * time.Second)
		time.Sleep(50 * time.Millisecond)
	}
	if !srv.Exists("chat:lock:s1") {
		t.Fatal("lease expired while the lock was held")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := locker.Lock(ctx, "s1"); !errors.Is(err, conversation.ErrLockTimeout) {
		t.Fatalf("expected ErrLockTimeout while held, got %v", err)
	}

	unlock()
	unlock()
	if srv.Exists("chat:lock:s1") {
		t.Fatal("expected lock key to be released")
	}

	// Renewal stops after unlock: a fresh holder's lease is left alone.
	srv.Set("chat:lock:s1", "other")
	srv.SetTTL("chat:lock:s1", time.Second)
	time.Sleep(30 * time.Millisecond)
	if ttl := srv.TTL("chat:lock:s1"); ttl != time.Second {
		t.Errorf("expected foreign lease untouched, ttl %s", ttl)
	}
}

func TestSessionLocker_CrashedHolderExpires(t *testing.T) {
	srv, rdb := newTestClient(t)
	locker := NewSessionLocker(rdb, log.NewNop(), 2*time.Minute)

	// A holder on another replica that died without releasing.
	srv.Set("chat:lock:s1", "crashed")
	srv.SetTTL("chat:lock:s1", 2*time.Minute)
	srv.FastForward(2*time.Minute + time.Second)

	unlock, err := locker.Lock(context.Background(), "s1")
	if err != nil {
		t.Fatalf("expected to take over an expired lease: %v", err)
	}
	unlock()
}
