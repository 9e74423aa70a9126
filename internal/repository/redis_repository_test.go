package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"adaptive_tutor_backend/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, rdb
}

func TestCredentialRepositoryUsesFixedKey(t *testing.T) {
	mr, rdb := newTestRedis(t)
	ctx := context.Background()
	repo := NewCredentialRepository(rdb, "")

	if v, err := repo.Credential(ctx); err != nil || v != "" {
		t.Fatalf("empty store = %q, %v", v, err)
	}
	if err := repo.Save(ctx, "  AIza-abc  "); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got, err := mr.Get("user_gemini_api_key"); err != nil || got != "AIza-abc" {
		t.Errorf("stored under fixed key = %q, %v", got, err)
	}
	if mr.TTL("user_gemini_api_key") != 0 {
		t.Error("credential stored with a TTL")
	}
	if v, _ := repo.Credential(ctx); v != "AIza-abc" {
		t.Errorf("Credential = %q", v)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if mr.Exists("user_gemini_api_key") {
		t.Error("key still present after Clear")
	}
	if v, _ := repo.Credential(ctx); v != "" {
		t.Errorf("after Clear = %q", v)
	}
}

func TestCredentialRepositoryCustomKey(t *testing.T) {
	mr, rdb := newTestRedis(t)
	repo := NewCredentialRepository(rdb, "tenant_key")
	mr.Set("tenant_key", "k-1")

	if v, _ := repo.Credential(context.Background()); v != "k-1" {
		t.Errorf("Credential = %q", v)
	}
}

func TestCredentialRepositoryStoreDown(t *testing.T) {
	mr, rdb := newTestRedis(t)
	repo := NewCredentialRepository(rdb, "")
	mr.Close()

	if _, err := repo.Credential(context.Background()); err == nil || errors.Is(err, redis.Nil) {
		t.Errorf("err = %v, want connection error", err)
	}
}

func TestChatRepositoryCapsAndOrders(t *testing.T) {
	_, rdb := newTestRedis(t)
	ctx := context.Background()
	repo := NewChatRepository(rdb)

	for i := 0; i < MaxStoredTurns+10; i++ {
		if err := repo.Append(ctx, "p-1", model.ChatMessage{ID: fmt.Sprint(i), Role: model.ChatRoleUser, Text: fmt.Sprint(i)}); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}
	if n := rdb.LLen(ctx, chatKey("p-1")).Val(); n != MaxStoredTurns {
		t.Errorf("stored = %d, want %d", n, MaxStoredTurns)
	}

	recent, err := repo.Recent(ctx, "p-1", 3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	want := []string{"57", "58", "59"}
	if len(recent) != len(want) {
		t.Fatalf("recent = %d turns, want %d", len(recent), len(want))
	}
	for i, m := range recent {
		if m.Text != want[i] {
			t.Errorf("recent[%d] = %q, want %q", i, m.Text, want[i])
		}
	}

	all, _ := repo.Recent(ctx, "p-1", 100)
	if len(all) != MaxStoredTurns || all[0].Text != "10" || all[len(all)-1].Text != "59" {
		t.Errorf("window = %d turns, %q..%q, want 50 turns 10..59", len(all), all[0].Text, all[len(all)-1].Text)
	}
}

func TestChatRepositoryAppendPairKeepsOrder(t *testing.T) {
	_, rdb := newTestRedis(t)
	ctx := context.Background()
	repo := NewChatRepository(rdb)

	repo.Append(ctx, "p-1",
		model.ChatMessage{ID: "u", Role: model.ChatRoleUser, Text: "1/2 + 1/3 = ?"},
		model.ChatMessage{ID: "m", Role: model.ChatRoleModel, Text: "Quy đồng mẫu số."},
	)

	got, err := repo.Recent(ctx, "p-1", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "u" || got[1].ID != "m" {
		t.Errorf("turns = %+v", got)
	}
}

func TestChatRepositoryClearAndIsolation(t *testing.T) {
	_, rdb := newTestRedis(t)
	ctx := context.Background()
	repo := NewChatRepository(rdb)

	repo.Append(ctx, "p-1", model.ChatMessage{ID: "a", Text: "a"})
	repo.Append(ctx, "p-2", model.ChatMessage{ID: "b", Text: "b"})

	if err := repo.Clear(ctx, "p-1"); err != nil {
		t.Fatal(err)
	}
	if got, _ := repo.Recent(ctx, "p-1", 10); len(got) != 0 {
		t.Errorf("p-1 after Clear = %+v", got)
	}
	if got, _ := repo.Recent(ctx, "p-2", 10); len(got) != 1 {
		t.Errorf("p-2 = %+v", got)
	}
	if got, _ := repo.Recent(ctx, "p-2", 0); got != nil {
		t.Errorf("Recent(0) = %+v", got)
	}
}
