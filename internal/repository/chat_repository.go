package repository

import (
	"adaptive_tutor_backend/internal/model"
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// MaxStoredTurns caps the per-profile chat list.
const MaxStoredTurns = 50

// ChatRepository stores tutor chat turns newest first in a redis list.
type ChatRepository struct {
	Redis *redis.Client
}

func NewChatRepository(rdb *redis.Client) *ChatRepository {
	return &ChatRepository{Redis: rdb}
}

func chatKey(profileID string) string {
	return fmt.Sprintf("tutor:chat:%s", profileID)
}

func (r *ChatRepository) Append(ctx context.Context, profileID string, msgs ...model.ChatMessage) error {
	if len(msgs) == 0 {
		return nil
	}
	values := make([]interface{}, 0, len(msgs))
	for _, m := range msgs {
		data, err := json.Marshal(m)
		if err != nil {
			return err
		}
		values = append(values, data)
	}

	key := chatKey(profileID)
	pipe := r.Redis.TxPipeline()
	pipe.LPush(ctx, key, values...)
	pipe.LTrim(ctx, key, 0, MaxStoredTurns-1)
	_, err := pipe.Exec(ctx)
	return err
}

// Recent returns up to n turns in chronological order.
func (r *ChatRepository) Recent(ctx context.Context, profileID string, n int) ([]model.ChatMessage, error) {
	if n <= 0 {
		return nil, nil
	}
	raw, err := r.Redis.LRange(ctx, chatKey(profileID), 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}
	msgs := make([]model.ChatMessage, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		var m model.ChatMessage
		if err := json.Unmarshal([]byte(raw[i]), &m); err != nil {
			continue
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

func (r *ChatRepository) Clear(ctx context.Context, profileID string) error {
	return r.Redis.Del(ctx, chatKey(profileID)).Err()
}
