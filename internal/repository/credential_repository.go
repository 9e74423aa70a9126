package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/go-redis/redis/v8"
)

const DefaultCredentialKey = "user_gemini_api_key"

// CredentialRepository keeps the generation API key under one fixed redis key.
type CredentialRepository struct {
	Redis *redis.Client
	Key   string
}

func NewCredentialRepository(rdb *redis.Client, key string) *CredentialRepository {
	if key == "" {
		key = DefaultCredentialKey
	}
	return &CredentialRepository{Redis: rdb, Key: key}
}

// Credential returns "" with a nil error when no key is stored.
func (r *CredentialRepository) Credential(ctx context.Context) (string, error) {
	v, err := r.Redis.Get(ctx, r.Key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(v), nil
}

func (r *CredentialRepository) Save(ctx context.Context, credential string) error {
	return r.Redis.Set(ctx, r.Key, strings.TrimSpace(credential), 0).Err()
}

func (r *CredentialRepository) Clear(ctx context.Context) error {
	return r.Redis.Del(ctx, r.Key).Err()
}
