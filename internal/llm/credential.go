package llm

import (
	"context"
	"strings"
)

// CredentialSource yields the opaque API credential. An empty string with a
// nil error means no credential is configured.
type CredentialSource interface {
	Credential(ctx context.Context) (string, error)
}

// StaticCredential serves a fixed value, typically the configured api_key.
type StaticCredential string

func (s StaticCredential) Credential(context.Context) (string, error) {
	return strings.TrimSpace(string(s)), nil
}

// CredentialChain returns the first non-empty credential of its sources.
// A source error is returned only if no later source yields a value.
type CredentialChain []CredentialSource

func (c CredentialChain) Credential(ctx context.Context) (string, error) {
	var firstErr error
	for _, src := range c {
		if src == nil {
			continue
		}
		v, err := src.Credential(ctx)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if v = strings.TrimSpace(v); v != "" {
			return v, nil
		}
	}
	return "", firstErr
}
