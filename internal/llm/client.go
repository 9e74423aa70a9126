package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"adaptive_tutor_backend/pkg/logger"
	"adaptive_tutor_backend/pkg/monitoring"
	"adaptive_tutor_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// DefaultModels is the fallback order used when none is configured:
// fastest first, most capable last.
var DefaultModels = []string{
	"gemini-3-flash-preview",
	"gemini-3-pro-preview",
	"gemini-2.5-flash",
}

// Transport performs exactly one generation call against one model.
type Transport interface {
	Generate(ctx context.Context, credential, model string, req *Request) (string, error)
}

type Config struct {
	Models      []string
	Credentials CredentialSource
	Transport   Transport
	Logger      *zap.Logger
	// CredentialKey is reported in MissingCredentialError.
	CredentialKey string
}

// GenerationClient runs a request against an ordered model list, moving to the
// next model on any failure. Models are tried once each, strictly in order,
// with no retries and no parallel attempts.
type GenerationClient struct {
	models        []string
	credentials   CredentialSource
	transport     Transport
	log           *zap.Logger
	credentialKey string
}

func NewGenerationClient(cfg Config) *GenerationClient {
	models := make([]string, 0, len(cfg.Models))
	for _, m := range cfg.Models {
		if m = strings.TrimSpace(m); m != "" {
			models = append(models, m)
		}
	}
	if len(models) == 0 {
		models = append(models, DefaultModels...)
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Log
	}

	return &GenerationClient{
		models:        models,
		credentials:   cfg.Credentials,
		transport:     cfg.Transport,
		log:           log.With(zap.String("service", "GenerationClient")),
		credentialKey: cfg.CredentialKey,
	}
}

// Models returns a copy of the fallback order.
func (c *GenerationClient) Models() []string {
	return append([]string(nil), c.models...)
}

// GenerateJSON decodes the first successful structured response into out,
// which must be a non-nil pointer. out is left untouched on failure. It
// returns the model that produced the result.
func (c *GenerationClient) GenerateJSON(ctx context.Context, req *Request, out any) (string, error) {
	target := reflect.ValueOf(out)
	if !target.IsValid() || target.Kind() != reflect.Pointer || target.IsNil() {
		return "", fmt.Errorf("llm: GenerateJSON needs a non-nil pointer, got %T", out)
	}

	var model string
	err := c.run(ctx, req, func(m, body string) *ModelAttemptError {
		fresh := reflect.New(target.Elem().Type())
		if err := json.Unmarshal([]byte(cleanJSONResponse(body)), fresh.Interface()); err != nil {
			return &ModelAttemptError{Model: m, Reason: ReasonMalformed, Err: err}
		}
		if v, ok := fresh.Interface().(interface{ Validate() error }); ok {
			if err := v.Validate(); err != nil {
				return &ModelAttemptError{Model: m, Reason: ReasonRejected, Err: err}
			}
		}
		target.Elem().Set(fresh.Elem())
		model = m
		return nil
	})
	return model, err
}

// GenerateText returns the first non-empty plain-text response.
func (c *GenerationClient) GenerateText(ctx context.Context, req *Request) (string, string, error) {
	var text, model string
	err := c.run(ctx, req, func(m, body string) *ModelAttemptError {
		text, model = strings.TrimSpace(body), m
		return nil
	})
	return text, model, err
}

type acceptFunc func(model, body string) *ModelAttemptError

func (c *GenerationClient) run(ctx context.Context, req *Request, accept acceptFunc) error {
	ctx, span := tracing.Tracer.Start(ctx, "generation."+taskName(req))
	defer span.End()

	credential := c.readCredential(ctx)
	if credential == "" {
		c.log.Warn("generation skipped: no credential configured", zap.String("task", taskName(req)))
		monitoring.GenerationCalls.WithLabelValues(taskName(req), "missing_credential").Inc()
		span.SetStatus(codes.Error, "missing credential")
		return &MissingCredentialError{Key: c.credentialKey}
	}
	if c.transport == nil {
		return errors.New("llm: no transport configured")
	}

	attempts := make([]*ModelAttemptError, 0, len(c.models))
	for i, model := range c.models {
		attemptErr := c.attempt(ctx, i+1, credential, model, req, accept)
		if attemptErr == nil {
			monitoring.GenerationCalls.WithLabelValues(taskName(req), "success").Inc()
			span.SetAttributes(attribute.String("generation.model", model))
			return nil
		}
		attempts = append(attempts, attemptErr)
	}

	genErr := &GenerationError{Attempts: attempts}
	c.log.Error("all generation models failed",
		zap.String("task", taskName(req)),
		zap.Int("attempts", len(attempts)),
		zap.String("error", genErr.Error()),
	)
	monitoring.GenerationCalls.WithLabelValues(taskName(req), "exhausted").Inc()
	span.SetStatus(codes.Error, genErr.Error())
	return genErr
}

func (c *GenerationClient) attempt(ctx context.Context, n int, credential, model string, req *Request, accept acceptFunc) *ModelAttemptError {
	ctx, span := tracing.Tracer.Start(ctx, "generation.attempt")
	span.SetAttributes(attribute.String("generation.model", model), attribute.Int("generation.attempt", n))
	defer span.End()

	c.log.Info("trying model", zap.String("model", model), zap.Int("attempt", n), zap.String("task", taskName(req)))
	start := time.Now()

	attemptErr := c.call(ctx, credential, model, req, accept)

	monitoring.GenerationAttemptDuration.WithLabelValues(model).Observe(time.Since(start).Seconds())
	if attemptErr != nil {
		monitoring.GenerationAttempts.WithLabelValues(model, string(attemptErr.Reason)).Inc()
		span.SetStatus(codes.Error, attemptErr.Error())
		c.log.Warn("model failed",
			zap.String("model", model),
			zap.Int("attempt", n),
			zap.String("outcome", string(attemptErr.Reason)),
			zap.String("error", attemptErr.Error()),
		)
		return attemptErr
	}

	monitoring.GenerationAttempts.WithLabelValues(model, "success").Inc()
	c.log.Info("model succeeded", zap.String("model", model), zap.Int("attempt", n), zap.String("outcome", "success"))
	return nil
}

func (c *GenerationClient) call(ctx context.Context, credential, model string, req *Request, accept acceptFunc) *ModelAttemptError {
	body, err := c.transport.Generate(ctx, credential, model, req)
	if err != nil {
		return &ModelAttemptError{Model: model, Reason: ReasonTransport, Err: err}
	}
	if strings.TrimSpace(body) == "" {
		return &ModelAttemptError{Model: model, Reason: ReasonEmpty, Err: emptyResponseError(model)}
	}
	return accept(model, body)
}

// readCredential reads the credential once per call. A failing store is
// treated the same as an absent key.
func (c *GenerationClient) readCredential(ctx context.Context) string {
	if c.credentials == nil {
		return ""
	}
	v, err := c.credentials.Credential(ctx)
	if err != nil {
		c.log.Warn("credential lookup failed", zap.Error(err))
		return ""
	}
	return strings.TrimSpace(v)
}

func taskName(req *Request) string {
	if req == nil || req.Task == "" {
		return "generic"
	}
	return req.Task
}

// cleanJSONResponse strips a markdown code fence around a JSON body.
func cleanJSONResponse(response string) string {
	cleaned := strings.TrimSpace(response)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimSuffix(cleaned, "```")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
	}
	return strings.TrimSpace(cleaned)
}
