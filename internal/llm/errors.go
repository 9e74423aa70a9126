package llm

import (
	"errors"
	"fmt"
)

// MissingCredentialMessage is surfaced to students when no API key is configured.
const MissingCredentialMessage = "Vui lòng nhập API Key trong phần Cài đặt để sử dụng tính năng này."

// MissingCredentialError means no credential is configured. No model is
// attempted when it is returned.
type MissingCredentialError struct {
	Key string
}

func (e *MissingCredentialError) Error() string {
	return MissingCredentialMessage
}

type AttemptReason string

const (
	ReasonTransport AttemptReason = "transport"
	ReasonEmpty     AttemptReason = "empty_response"
	ReasonMalformed AttemptReason = "malformed_json"
	ReasonRejected  AttemptReason = "schema_rejected"
)

// ModelAttemptError is the failure of a single model. The client recovers from
// it by moving to the next model; callers only ever see it wrapped in a
// GenerationError.
type ModelAttemptError struct {
	Model  string
	Reason AttemptReason
	Err    error
}

// Error returns the upstream text unchanged.
func (e *ModelAttemptError) Error() string {
	if e.Err == nil {
		return string(e.Reason)
	}
	return e.Err.Error()
}

func (e *ModelAttemptError) Unwrap() error { return e.Err }

// GenerationError is returned once every configured model has failed. Its
// message is the literal message of the last attempt.
type GenerationError struct {
	Attempts []*ModelAttemptError
}

func (e *GenerationError) Error() string {
	last := e.Last()
	if last == nil {
		return "no generation model configured"
	}
	return last.Error()
}

func (e *GenerationError) Last() *ModelAttemptError {
	if len(e.Attempts) == 0 {
		return nil
	}
	return e.Attempts[len(e.Attempts)-1]
}

func (e *GenerationError) Unwrap() error {
	if last := e.Last(); last != nil {
		return last
	}
	return nil
}

// IsMissingCredential reports whether err carries a MissingCredentialError.
func IsMissingCredential(err error) bool {
	var mc *MissingCredentialError
	return errors.As(err, &mc)
}

func emptyResponseError(model string) error {
	return fmt.Errorf("No data returned from model %s", model)
}
