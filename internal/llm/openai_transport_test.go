package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"adaptive_tutor_backend/internal/schema"
)

func TestOpenAITransportSendsSchemaAndHistory(t *testing.T) {
	var got chatCompletionRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"ok\":true}"}}]}`))
	}))
	defer srv.Close()

	tr := NewOpenAITransport(srv.URL+"/", time.Second)
	body, err := tr.Generate(context.Background(), "sk-test", "gpt-x", &Request{
		Task:              "learning_path",
		Prompt:            "tạo lộ trình",
		SystemInstruction: "bạn là gia sư",
		Schema:            schema.Object(schema.Required("ok", schema.String())),
		Temperature:       0.7,
		History:           []Turn{{Role: RoleUser, Text: "xin chào"}, {Role: RoleModel, Text: "chào em"}},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if body != `{"ok":true}` {
		t.Errorf("body = %q", body)
	}
	if auth != "Bearer sk-test" {
		t.Errorf("Authorization = %q", auth)
	}
	if got.Model != "gpt-x" {
		t.Errorf("model = %q", got.Model)
	}
	roles := make([]string, len(got.Messages))
	for i, m := range got.Messages {
		roles[i] = m.Role
	}
	if strings.Join(roles, ",") != "system,user,assistant,user" {
		t.Errorf("roles = %v", roles)
	}
	if got.ResponseFormat == nil || got.ResponseFormat.Type != "json_schema" || got.ResponseFormat.JSONSchema.Name != "learning_path" {
		t.Errorf("response_format = %+v", got.ResponseFormat)
	}
	if got.Temperature == nil || *got.Temperature != 0.7 {
		t.Errorf("temperature = %v", got.Temperature)
	}
}

func TestOpenAITransportSurfacesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`quota exceeded`))
	}))
	defer srv.Close()

	_, err := NewOpenAITransport(srv.URL, time.Second).Generate(context.Background(), "k", "m", &Request{Prompt: "p"})
	if err == nil || err.Error() != "AI API error (status 429): quota exceeded" {
		t.Errorf("err = %v", err)
	}
}

func TestOpenAITransportNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := NewOpenAITransport(srv.URL, 0).Generate(context.Background(), "k", "m", &Request{Prompt: "p"})
	if err == nil || err.Error() != "AI returned no choices" {
		t.Errorf("err = %v", err)
	}
}

func TestOpenAITransportPlainTextHasNoResponseFormat(t *testing.T) {
	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&raw)
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"xin chào"}}]}`))
	}))
	defer srv.Close()

	body, err := NewOpenAITransport(srv.URL, 0).Generate(context.Background(), "k", "m", &Request{Prompt: "p"})
	if err != nil || body != "xin chào" {
		t.Fatalf("Generate = %q, %v", body, err)
	}
	if _, ok := raw["response_format"]; ok {
		t.Error("plain-text request carried response_format")
	}
}
