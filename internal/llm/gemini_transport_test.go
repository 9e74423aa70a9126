package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"adaptive_tutor_backend/internal/schema"

	"google.golang.org/genai"
)

func TestToGenaiSchema(t *testing.T) {
	node := schema.Object(
		schema.Required("title", schema.String().Describe("tên bài")),
		schema.Required("difficulty", schema.StringEnum("easy", "medium", "hard")),
		schema.Optional("options", schema.Nullable(schema.Array(schema.String()))),
		schema.Required("totalXp", schema.Number()),
	)

	got := toGenaiSchema(node)

	if got.Type != genai.TypeObject {
		t.Fatalf("type = %v", got.Type)
	}
	if !reflect.DeepEqual(got.PropertyOrdering, []string{"title", "difficulty", "options", "totalXp"}) {
		t.Errorf("ordering = %v", got.PropertyOrdering)
	}
	if !reflect.DeepEqual(got.Required, []string{"title", "difficulty", "totalXp"}) {
		t.Errorf("required = %v", got.Required)
	}
	if d := got.Properties["title"].Description; d != "tên bài" {
		t.Errorf("description = %q", d)
	}
	enum := got.Properties["difficulty"]
	if enum.Type != genai.TypeString || enum.Format != "enum" || !reflect.DeepEqual(enum.Enum, []string{"easy", "medium", "hard"}) {
		t.Errorf("enum = %+v", enum)
	}
	opts := got.Properties["options"]
	if opts.Type != genai.TypeArray || opts.Nullable == nil || !*opts.Nullable || opts.Items.Type != genai.TypeString {
		t.Errorf("options = %+v", opts)
	}
	if got.Properties["totalXp"].Type != genai.TypeNumber {
		t.Errorf("totalXp type = %v", got.Properties["totalXp"].Type)
	}
}

func TestBuildContentsKeepsHistoryOrder(t *testing.T) {
	contents := buildContents(&Request{
		Prompt:  "câu hỏi mới",
		History: []Turn{{Role: RoleUser, Text: "a"}, {Role: RoleModel, Text: "b"}},
	})
	if len(contents) != 3 {
		t.Fatalf("len = %d, want 3", len(contents))
	}
	wantRoles := []string{"user", "model", "user"}
	for i, c := range contents {
		if c.Role != wantRoles[i] {
			t.Errorf("contents[%d].Role = %q, want %q", i, c.Role, wantRoles[i])
		}
	}
	if contents[2].Parts[0].Text != "câu hỏi mới" {
		t.Errorf("last text = %q", contents[2].Parts[0].Text)
	}
}

func TestBuildGenerateConfig(t *testing.T) {
	plain := buildGenerateConfig(&Request{Temperature: 0.85})
	if plain.ResponseMIMEType != "" || plain.ResponseSchema != nil {
		t.Errorf("plain config carried a schema: %+v", plain)
	}
	if *plain.Temperature != 0.85 {
		t.Errorf("temperature = %v", *plain.Temperature)
	}

	structured := buildGenerateConfig(&Request{
		SystemInstruction: "gia sư",
		Schema:            schema.Object(schema.Required("x", schema.Integer())),
	})
	if structured.ResponseMIMEType != "application/json" || structured.ResponseSchema == nil {
		t.Errorf("structured config = %+v", structured)
	}
	if structured.SystemInstruction == nil || structured.SystemInstruction.Parts[0].Text != "gia sư" {
		t.Errorf("system instruction = %+v", structured.SystemInstruction)
	}
}

func TestGeminiTransportGenerate(t *testing.T) {
	var path, apiKey string
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		apiKey = r.Header.Get("x-goog-api-key")
		json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"ok\":true}"}]}}]}`))
	}))
	defer srv.Close()

	tr := NewGeminiTransport(srv.URL, srv.Client())
	got, err := tr.Generate(context.Background(), "AIza-test", "gemini-2.5-flash", &Request{
		Prompt: "p",
		Schema: schema.Object(schema.Required("ok", schema.String())),
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != `{"ok":true}` {
		t.Errorf("text = %q", got)
	}
	if !strings.HasSuffix(path, "models/gemini-2.5-flash:generateContent") {
		t.Errorf("path = %s", path)
	}
	if apiKey != "AIza-test" {
		t.Errorf("api key header = %q", apiKey)
	}
	if _, ok := body["generationConfig"]; !ok {
		t.Errorf("request body missing generationConfig: %v", body)
	}
}

func TestGeminiTransportUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"API key not valid. Please pass a valid API key.","status":"INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	_, err := NewGeminiTransport(srv.URL, srv.Client()).Generate(context.Background(), "bad", "m", &Request{Prompt: "p"})
	if err == nil || !strings.Contains(err.Error(), "API key not valid") {
		t.Errorf("err = %v", err)
	}
}

func TestSchemaRenderersAgreeOnRequiredOrder(t *testing.T) {
	node := schema.Object(
		schema.Required("title", schema.String()),
		schema.Optional("hint", schema.Nullable(schema.String())),
		schema.Required("difficulty", schema.StringEnum("easy", "hard")),
		schema.Required("answer", schema.String()),
	)

	want := []string{"title", "difficulty", "answer"}
	if got := toGenaiSchema(node).Required; !reflect.DeepEqual(got, want) {
		t.Errorf("gemini required = %v, want %v", got, want)
	}
	if got := node.JSONSchema()["required"]; !reflect.DeepEqual(got, want) {
		t.Errorf("json schema required = %v, want %v", got, want)
	}
}
