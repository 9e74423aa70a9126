package llm

import (
	"context"
	"net/http"

	"adaptive_tutor_backend/internal/schema"

	"google.golang.org/genai"
)

// GeminiTransport calls the Gemini API through the Google GenAI SDK. A client
// is built per call because the credential is read fresh for every request.
type GeminiTransport struct {
	// BaseURL overrides the API endpoint; empty uses the SDK default.
	BaseURL    string
	HTTPClient *http.Client
}

func NewGeminiTransport(baseURL string, httpClient *http.Client) *GeminiTransport {
	return &GeminiTransport{BaseURL: baseURL, HTTPClient: httpClient}
}

func (t *GeminiTransport) Generate(ctx context.Context, credential, model string, req *Request) (string, error) {
	cc := &genai.ClientConfig{
		APIKey:     credential,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: t.HTTPClient,
	}
	if t.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: t.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return "", err
	}

	resp, err := client.Models.GenerateContent(ctx, model, buildContents(req), buildGenerateConfig(req))
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

func buildGenerateConfig(req *Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if req.Schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = toGenaiSchema(req.Schema)
	}
	return cfg
}

func buildContents(req *Request) []*genai.Content {
	contents := make([]*genai.Content, 0, len(req.History)+1)
	for _, turn := range req.History {
		var role genai.Role = genai.RoleUser
		if turn.Role == RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	return append(contents, genai.NewContentFromText(req.Prompt, genai.RoleUser))
}

func toGenaiSchema(n *schema.Node) *genai.Schema {
	inner, nullable := n.Unwrap()
	if inner == nil {
		return nil
	}

	out := &genai.Schema{Description: inner.Description}
	if out.Description == "" {
		out.Description = n.Description
	}
	if nullable {
		out.Nullable = genai.Ptr(true)
	}

	switch inner.Kind {
	case schema.KindObject:
		out.Type = genai.TypeObject
		out.Properties = make(map[string]*genai.Schema, len(inner.Fields))
		for _, f := range inner.Fields {
			out.Properties[f.Name] = toGenaiSchema(f.Node)
		}
		out.PropertyOrdering = inner.FieldNames()
		out.Required = inner.RequiredNames()
	case schema.KindArray:
		out.Type = genai.TypeArray
		if inner.Items != nil {
			out.Items = toGenaiSchema(inner.Items)
		}
	case schema.KindEnum:
		out.Type = genai.TypeString
		out.Format = "enum"
		out.Enum = append([]string(nil), inner.Enum...)
	case schema.KindString:
		out.Type = genai.TypeString
	case schema.KindNumber:
		out.Type = genai.TypeNumber
	case schema.KindInteger:
		out.Type = genai.TypeInteger
	}
	return out
}
