package openaicompat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestTransformRequest_ToolMessages(t *testing.T) {
	c := newClientImpl(Config{APIKey: "k", Model: "m", BaseURL: "http://x"})

	req := &Request{
		SystemInstruction: &Content{Parts: []Part{{Text: "system prompt"}}},
		Messages: []Content{
			{Role: roleUser, Parts: []Part{{Text: "hi"}}},
			{Role: roleAssistant, Parts: []Part{
				{FunctionCall: &FunctionCall{ID: "abc", Name: "a", Args: map[string]interface{}{"x": 1}}},
				{FunctionCall: &FunctionCall{Name: "b"}},
			}},
			{Role: roleUser, Parts: []Part{
				{FunctionResponse: &FunctionResponse{ID: "abc", Name: "a", Response: map[string]interface{}{"ok": true}}},
				{FunctionResponse: &FunctionResponse{Name: "b", Response: map[string]interface{}{"ok": false}}},
			}},
		},
		Tools: []Tool{{Name: "a"}, {Name: "b"}},
	}

	got := c.transformRequest(req)

	if len(got.Messages) != 5 {
		t.Fatalf("expected 5 messages (system, user, assistant, 2 tool), got %d", len(got.Messages))
	}
	if got.Messages[0].Role != roleSystem {
		t.Errorf("expected system message first, got %s", got.Messages[0].Role)
	}

	assistant := got.Messages[2]
	if len(assistant.ToolCalls) != 2 {
		t.Fatalf("expected 2 tool calls, got %d", len(assistant.ToolCalls))
	}
	if assistant.ToolCalls[0].ID != "abc" || assistant.ToolCalls[1].ID != "call_1" {
		t.Errorf("unexpected call ids: %s, %s", assistant.ToolCalls[0].ID, assistant.ToolCalls[1].ID)
	}

	for i, want := range []string{"abc", "call_1"} {
		msg := got.Messages[3+i]
		if msg.Role != roleTool {
			t.Errorf("message %d: expected tool role, got %s", 3+i, msg.Role)
		}
		if msg.ToolCallID != want {
			t.Errorf("message %d: expected tool_call_id %s, got %s", 3+i, want, msg.ToolCallID)
		}
	}
	if len(got.Tools) != 2 || got.Tools[0].Type != toolTypeFunction {
		t.Errorf("unexpected tools: %+v", got.Tools)
	}
}

func TestGenerateContent_MultipleToolCalls(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var req openAIRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Model != "test-model" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{
			"model": "test-model",
			"choices": [{
				"index": 0,
				"message": {
					"role": "assistant",
					"content": "",
					"tool_calls": [
						{"id": "c1", "type": "function", "function": {"name": "a", "arguments": "{\"x\":\"1\"}"}},
						{"id": "c2", "type": "function", "function": {"name": "b", "arguments": "not json"}}
					]
				},
				"finish_reason": "tool_calls"
			}],
			"usage": {"prompt_tokens": 3, "completion_tokens": 4, "total_tokens": 7}
		}`))
	}))
	defer ts.Close()

	client, err := New(Config{APIKey: "key", Model: "test-model", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &Request{
		Messages: []Content{{Role: roleUser, Parts: []Part{{Text: "hi"}}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Content.Parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(resp.Content.Parts))
	}
	first := resp.Content.Parts[0].FunctionCall
	if first.ID != "c1" || first.Name != "a" || first.Args["x"] != "1" {
		t.Errorf("unexpected first call: %+v", first)
	}
	second := resp.Content.Parts[1].FunctionCall
	if second.Name != "b" || len(second.Args) != 0 {
		t.Errorf("expected empty args for malformed arguments, got %+v", second)
	}
	if resp.FinishReason != "tool_calls" || resp.Usage.TotalTokens != 7 {
		t.Errorf("unexpected finish/usage: %s %+v", resp.FinishReason, resp.Usage)
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	}))
	defer ts.Close()

	client, _ := New(Config{APIKey: "key", BaseURL: ts.URL})
	_, err := client.GenerateContent(context.Background(), &Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("expected status code in error, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error without API key")
	}

	cfg = Config{APIKey: "k"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != DefaultModel || cfg.BaseURL != DefaultBaseURL || cfg.HTTPClient == nil {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}
