package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"symptomintake/internal/config"
)

func newTestServer(t *testing.T, status int, body string, seen *map[string]interface{}) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if seen != nil {
			_ = json.NewDecoder(r.Body).Decode(seen)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(url string) *config.AIConfig {
	return &config.AIConfig{APIKey: "test-key", BaseURL: url + "/v1", Model: "gpt-4.1-nano", TimeoutMS: 5000}
}

func TestOpenAIClientComplete(t *testing.T) {
	var seen map[string]interface{}
	srv := newTestServer(t, http.StatusOK, `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"created": 1,
		"model": "gpt-4.1-nano",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "[\"cough (dry)\"]"}, "finish_reason": "stop"}]
	}`, &seen)

	c := NewOpenAIClient(testConfig(srv.URL))
	out, err := c.Complete(context.Background(), Request{
		System:      "sys",
		User:        []string{"first", "second"},
		Temperature: 0.3,
		MaxTokens:   500,
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if out != `["cough (dry)"]` {
		t.Fatalf("unexpected content %q", out)
	}

	msgs, _ := seen["messages"].([]interface{})
	if len(msgs) != 3 {
		t.Fatalf("expected system + 2 user messages, got %d", len(msgs))
	}
	if seen["model"] != "gpt-4.1-nano" || seen["max_tokens"] != float64(500) {
		t.Fatalf("unexpected request body %v", seen)
	}
}

func TestOpenAIClientServerErrorIsTransient(t *testing.T) {
	srv := newTestServer(t, http.StatusBadGateway, `{"error": {"message": "upstream unavailable", "type": "server_error"}}`, nil)

	_, err := NewOpenAIClient(testConfig(srv.URL)).Complete(context.Background(), Request{User: []string{"hi"}, Temperature: 0.2})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !IsTransient(err) {
		t.Fatalf("expected 502 to be transient: %v", err)
	}
}

func TestOpenAIClientBadRequestIsNotTransient(t *testing.T) {
	srv := newTestServer(t, http.StatusBadRequest, `{"error": {"message": "unknown model", "type": "invalid_request_error"}}`, nil)

	_, err := NewOpenAIClient(testConfig(srv.URL)).Complete(context.Background(), Request{User: []string{"hi"}, Temperature: 0.2})
	if err == nil || IsTransient(err) {
		t.Fatalf("expected a non-transient error, got %v", err)
	}
}

func TestNewClientDisabledWithoutKey(t *testing.T) {
	c := NewClient(&config.AIConfig{}, DefaultRetryPolicy(nil))
	if _, err := c.Complete(context.Background(), Request{}); err != ErrDisabled {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}
