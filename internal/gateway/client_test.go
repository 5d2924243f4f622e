package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"adforge/internal/domain"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Options{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Logger:  zerolog.New(io.Discard),
	})
}

func TestChatCompletionMissingKey(t *testing.T) {
	client := NewClient(Options{Logger: zerolog.New(io.Discard)})
	_, err := client.ChatCompletion(context.Background(), ChatRequest{Model: "m"})
	if !errors.Is(err, domain.ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
}

func TestChatCompletionSuccess(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if body["model"] != "text-model" {
			t.Errorf("model = %v", body["model"])
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  hello  "}}]}`))
	})

	resp, err := client.ChatCompletion(context.Background(), ChatRequest{
		Model:    "text-model",
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("ChatCompletion returned error: %v", err)
	}
	if got := resp.Text(); got != "hello" {
		t.Fatalf("Text() = %q, want %q", got, "hello")
	}
}

func TestChatCompletionStatusMapping(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusTooManyRequests, domain.ErrRateLimited},
		{http.StatusPaymentRequired, domain.ErrQuotaExhausted},
		{http.StatusInternalServerError, domain.ErrUpstream},
		{http.StatusBadRequest, domain.ErrUpstream},
	}
	for _, tc := range cases {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte(`{"error":"upstream detail"}`))
		})
		_, err := client.ChatCompletion(context.Background(), ChatRequest{Model: "m"})
		if !errors.Is(err, tc.want) {
			t.Errorf("status %d: err = %v, want %v", tc.status, err, tc.want)
		}
	}
}

func TestChatCompletionTransportError(t *testing.T) {
	client := NewClient(Options{
		APIKey: "test-key",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		})},
		Logger: zerolog.New(io.Discard),
	})
	_, err := client.ChatCompletion(context.Background(), ChatRequest{Model: "m"})
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("err = %v, want ErrUpstream", err)
	}
}

func TestFirstImageURLNormalizesInlineData(t *testing.T) {
	resp := &ChatResponse{Choices: []responseChoice{{
		Message: responseMessage{Images: []responseImage{{
			B64JSON:  "aGVsbG8=",
			MimeType: "image/jpeg",
		}}},
	}}}
	if got, want := resp.FirstImageURL(), "data:image/jpeg;base64,aGVsbG8="; got != want {
		t.Fatalf("FirstImageURL() = %q, want %q", got, want)
	}
}

func TestFirstImageURLPrefersHostedURL(t *testing.T) {
	resp := &ChatResponse{Choices: []responseChoice{{
		Message: responseMessage{Images: []responseImage{{
			ImageURL: ImageURL{URL: "https://cdn.example.com/ad.png"},
		}}},
	}}}
	if got := resp.FirstImageURL(); got != "https://cdn.example.com/ad.png" {
		t.Fatalf("FirstImageURL() = %q", got)
	}
}

func TestMessageMarshalPlainAndParts(t *testing.T) {
	plain, err := json.Marshal(Message{Role: "user", Content: "hi"})
	if err != nil {
		t.Fatalf("marshal plain: %v", err)
	}
	if string(plain) != `{"role":"user","content":"hi"}` {
		t.Fatalf("plain = %s", plain)
	}

	parts, err := json.Marshal(Message{Role: "user", Parts: []ContentPart{
		TextPart("describe"),
		ImagePart("data:image/png;base64,AAAA"),
	}})
	if err != nil {
		t.Fatalf("marshal parts: %v", err)
	}
	var decoded struct {
		Content []ContentPart `json:"content"`
	}
	if err := json.Unmarshal(parts, &decoded); err != nil {
		t.Fatalf("unmarshal parts: %v", err)
	}
	if len(decoded.Content) != 2 || decoded.Content[1].ImageURL == nil {
		t.Fatalf("unexpected parts payload: %s", parts)
	}
}
