package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"adforge/internal/gateway"
)

// Runs the full pipeline against a scripted HTTP gateway rather than a fake
// Completer, exercising the real wire encoding end to end.
func TestRunAgainstHTTPGateway(t *testing.T) {
	var bodies []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(raw))
		w.Header().Set("Content-Type", "application/json")

		var req struct {
			Model string `json:"model"`
		}
		_ = json.Unmarshal(raw, &req)

		switch {
		case req.Model == "image-model":
			_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"","images":[{"image_url":{"url":"data:image/png;base64,AAAA"}}]}}]}`))
		case len(bodies) == 1:
			_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"A bold neon Sale flyer featuring 50% OFF in huge type."}}]}`))
		default:
			_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Half price on everything at Acme! #sale #tech"}}]}`))
		}
	}))
	t.Cleanup(srv.Close)

	gw := gateway.NewClient(gateway.Options{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Logger:  zerolog.New(io.Discard),
	})
	p := New(Options{
		Gateway:    gw,
		TextModel:  "text-model",
		ImageModel: "image-model",
		Logger:     zerolog.New(io.Discard),
	})

	res, err := p.Run(context.Background(), acmeRequest(), "en")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(bodies) != 3 {
		t.Fatalf("gateway calls = %d, want 3 (vision skipped without product image)", len(bodies))
	}
	if !strings.Contains(bodies[0], "50% OFF") {
		t.Error("composer request missing literal headline")
	}
	if !strings.Contains(bodies[0], "#8B5CF6") {
		t.Error("composer request missing brand color")
	}
	if !strings.Contains(bodies[1], `"modalities":["image","text"]`) {
		t.Errorf("image request missing modalities: %s", bodies[1])
	}
	if res.ImageURL != "data:image/png;base64,AAAA" {
		t.Errorf("ImageURL = %q", res.ImageURL)
	}
	if res.Caption == "" || res.Prompt == "" {
		t.Error("caption and prompt must be populated")
	}
}
