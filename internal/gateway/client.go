package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"adforge/internal/domain"
)

const defaultBaseURL = "https://ai.gateway.lovable.dev/v1"

// Options controls how the gateway client is configured.
type Options struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Client is a thin facade over an OpenAI-compatible chat-completions gateway.
// It performs a single attempt per call and normalizes upstream failures into
// the domain error taxonomy; callers decide what is fatal.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient constructs a gateway client with sane defaults. A nil HTTP client
// is replaced with one carrying a generous timeout, since image generation
// calls routinely take tens of seconds.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:     strings.TrimSpace(opts.APIKey),
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     opts.Logger,
	}
}

// ContentPart is one element of a multimodal message body.
type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

// ImageURL wraps an image reference, hosted or data URI.
type ImageURL struct {
	URL string `json:"url"`
}

// Message is a single chat message. Content holds plain text; Parts holds
// multimodal content. Exactly one of the two should be set.
type Message struct {
	Role    string
	Content string
	Parts   []ContentPart
}

// MarshalJSON emits either the plain-string or the parts form of content,
// matching what the gateway accepts.
func (m Message) MarshalJSON() ([]byte, error) {
	if len(m.Parts) > 0 {
		return json.Marshal(struct {
			Role    string        `json:"role"`
			Content []ContentPart `json:"content"`
		}{Role: m.Role, Content: m.Parts})
	}
	return json.Marshal(struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}{Role: m.Role, Content: m.Content})
}

// TextPart builds a text content part.
func TextPart(text string) ContentPart {
	return ContentPart{Type: "text", Text: text}
}

// ImagePart builds an image_url content part.
func ImagePart(url string) ContentPart {
	return ContentPart{Type: "image_url", ImageURL: &ImageURL{URL: url}}
}

// ChatRequest is the wire request for a chat completion.
type ChatRequest struct {
	Model      string    `json:"model"`
	Messages   []Message `json:"messages"`
	Modalities []string  `json:"modalities,omitempty"`
}

type responseImage struct {
	ImageURL ImageURL `json:"image_url"`
	B64JSON  string   `json:"b64_json"`
	MimeType string   `json:"mime_type"`
}

type responseMessage struct {
	Content string          `json:"content"`
	Images  []responseImage `json:"images"`
}

type responseChoice struct {
	Message responseMessage `json:"message"`
}

// ChatResponse is the decoded gateway reply.
type ChatResponse struct {
	Choices []responseChoice `json:"choices"`
}

// Text returns the first non-empty message content, trimmed.
func (r *ChatResponse) Text() string {
	for _, choice := range r.Choices {
		if text := strings.TrimSpace(choice.Message.Content); text != "" {
			return text
		}
	}
	return ""
}

// FirstImageURL returns the first image reference in the reply normalized to a
// single URL: hosted URLs and data URIs pass through, inline base64 payloads
// are wrapped into a data URI using the declared mime type. Returns "" when
// the reply carries no image in either form.
func (r *ChatResponse) FirstImageURL() string {
	for _, choice := range r.Choices {
		for _, img := range choice.Message.Images {
			if url := strings.TrimSpace(img.ImageURL.URL); url != "" {
				return url
			}
			if b64 := strings.TrimSpace(img.B64JSON); b64 != "" {
				mime := strings.TrimSpace(img.MimeType)
				if mime == "" {
					mime = "image/png"
				}
				return fmt.Sprintf("data:%s;base64,%s", mime, b64)
			}
		}
	}
	return ""
}

// Completer is the gateway contract consumed by the pipeline and generators.
type Completer interface {
	ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

// ChatCompletion performs one chat-completions call. No retries are attempted;
// a failed call fails the calling step immediately.
func (c *Client) ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if c.apiKey == "" {
		return nil, domain.ErrNotConfigured
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	endpoint := c.baseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.statusError(resp)
	}

	var out ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrUpstream, err)
	}
	return &out, nil
}

// statusError classifies a non-2xx response. The upstream body is logged
// server-side and never surfaced to callers verbatim.
func (c *Client) statusError(resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	c.logger.Error().
		Int("status", resp.StatusCode).
		Str("body", strings.TrimSpace(string(snippet))).
		Msg("gateway: upstream error")

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return domain.ErrRateLimited
	case http.StatusPaymentRequired:
		return domain.ErrQuotaExhausted
	default:
		return fmt.Errorf("%w: status %d", domain.ErrUpstream, resp.StatusCode)
	}
}

var _ Completer = (*Client)(nil)

// NewTextResponse builds a response carrying only text content. Useful for
// fake Completer implementations in consumer tests.
func NewTextResponse(text string) *ChatResponse {
	return &ChatResponse{Choices: []responseChoice{{Message: responseMessage{Content: text}}}}
}

// NewImageResponse builds a response carrying a single image reference.
func NewImageResponse(url string) *ChatResponse {
	return &ChatResponse{Choices: []responseChoice{{
		Message: responseMessage{Images: []responseImage{{ImageURL: ImageURL{URL: url}}}},
	}}}
}
