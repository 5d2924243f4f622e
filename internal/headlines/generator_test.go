package headlines

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"adforge/internal/domain"
	"adforge/internal/gateway"
)

type fakeGateway struct {
	text string
	err  error
}

func (f fakeGateway) ChatCompletion(ctx context.Context, req gateway.ChatRequest) (*gateway.ChatResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return gateway.NewTextResponse(f.text), nil
}

func testRequest() domain.HeadlineRequest {
	return domain.HeadlineRequest{
		BrandName:      "Acme",
		Industry:       "Tech",
		Description:    "Smart gadgets",
		TargetAudience: "Professionals",
	}
}

func generate(t *testing.T, gw gateway.Completer) []domain.Headline {
	t.Helper()
	items, err := NewGenerator(gw, "text-model", zerolog.New(io.Discard)).Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	return items
}

const validJSON = `[
  {"headline": "Upgrade Everything You Touch", "angle": "Aspirational appeal"},
  {"headline": "Pros Trust Acme. Here's Why.", "angle": "Social proof"},
  {"headline": "Last Chance: Smart Gadget Sale", "angle": "Urgency driven"}
]`

func assertThreeComplete(t *testing.T, items []domain.Headline) {
	t.Helper()
	if len(items) != Count {
		t.Fatalf("len(items) = %d, want %d", len(items), Count)
	}
	for i, item := range items {
		if strings.TrimSpace(item.Headline) == "" {
			t.Errorf("item %d has empty headline", i)
		}
		if strings.TrimSpace(item.Angle) == "" {
			t.Errorf("item %d has empty angle", i)
		}
	}
}

func TestGenerateParsesCleanJSON(t *testing.T) {
	items := generate(t, fakeGateway{text: validJSON})
	assertThreeComplete(t, items)
	if items[0].Headline != "Upgrade Everything You Touch" {
		t.Errorf("items[0] = %+v", items[0])
	}
}

func TestGenerateStripsCodeFences(t *testing.T) {
	items := generate(t, fakeGateway{text: "```json\n" + validJSON + "\n```"})
	assertThreeComplete(t, items)
	if items[1].Angle != "Social proof" {
		t.Errorf("items[1] = %+v", items[1])
	}
}

func TestGenerateIgnoresSurroundingProse(t *testing.T) {
	items := generate(t, fakeGateway{text: "Here are your headlines:\n" + validJSON + "\nHope these help!"})
	assertThreeComplete(t, items)
}

func TestGenerateFallsBackOnGarbage(t *testing.T) {
	for _, text := range []string{
		"",
		"sorry, I cannot help with that",
		`{"headline": "not an array"}`,
		`[{"headline": "only one", "angle": "too few"}]`,
		`[{"headline": "", "angle": "empty headline"}, {"headline": "b", "angle": "x"}, {"headline": "c", "angle": "y"}]`,
	} {
		items := generate(t, fakeGateway{text: text})
		assertThreeComplete(t, items)
		if !strings.Contains(items[0].Headline, "Acme") {
			t.Errorf("fallback headline missing brand: %+v", items[0])
		}
	}
}

func TestGenerateFallbackIsDeterministic(t *testing.T) {
	a := generate(t, fakeGateway{text: "garbage"})
	b := generate(t, fakeGateway{text: "different garbage"})
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("fallback not deterministic: %+v vs %+v", a[i], b[i])
		}
	}
}

func TestGenerateUpstreamErrorsPropagate(t *testing.T) {
	for _, want := range []error{domain.ErrRateLimited, domain.ErrQuotaExhausted, domain.ErrUpstream, domain.ErrNotConfigured} {
		_, err := NewGenerator(fakeGateway{err: want}, "m", zerolog.New(io.Discard)).Generate(context.Background(), testRequest())
		if !errors.Is(err, want) {
			t.Errorf("err = %v, want %v", err, want)
		}
	}
}

func TestDecodeHeadlinesRejectsWrongArity(t *testing.T) {
	if _, err := decodeHeadlines(`[{"headline":"a","angle":"x"},{"headline":"b","angle":"y"}]`); err == nil {
		t.Fatal("expected error for 2 items")
	}
}
