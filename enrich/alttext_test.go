package enrich

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/tsawler/lectern/model"
)

func TestCacheRoundTrip(t *testing.T) {
	cache, err := OpenCache(filepath.Join(t.TempDir(), "alt.db"))
	if err != nil {
		t.Fatalf("OpenCache error: %v", err)
	}
	defer cache.Close()

	if _, ok := cache.Get("missing"); ok {
		t.Error("Get on empty cache reported a hit")
	}

	if err := cache.Put("abc123", "A logo."); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	got, ok := cache.Get("abc123")
	if !ok || got != "A logo." {
		t.Errorf("Get = %q, %v; want %q, true", got, ok, "A logo.")
	}

	// Overwrite.
	if err := cache.Put("abc123", "A better logo."); err != nil {
		t.Fatalf("Put overwrite error: %v", err)
	}
	if got, _ := cache.Get("abc123"); got != "A better logo." {
		t.Errorf("Get after overwrite = %q", got)
	}
}

func TestNilCacheIsSafe(t *testing.T) {
	var cache *Cache
	if _, ok := cache.Get("x"); ok {
		t.Error("nil cache reported a hit")
	}
	if err := cache.Put("x", "y"); err != nil {
		t.Errorf("nil cache Put error: %v", err)
	}
	if err := cache.Close(); err != nil {
		t.Errorf("nil cache Close error: %v", err)
	}
}

func TestGenerateUsesVisionAndPolish(t *testing.T) {
	cap := &fakeCapability{
		available: true,
		vision:    true,
		imageDesc: "an image of a funnel with four stages",
		text:      "Sales funnel with four stages.",
	}
	g := NewAltTextGenerator(cap, nil, "en")

	fig := &model.Figure{Data: []byte("bytes"), NeedsAltText: true}
	if err := g.Generate(context.Background(), fig); err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if fig.AltText != "Sales funnel with four stages." {
		t.Errorf("AltText = %q", fig.AltText)
	}
	if fig.NeedsAltText {
		t.Error("NeedsAltText still set after generation")
	}
}

func TestGenerateFallsBackToRulePolish(t *testing.T) {
	// Vision works but the polish completion fails, so rule-based
	// cleanup applies.
	cap := &visionOnlyCapability{desc: "a picture of three boxes"}
	g := NewAltTextGenerator(cap, nil, "en")

	fig := &model.Figure{Data: []byte("bytes"), NeedsAltText: true}
	if err := g.Generate(context.Background(), fig); err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if fig.AltText != "Three boxes." {
		t.Errorf("AltText = %q, want %q", fig.AltText, "Three boxes.")
	}
}

// visionOnlyCapability describes images but errors on completion.
type visionOnlyCapability struct {
	desc string
}

func (v *visionOnlyCapability) Name() string                       { return "vision-only" }
func (v *visionOnlyCapability) Available(ctx context.Context) bool { return true }
func (v *visionOnlyCapability) CanDescribeImages() bool            { return true }

func (v *visionOnlyCapability) CompleteText(ctx context.Context, prompt string) (string, error) {
	return "", context.DeadlineExceeded
}

func (v *visionOnlyCapability) DescribeImage(ctx context.Context, image []byte, prompt string) (string, error) {
	return v.desc, nil
}

func TestGenerateCacheHitSkipsCapability(t *testing.T) {
	cache, err := OpenCache(filepath.Join(t.TempDir(), "alt.db"))
	if err != nil {
		t.Fatalf("OpenCache error: %v", err)
	}
	defer cache.Close()

	fig := &model.Figure{Data: []byte("logo-bytes"), NeedsAltText: true}
	if err := cache.Put(fig.ContentHash(), "Cached description."); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	cap := &fakeCapability{available: true, vision: true, imageDesc: "should not be used"}
	g := NewAltTextGenerator(cap, cache, "en")

	if err := g.Generate(context.Background(), fig); err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if fig.AltText != "Cached description." {
		t.Errorf("AltText = %q, want cached value", fig.AltText)
	}
	if cap.calls != 0 {
		t.Errorf("capability called %d times on a cache hit", cap.calls)
	}
}

func TestGenerateWithoutAnySourceLeavesFigureAlone(t *testing.T) {
	g := NewAltTextGenerator(nil, nil, "en")
	fig := &model.Figure{Data: []byte("bytes"), NeedsAltText: true}

	if err := g.Generate(context.Background(), fig); err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if fig.AltText != "" || !fig.NeedsAltText {
		t.Errorf("figure changed without a description source: %+v", fig)
	}
}

func TestGenerateAllCoversDocument(t *testing.T) {
	cap := &fakeCapability{
		available: true,
		vision:    true,
		imageDesc: "a diagram of two services",
		text:      "Two connected services.",
	}
	g := NewAltTextGenerator(cap, nil, "en")

	doc := model.NewDocument()
	slide := model.NewSlide(0)
	fig := &model.Figure{Data: []byte("x"), NeedsAltText: true}
	slide.Blocks = append(slide.Blocks, model.NewFigureBlock(fig))
	doc.AddSlide(slide)

	if err := g.GenerateAll(context.Background(), doc); err != nil {
		t.Fatalf("GenerateAll error: %v", err)
	}
	if fig.AltText == "" {
		t.Error("figure not enriched")
	}
}
