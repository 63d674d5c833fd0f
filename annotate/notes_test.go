package annotate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tsawler/lectern/model"
)

func TestFirstSentence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"period", "First sentence. Second sentence.", "First sentence"},
		{"question", "Is this useful? Maybe.", "Is this useful"},
		{"newline", "Line one\nLine two", "Line one"},
		{"no terminator", "Just a fragment", "Just a fragment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := firstSentence(tt.text)
			if got != tt.want {
				t.Errorf("firstSentence(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestFallbackNoteContext(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	tests := []struct {
		name  string
		notes string
		want  string
	}{
		{
			"usable first sentence",
			"This slide explains the quarterly revenue trend. Remember to pause here.",
			"Context: This slide explains the quarterly revenue trend.",
		},
		{
			"first sentence too short",
			"Short note here. The rest of the notes go on at length about details.",
			"",
		},
		{
			"first sentence too long",
			strings.Repeat("word ", 50) + ". Next.",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.fallbackNoteContext(tt.notes)
			if got != tt.want {
				t.Errorf("fallbackNoteContext() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFallbackNoteContextGerman(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Language = "de"
	engine := NewEngine(cfg)

	got := engine.fallbackNoteContext("Diese Folie erklärt die Umsatzentwicklung im Detail.")
	want := "Kontext: Diese Folie erklärt die Umsatzentwicklung im Detail."
	if got != want {
		t.Errorf("fallbackNoteContext() = %q, want %q", got, want)
	}
}

func TestAddNoteContext(t *testing.T) {
	first := textBlock("Quarterly revenue details")
	doc := singleSlideDoc(first)
	slide := doc.Slides[0]
	slide.Notes = "This slide explains the quarterly revenue trend. Pause for questions."

	engine := NewEngine(DefaultConfig())
	engine.addNoteContext(context.Background(), doc)

	if len(slide.Blocks) != 2 {
		t.Fatalf("block count = %d, want 2", len(slide.Blocks))
	}
	generated := slide.Blocks[0]
	if generated.A11y.Role != model.RoleContextual {
		t.Errorf("generated role = %v, want %v", generated.A11y.Role, model.RoleContextual)
	}
	if generated.ReadingOrder != 0 {
		t.Errorf("generated order = %d, want 0", generated.ReadingOrder)
	}
	if !strings.HasPrefix(generated.Source, "notes:") {
		t.Errorf("generated source = %q, want notes: prefix", generated.Source)
	}
	if generated.A11y.NoteContext == "" {
		t.Error("NoteContext not recorded on generated block")
	}
	if first.ReadingOrder != 2 {
		t.Errorf("existing block order = %d, want 2 (shifted)", first.ReadingOrder)
	}

	// Re-running must not add a second context block.
	engine.addNoteContext(context.Background(), doc)
	if len(slide.Blocks) != 2 {
		t.Errorf("second run block count = %d, want 2", len(slide.Blocks))
	}
}

func TestAddNoteContextShortNotesSkipped(t *testing.T) {
	doc := singleSlideDoc(textBlock("Content"))
	doc.Slides[0].Notes = "Too short."

	engine := NewEngine(DefaultConfig())
	engine.addNoteContext(context.Background(), doc)

	if len(doc.Slides[0].Blocks) != 1 {
		t.Errorf("block count = %d, want 1", len(doc.Slides[0].Blocks))
	}
}

func TestExtractNoteContextSentinel(t *testing.T) {
	provider := &scriptedCapability{textAnswer: "NO_CONTEXT"}
	engine := NewEngineWithCapability(DefaultConfig(), provider)

	got := engine.extractNoteContext(context.Background(), "Reminder to check the projector cable before this slide.")
	if got != "" {
		t.Errorf("extractNoteContext() = %q, want empty for sentinel answer", got)
	}
}

func TestExtractNoteContextModelAnswer(t *testing.T) {
	answer := "The numbers on this slide exclude the discontinued hardware division."
	provider := &scriptedCapability{textAnswer: answer}
	engine := NewEngineWithCapability(DefaultConfig(), provider)

	got := engine.extractNoteContext(context.Background(), "Long enough speaker notes for extraction to run.")
	if got != answer {
		t.Errorf("extractNoteContext() = %q, want %q", got, answer)
	}
}

func TestExtractNoteContextErrorFallsBack(t *testing.T) {
	provider := &scriptedCapability{textErr: errors.New("model offline")}
	engine := NewEngineWithCapability(DefaultConfig(), provider)

	notes := "This slide explains the quarterly revenue trend. More detail follows."
	got := engine.extractNoteContext(context.Background(), notes)
	want := "Context: This slide explains the quarterly revenue trend."
	if got != want {
		t.Errorf("extractNoteContext() = %q, want %q", got, want)
	}
}
