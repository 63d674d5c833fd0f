package annotate

import (
	"testing"

	"github.com/tsawler/lectern/model"
)

func TestNormalizeMarker(t *testing.T) {
	tests := []struct {
		name   string
		marker string
		want   string
	}{
		{"single superscript", "¹", "1"},
		{"multi superscript", "¹²", "12"},
		{"superscript zero", "¹⁰", "10"},
		{"plain digits pass through", "42", "42"},
		{"single asterisk", "*", "1"},
		{"asterisk run collapses", "***", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeMarker(tt.marker)
			if got != tt.want {
				t.Errorf("normalizeMarker(%q) = %q, want %q", tt.marker, got, tt.want)
			}
		})
	}
}

func TestCollectFootnotes(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantMarker  string
		wantContent string
	}{
		{"superscript definition", "¹ Quelle: Statista 2024", "1", "Quelle: Statista 2024"},
		{"bracket definition", "[2] See annual report", "2", "See annual report"},
		{"paren definition", "3) Figures unaudited", "3", "Figures unaudited"},
		{"asterisk definition", "* Preliminary numbers", "1", "Preliminary numbers"},
		{"superscript wins over bracket", "¹ [2] both styles", "1", "[2] both styles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine(DefaultConfig())
			st := newRunState()
			doc := singleSlideDoc(textBlock(tt.text))

			engine.analyzeContent(doc, st)

			got, ok := st.footnotes[tt.wantMarker]
			if !ok {
				t.Fatalf("marker %q not collected, footnotes = %v", tt.wantMarker, st.footnotes)
			}
			if got != tt.wantContent {
				t.Errorf("footnotes[%q] = %q, want %q", tt.wantMarker, got, tt.wantContent)
			}
		})
	}
}

func TestCollectFootnotesLastDefinitionWins(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	st := newRunState()
	doc := singleSlideDoc(
		textBlock("¹ First definition text"),
		textBlock("¹ Second definition text"),
	)

	engine.analyzeContent(doc, st)

	if got := st.footnotes["1"]; got != "Second definition text" {
		t.Errorf("footnotes[\"1\"] = %q, want %q", got, "Second definition text")
	}
}

func TestContentHash(t *testing.T) {
	tests := []struct {
		name     string
		block    *model.Block
		wantHash bool
	}{
		{"long text hashes", textBlock("A sufficiently long sentence"), true},
		{"short text skipped", textBlock("short"), false},
		{"empty text skipped", textBlock("   "), false},
		{"figure uses image hash", model.NewFigureBlock(&model.Figure{Data: []byte("png-bytes")}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := contentHash(tt.block)
			if (got != "") != tt.wantHash {
				t.Errorf("contentHash() = %q, wantHash %v", got, tt.wantHash)
			}
		})
	}
}

func TestContentHashCaseInsensitive(t *testing.T) {
	a := contentHash(textBlock("Quarterly Revenue Overview"))
	b := contentHash(textBlock("quarterly revenue overview"))
	if a != b {
		t.Errorf("hashes differ for case variants: %q vs %q", a, b)
	}
}
