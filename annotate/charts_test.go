package annotate

import (
	"context"
	"testing"

	"github.com/tsawler/lectern/model"
)

func TestMentionsChart(t *testing.T) {
	tests := []struct {
		name string
		alt  string
		want bool
	}{
		{"english chart", "Sales chart", true},
		{"german diagramm", "Balkendiagramm Umsatz", true},
		{"graph", "Graph of monthly visits", true},
		{"photo", "Team photo at the office", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mentionsChart(tt.alt)
			if got != tt.want {
				t.Errorf("mentionsChart(%q) = %v, want %v", tt.alt, got, tt.want)
			}
		})
	}
}

func TestEnhanceChartDescriptions(t *testing.T) {
	fig := &model.Figure{Data: []byte("img"), AltText: "Sales chart"}
	doc := singleSlideDoc(model.NewFigureBlock(fig))

	answer := "The chart shows revenue rising across four quarters, peaking in the fourth."
	// The lead-in is stripped and the remainder recapitalized on the way in.
	want := "Revenue rising across four quarters, peaking in the fourth."
	provider := &scriptedCapability{vision: true, visionAnswer: answer}
	engine := NewEngineWithCapability(DefaultConfig(), provider)
	engine.enhanceChartDescriptions(context.Background(), doc)

	if fig.AltText != want {
		t.Errorf("AltText = %q, want %q", fig.AltText, want)
	}
	if fig.AltTextConfidence != 0.9 {
		t.Errorf("AltTextConfidence = %v, want 0.9", fig.AltTextConfidence)
	}
}

func TestEnhanceChartDescriptionsRequiresVision(t *testing.T) {
	fig := &model.Figure{Data: []byte("img"), AltText: "Sales chart"}
	doc := singleSlideDoc(model.NewFigureBlock(fig))

	provider := &scriptedCapability{vision: false}
	engine := NewEngineWithCapability(DefaultConfig(), provider)
	engine.enhanceChartDescriptions(context.Background(), doc)

	if fig.AltText != "Sales chart" {
		t.Errorf("AltText = %q, want original preserved without vision", fig.AltText)
	}
}

func TestEnhanceChartDescriptionsShortAnswerIgnored(t *testing.T) {
	fig := &model.Figure{Data: []byte("img"), AltText: "Sales chart"}
	doc := singleSlideDoc(model.NewFigureBlock(fig))

	provider := &scriptedCapability{vision: true, visionAnswer: "A chart."}
	engine := NewEngineWithCapability(DefaultConfig(), provider)
	engine.enhanceChartDescriptions(context.Background(), doc)

	if fig.AltText != "Sales chart" {
		t.Errorf("AltText = %q, want original preserved for short answer", fig.AltText)
	}
}

func TestEnhanceChartDescriptionsNonChartUntouched(t *testing.T) {
	fig := &model.Figure{Data: []byte("img"), AltText: "Team photo at the office"}
	doc := singleSlideDoc(model.NewFigureBlock(fig))

	provider := &scriptedCapability{vision: true, visionAnswer: "A long description that must never be applied here."}
	engine := NewEngineWithCapability(DefaultConfig(), provider)
	engine.enhanceChartDescriptions(context.Background(), doc)

	if fig.AltText != "Team photo at the office" || provider.visionCalls != 0 {
		t.Errorf("AltText = %q, vision calls = %d, want untouched and 0", fig.AltText, provider.visionCalls)
	}
}
