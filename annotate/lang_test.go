package annotate

import "testing"

func TestLexiconFor(t *testing.T) {
	tests := []struct {
		name string
		lang string
		want lexicon
	}{
		{"german base tag", "de", germanLexicon},
		{"german regional", "de-AT", germanLexicon},
		{"english base tag", "en", englishLexicon},
		{"english regional", "en-GB", englishLexicon},
		{"unsupported language", "fr", englishLexicon},
		{"empty tag", "", englishLexicon},
		{"garbage tag", "not-a-tag", englishLexicon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lexiconFor(tt.lang)
			if got.summaryLabel != tt.want.summaryLabel {
				t.Errorf("lexiconFor(%q).summaryLabel = %q, want %q",
					tt.lang, got.summaryLabel, tt.want.summaryLabel)
			}
		})
	}
}
