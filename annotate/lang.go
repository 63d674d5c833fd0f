package annotate

import "golang.org/x/text/language"

// lexicon holds the localized phrases used in generated narration.
// Detection vocabularies stay bilingual (see strip.go, complex.go);
// only text the pipeline writes itself is localized.
type lexicon struct {
	columnsLabel string // table narration: "Columns: a, b"
	columnWord   string // synthetic header: "Column 3"
	tableLabel   string // caption prefix: "Table: ..."
	contextLabel string // note context prefix
	summaryLabel string // slide summary prefix
	noteLanguage string // language name for prompts
}

var englishLexicon = lexicon{
	columnsLabel: "Columns",
	columnWord:   "Column",
	tableLabel:   "Table",
	contextLabel: "Context",
	summaryLabel: "Summary of this slide",
	noteLanguage: "English",
}

var germanLexicon = lexicon{
	columnsLabel: "Spalten",
	columnWord:   "Spalte",
	tableLabel:   "Tabelle",
	contextLabel: "Kontext",
	summaryLabel: "Zusammenfassung dieser Folie",
	noteLanguage: "German",
}

var languageMatcher = language.NewMatcher([]language.Tag{
	language.English, // first entry is the fallback
	language.German,
})

// lexiconFor resolves a BCP 47 tag ("de", "de-AT", "en-GB", ...) to the
// closest supported lexicon. Unknown languages fall back to English.
func lexiconFor(lang string) lexicon {
	_, index := language.MatchStrings(languageMatcher, lang)
	if index == 1 {
		return germanLexicon
	}
	return englishLexicon
}
