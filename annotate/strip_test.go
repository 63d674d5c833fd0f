package annotate

import (
	"testing"

	"github.com/tsawler/lectern/model"
)

func TestIsPageNumber(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"bare small number", "42", true},
		{"bare one", "1", true},
		{"bare hundred", "100", true},
		{"bare above range", "142", false},
		{"german label", "Folie 3", true},
		{"english label", "Slide 12", true},
		{"page label", "Page 7", true},
		{"slash form", "3 / 12", true},
		{"of form", "2 von 10", true},
		{"english of form", "2 of 10", true},
		{"not a number", "Q3", false},
		{"sentence", "3 reasons to invest", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isPageNumber(tt.text)
			if got != tt.want {
				t.Errorf("isPageNumber(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsBoilerplate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"copyright", "© 2024 Acme Corp", true},
		{"rights reserved", "All rights reserved", true},
		{"confidential", "Strictly Confidential", true},
		{"german internal", "Nur für den internen Gebrauch", true},
		{"draft", "DRAFT", true},
		{"impressum", "Impressum", true},
		{"datenschutz", "Datenschutzhinweise", true},
		{"privacy", "Privacy Policy", true},
		{"content", "Revenue grew by 12 percent", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isBoilerplate(tt.text)
			if got != tt.want {
				t.Errorf("isBoilerplate(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsPlaceholder(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"english add title", "Click to add Title", true},
		{"german enter title", "Titel eingeben", true},
		{"lorem", "Lorem ipsum dolor sit amet", true},
		{"real title", "Annual Results 2024", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isPlaceholder(tt.text)
			if got != tt.want {
				t.Errorf("isPlaceholder(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestStripChromeRoles(t *testing.T) {
	pageNum := textBlock("7")
	boiler := textBlock("© 2024 Acme Corp")
	placeholder := textBlock("Click to add text")
	content := textBlock("Revenue grew by 12 percent")

	engine := NewEngine(DefaultConfig())
	doc := singleSlideDoc(pageNum, boiler, placeholder, content)
	engine.stripChrome(doc, newRunState())

	if pageNum.A11y.Role != model.RoleNavigation {
		t.Errorf("page number role = %v, want %v", pageNum.A11y.Role, model.RoleNavigation)
	}
	if boiler.A11y.Role != model.RoleBoilerplate {
		t.Errorf("boilerplate role = %v, want %v", boiler.A11y.Role, model.RoleBoilerplate)
	}
	if placeholder.A11y.Role != model.RolePlaceholder {
		t.Errorf("placeholder role = %v, want %v", placeholder.A11y.Role, model.RolePlaceholder)
	}
	if content.A11y.Role != model.RoleEssential {
		t.Errorf("content role = %v, want %v", content.A11y.Role, model.RoleEssential)
	}
}

func TestStripChromeContactDedup(t *testing.T) {
	first := textBlock("Contact: info@acme.example")
	repeat := textBlock("info@acme.example")

	doc := model.NewDocument()
	s1 := model.NewSlide(0)
	s1.Blocks = []*model.Block{first}
	doc.AddSlide(s1)
	s2 := model.NewSlide(0)
	s2.Blocks = []*model.Block{repeat}
	doc.AddSlide(s2)

	engine := NewEngine(DefaultConfig())
	engine.stripChrome(doc, newRunState())

	if first.A11y.Role != model.RoleEssential {
		t.Errorf("first contact role = %v, want %v", first.A11y.Role, model.RoleEssential)
	}
	if repeat.A11y.Role != model.RoleRedundant {
		t.Errorf("repeated contact role = %v, want %v", repeat.A11y.Role, model.RoleRedundant)
	}
}

func TestStripChromeContactDedupMixedBlock(t *testing.T) {
	first := textBlock("info@acme.example")
	mixed := textBlock("info@acme.example and sales@acme.example")
	later := textBlock("sales@acme.example")

	doc := model.NewDocument()
	s1 := model.NewSlide(0)
	s1.Blocks = []*model.Block{first}
	doc.AddSlide(s1)
	s2 := model.NewSlide(0)
	s2.Blocks = []*model.Block{mixed}
	doc.AddSlide(s2)
	s3 := model.NewSlide(0)
	s3.Blocks = []*model.Block{later}
	doc.AddSlide(s3)

	engine := NewEngine(DefaultConfig())
	engine.stripChrome(doc, newRunState())

	// The mixed block repeats a known contact, so it reads as a repeat
	// even though it also introduces a new one.
	if mixed.A11y.Role != model.RoleRedundant {
		t.Errorf("mixed block role = %v, want %v", mixed.A11y.Role, model.RoleRedundant)
	}
	// Its new contact still registered, so a later block showing only
	// that contact is a repeat too.
	if later.A11y.Role != model.RoleRedundant {
		t.Errorf("later block role = %v, want %v", later.A11y.Role, model.RoleRedundant)
	}
}

func TestStripChromeContactDedupCaseInsensitive(t *testing.T) {
	first := textBlock("Info@Acme.example")
	repeat := textBlock("info@acme.example")

	doc := model.NewDocument()
	s1 := model.NewSlide(0)
	s1.Blocks = []*model.Block{first}
	doc.AddSlide(s1)
	s2 := model.NewSlide(0)
	s2.Blocks = []*model.Block{repeat}
	doc.AddSlide(s2)

	engine := NewEngine(DefaultConfig())
	engine.stripChrome(doc, newRunState())

	if first.A11y.Role != model.RoleEssential {
		t.Errorf("first contact role = %v, want %v", first.A11y.Role, model.RoleEssential)
	}
	if repeat.A11y.Role != model.RoleRedundant {
		t.Errorf("case variant role = %v, want %v", repeat.A11y.Role, model.RoleRedundant)
	}
}

func TestStripChromeContactDedupSameSlide(t *testing.T) {
	first := textBlock("info@acme.example")
	repeat := textBlock("info@acme.example")

	doc := model.NewDocument()
	s1 := model.NewSlide(0)
	s1.Blocks = []*model.Block{first, repeat}
	doc.AddSlide(s1)

	engine := NewEngine(DefaultConfig())
	engine.stripChrome(doc, newRunState())

	if first.A11y.Role != model.RoleEssential {
		t.Errorf("first contact role = %v, want %v", first.A11y.Role, model.RoleEssential)
	}
	if repeat.A11y.Role != model.RoleRedundant {
		t.Errorf("same-slide repeat role = %v, want %v", repeat.A11y.Role, model.RoleRedundant)
	}
}

func TestIsNavigationHint(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"german click", "Klicken Sie hier für mehr Informationen", true},
		{"english click", "Click here to learn more", true},
		{"bare next", "Weiter", true},
		{"bare back", "Zurück", true},
		{"next with chevron", "Next >", true},
		{"learn more", "Mehr erfahren", true},
		{"content with next inside", "Next quarter we expand", false},
		{"content", "Revenue grew by 12 percent", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isNavigationHint(tt.text)
			if got != tt.want {
				t.Errorf("isNavigationHint(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestStripChromeNavigationHint(t *testing.T) {
	hint := textBlock("Klicken Sie hier für mehr Informationen")
	content := textBlock("Revenue grew by 12 percent")

	engine := NewEngine(DefaultConfig())
	doc := singleSlideDoc(hint, content)
	engine.stripChrome(doc, newRunState())

	if hint.A11y.Role != model.RoleBoilerplate {
		t.Errorf("navigation hint role = %v, want %v", hint.A11y.Role, model.RoleBoilerplate)
	}
	if content.A11y.Role != model.RoleEssential {
		t.Errorf("content role = %v, want %v", content.A11y.Role, model.RoleEssential)
	}
}

func TestStripChromeContactOverridesBoilerplate(t *testing.T) {
	footer1 := textBlock("© 2024 Acme Corp, info@acme.example")
	footer2 := textBlock("© 2024 Acme Corp, info@acme.example")

	doc := model.NewDocument()
	s1 := model.NewSlide(0)
	s1.Blocks = []*model.Block{footer1}
	doc.AddSlide(s1)
	s2 := model.NewSlide(0)
	s2.Blocks = []*model.Block{footer2}
	doc.AddSlide(s2)

	engine := NewEngine(DefaultConfig())
	engine.stripChrome(doc, newRunState())

	if footer1.A11y.Role != model.RoleBoilerplate {
		t.Errorf("first footer role = %v, want %v", footer1.A11y.Role, model.RoleBoilerplate)
	}
	if footer2.A11y.Role != model.RoleRedundant {
		t.Errorf("repeated footer role = %v, want %v", footer2.A11y.Role, model.RoleRedundant)
	}
}

func TestExtractContacts(t *testing.T) {
	contacts := extractContacts("Reach us at info@acme.example, +49 30 1234567890 or www.acme.example")
	if len(contacts) != 3 {
		t.Errorf("extractContacts returned %d contacts, want 3: %v", len(contacts), contacts)
	}
}
