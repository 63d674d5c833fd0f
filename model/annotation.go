package model

// Role describes how a screen reader should treat a block.
type Role int

const (
	// RoleEssential content is read aloud. This is the zero value: a
	// freshly classified block is essential until the annotation engine
	// decides otherwise.
	RoleEssential Role = iota
	// RoleContextual marks generated context such as speaker-note
	// extracts and slide summaries. Read aloud before the slide content.
	RoleContextual
	// RoleDecorative content carries no information (spacer images,
	// divider lines) and is skipped.
	RoleDecorative
	// RoleRedundant content repeats something already read on an earlier
	// slide (logos, repeated contact footers) and is skipped.
	RoleRedundant
	// RoleBoilerplate marks legal footers, copyright lines and similar.
	RoleBoilerplate
	// RolePlaceholder marks unfilled template text ("Click to add title").
	RolePlaceholder
	// RoleNavigation marks page numbers and other slide chrome.
	RoleNavigation
)

// String returns the role name as used in annotations and reports.
func (r Role) String() string {
	switch r {
	case RoleEssential:
		return "essential"
	case RoleContextual:
		return "contextual"
	case RoleDecorative:
		return "decorative"
	case RoleRedundant:
		return "redundant"
	case RoleBoilerplate:
		return "boilerplate"
	case RolePlaceholder:
		return "placeholder"
	case RoleNavigation:
		return "navigation"
	default:
		return "unknown"
	}
}

// Skippable reports whether blocks with this role are removed from the
// final model.
func (r Role) Skippable() bool {
	switch r {
	case RoleDecorative, RoleRedundant, RoleBoilerplate, RolePlaceholder, RoleNavigation:
		return true
	}
	return false
}

// Annotation holds the accessibility decisions for a block. The zero
// value means: essential, no rewritten narration.
type Annotation struct {
	Role Role

	// ScreenReaderText, when non-empty, replaces the block's raw content
	// for narration. Used for naturalized tables and generated context.
	ScreenReaderText string

	// SkipReason documents why a block was downgraded from essential.
	SkipReason string

	// RelatedBlocks lists source ids of blocks this annotation refers to,
	// e.g. the blocks a narrative replaced.
	RelatedBlocks []string

	// NoteContext carries the speaker-note extract a contextual block was
	// generated from.
	NoteContext string
}
