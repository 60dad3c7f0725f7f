package text

import "github.com/google/uuid"

// TextStructure owns the backing text string and holds exactly one
// TextStructureView whose Contents aliases that owned string.
type TextStructure struct {
	ownedContents string
	view          *TextStructureView

	// ID correlates deferred sub-analyses in debug traces; it has no
	// semantic role in the data model itself.
	ID uuid.UUID
}

// NewTextStructure takes ownership of contents and builds a view over it
// from the given tokens and filter predicate.
func NewTextStructure(contents string, tokens TokenSequence, keep func(Token) bool) (*TextStructure, error) {
	v, err := NewTextStructureView(contents, tokens, keep)
	if err != nil {
		return nil, err
	}
	return &TextStructure{ownedContents: contents, view: v, ID: uuid.New()}, nil
}

// View returns the owned view.
func (s *TextStructure) View() *TextStructureView { return s.view }

// Contents returns the owned text.
func (s *TextStructure) Contents() string { return s.ownedContents }

// clear empties the sub-analysis after its tree and tokens have been
// spliced into a parent (step 7 of the expansion protocol).
func (s *TextStructure) clear() {
	s.ownedContents = ""
	s.view = nil
}
