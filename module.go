package docstruct

import "strings"

// Module is a top-level documentation topic with a name, a description and
// an ordered set of submodules. During detection it doubles as a candidate:
// PageID and Region carry provenance and the module-local markup, neither of
// which is part of the output.
type Module struct {
	Name        string
	Description string
	Submodules  *SubmoduleSet

	// PageID references the originating page. Provenance only.
	PageID string

	// Region is the HTML fragment local to this module: the markup between
	// this module's boundary and the next. Submodule detection operates on it.
	Region string
}

// NewModule returns a module with an empty submodule set.
func NewModule(name, description string) *Module {
	return &Module{
		Name:        name,
		Description: description,
		Submodules:  NewSubmoduleSet(),
	}
}

// Validate returns an error if the module contains invalid fields.
func (m *Module) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return Errorf(EINVALID, "module name required")
	}
	return nil
}

// Submodule is a named sub-topic belonging to exactly one module.
type Submodule struct {
	Name        string
	Description string
}

// SubmoduleSet is an insertion-ordered mapping from submodule name to
// description. Names are unique under case- and whitespace-insensitive
// comparison; an added duplicate keeps whichever description is longer,
// never preferring the placeholder over a real description.
type SubmoduleSet struct {
	items []Submodule
	index map[string]int // normalized name → position in items
}

// NewSubmoduleSet returns an empty SubmoduleSet.
func NewSubmoduleSet() *SubmoduleSet {
	return &SubmoduleSet{index: make(map[string]int)}
}

// Add inserts a submodule, collapsing duplicates. The first-seen display
// name wins; descriptions follow the longest-non-placeholder policy.
// Submodules with empty trimmed names are dropped. Empty descriptions
// receive the default placeholder.
func (s *SubmoduleSet) Add(name, description string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	description = strings.TrimSpace(description)
	if description == "" {
		description = DefaultDescription
	}

	key := NormalizeName(name)
	if i, ok := s.index[key]; ok {
		s.items[i].Description = preferDescription(s.items[i].Description, description)
		return
	}
	s.index[key] = len(s.items)
	s.items = append(s.items, Submodule{Name: name, Description: description})
}

// Merge adds every submodule of other into s under the Add policy.
func (s *SubmoduleSet) Merge(other *SubmoduleSet) {
	if other == nil {
		return
	}
	for _, sub := range other.items {
		s.Add(sub.Name, sub.Description)
	}
}

// Len returns the number of submodules in the set.
func (s *SubmoduleSet) Len() int {
	return len(s.items)
}

// Items returns the submodules in insertion order.
func (s *SubmoduleSet) Items() []Submodule {
	out := make([]Submodule, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the description for name, matched case- and
// whitespace-insensitively. The bool result is false if name is absent.
func (s *SubmoduleSet) Get(name string) (string, bool) {
	i, ok := s.index[NormalizeName(name)]
	if !ok {
		return "", false
	}
	return s.items[i].Description, true
}

// preferDescription picks between an existing and a candidate description:
// a real description always beats the placeholder, then length decides.
func preferDescription(existing, candidate string) string {
	if existing == DefaultDescription && candidate != DefaultDescription {
		return candidate
	}
	if candidate == DefaultDescription {
		return existing
	}
	if len(candidate) > len(existing) {
		return candidate
	}
	return existing
}

// ExtractionResult is the finalized, deduplicated module list for one crawl.
// It is the sole externally visible artifact.
type ExtractionResult struct {
	Modules []*Module

	// Crawl statistics, reported to the CLI.
	PagesCrawled int
	PagesFailed  int
}
