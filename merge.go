package docstruct

import "strings"

// NameMatcher decides whether two module names refer to the same module.
// Implementations receive names already normalized with NormalizeName.
type NameMatcher interface {
	// Match reports whether a and b are similar enough to merge.
	Match(a, b string) bool
}

// NameMatcherFunc adapts a function to the NameMatcher interface.
type NameMatcherFunc func(a, b string) bool

// Match calls f(a, b).
func (f NameMatcherFunc) Match(a, b string) bool { return f(a, b) }

// NormalizeName canonicalizes a module name for comparison: case-folded
// with runs of whitespace collapsed to single spaces and ends trimmed.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Merge collapses modules judged equivalent by name into one, preserving
// first-occurrence order. Exactly-equal normalized names always merge;
// otherwise the matcher decides. The first-seen module keeps its position
// and description, except that a placeholder description yields to a later
// real one. Submodules are unioned under the SubmoduleSet policy.
//
// Modules with empty normalized names are dropped: every module in the
// result has a non-empty name.
func Merge(modules []*Module, matcher NameMatcher) []*Module {
	var merged []*Module
	byName := make(map[string]int) // normalized name → position in merged

	for _, m := range modules {
		name := NormalizeName(m.Name)
		if name == "" {
			continue
		}

		target := -1
		if i, ok := byName[name]; ok {
			target = i
		} else if matcher != nil {
			for i, existing := range merged {
				if matcher.Match(NormalizeName(existing.Name), name) {
					target = i
					break
				}
			}
		}

		if target == -1 {
			keep := NewModule(m.Name, m.Description)
			if keep.Description == "" {
				keep.Description = DefaultDescription
			}
			keep.PageID = m.PageID
			keep.Submodules.Merge(m.Submodules)
			byName[name] = len(merged)
			merged = append(merged, keep)
			continue
		}

		existing := merged[target]
		// First-seen description wins, unless it is the placeholder and a
		// later candidate carries a real one.
		if existing.Description == DefaultDescription {
			if d := strings.TrimSpace(m.Description); d != "" && d != DefaultDescription {
				existing.Description = d
			}
		}
		existing.Submodules.Merge(m.Submodules)
		byName[name] = target
	}

	return merged
}
