// Package docstruct extracts a module/submodule hierarchy from documentation
// websites. It crawls a site breadth-first, isolates the main content of each
// page, applies ordered detection heuristics to find modules and their
// submodules, merges near-duplicate modules across pages, and serializes the
// result as JSON.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, levenshtein/).
package docstruct
