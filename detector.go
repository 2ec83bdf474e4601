package docstruct

// ModuleDetector identifies candidate modules in a content region.
//
// Implementations apply detection techniques in priority order and
// short-circuit on the first technique that yields at least one candidate
// with a usable name, falling through otherwise. Candidates whose names are
// empty after trimming are discarded before being returned; candidates
// without a description receive the default placeholder.
type ModuleDetector interface {
	DetectModules(region *ContentRegion) ([]*Module, error)
}

// SubmoduleDetector enriches a module with submodules found in its local
// region. In aggressive mode the results of all techniques are unioned;
// otherwise detection stops at the first technique that yields any result.
type SubmoduleDetector interface {
	DetectSubmodules(module *Module, region *ContentRegion) error
}

// Framework identifies a documentation site generator.
type Framework string

// Recognized documentation frameworks.
const (
	FrameworkUnknown    Framework = ""
	FrameworkDocusaurus Framework = "docusaurus"
	FrameworkMkDocs     Framework = "mkdocs"
	FrameworkSphinx     Framework = "sphinx"
	FrameworkGitBook    Framework = "gitbook"
)

// FrameworkDetector identifies documentation frameworks from HTML.
// Knowing the framework lets the content extractor use the generator's
// known main-content selector before falling back to generic heuristics.
type FrameworkDetector interface {
	// Detect analyzes HTML and returns the identified framework.
	// Returns FrameworkUnknown if the framework cannot be determined.
	Detect(html string) Framework
}
