package mock

import "github.com/mjaros/docstruct"

var _ docstruct.ModuleDetector = (*ModuleDetector)(nil)

// ModuleDetector is a mock implementation of docstruct.ModuleDetector.
type ModuleDetector struct {
	DetectModulesFn func(region *docstruct.ContentRegion) ([]*docstruct.Module, error)
}

func (d *ModuleDetector) DetectModules(region *docstruct.ContentRegion) ([]*docstruct.Module, error) {
	return d.DetectModulesFn(region)
}

var _ docstruct.SubmoduleDetector = (*SubmoduleDetector)(nil)

// SubmoduleDetector is a mock implementation of docstruct.SubmoduleDetector.
type SubmoduleDetector struct {
	DetectSubmodulesFn func(module *docstruct.Module, region *docstruct.ContentRegion) error
}

func (d *SubmoduleDetector) DetectSubmodules(module *docstruct.Module, region *docstruct.ContentRegion) error {
	if d.DetectSubmodulesFn == nil {
		return nil
	}
	return d.DetectSubmodulesFn(module, region)
}

var _ docstruct.FrameworkDetector = (*FrameworkDetector)(nil)

// FrameworkDetector is a mock implementation of docstruct.FrameworkDetector.
type FrameworkDetector struct {
	DetectFn func(html string) docstruct.Framework
}

func (d *FrameworkDetector) Detect(html string) docstruct.Framework {
	return d.DetectFn(html)
}

var _ docstruct.NameMatcher = (*NameMatcher)(nil)

// NameMatcher is a mock implementation of docstruct.NameMatcher.
type NameMatcher struct {
	MatchFn func(a, b string) bool
}

func (m *NameMatcher) Match(a, b string) bool {
	return m.MatchFn(a, b)
}
