package slog

import (
	"log/slog"
	"time"

	"github.com/mjaros/docstruct"
)

// Ensure LoggingModuleDetector implements docstruct.ModuleDetector.
var _ docstruct.ModuleDetector = (*LoggingModuleDetector)(nil)

// LoggingModuleDetector wraps a ModuleDetector with debug logging.
type LoggingModuleDetector struct {
	next   docstruct.ModuleDetector
	logger *slog.Logger
}

// NewLoggingModuleDetector creates a new LoggingModuleDetector.
func NewLoggingModuleDetector(next docstruct.ModuleDetector, logger *slog.Logger) *LoggingModuleDetector {
	return &LoggingModuleDetector{next: next, logger: logger}
}

// DetectModules delegates to the wrapped detector and logs the outcome.
func (d *LoggingModuleDetector) DetectModules(region *docstruct.ContentRegion) (modules []*docstruct.Module, err error) {
	defer func(begin time.Time) {
		d.logger.Info("module detection",
			"modules", len(modules),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.DetectModules(region)
}

// Ensure LoggingSubmoduleDetector implements docstruct.SubmoduleDetector.
var _ docstruct.SubmoduleDetector = (*LoggingSubmoduleDetector)(nil)

// LoggingSubmoduleDetector wraps a SubmoduleDetector with debug logging.
type LoggingSubmoduleDetector struct {
	next   docstruct.SubmoduleDetector
	logger *slog.Logger
}

// NewLoggingSubmoduleDetector creates a new LoggingSubmoduleDetector.
func NewLoggingSubmoduleDetector(next docstruct.SubmoduleDetector, logger *slog.Logger) *LoggingSubmoduleDetector {
	return &LoggingSubmoduleDetector{next: next, logger: logger}
}

// DetectSubmodules delegates to the wrapped detector and logs the outcome.
func (d *LoggingSubmoduleDetector) DetectSubmodules(module *docstruct.Module, region *docstruct.ContentRegion) (err error) {
	defer func(begin time.Time) {
		d.logger.Info("submodule detection",
			"module", module.Name,
			"submodules", module.Submodules.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.DetectSubmodules(module, region)
}
