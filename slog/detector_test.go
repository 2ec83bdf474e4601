package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjaros/docstruct"
	"github.com/mjaros/docstruct/mock"
	dsslog "github.com/mjaros/docstruct/slog"
)

func TestLoggingModuleDetector_DetectModules(t *testing.T) {
	t.Parallel()

	t.Run("logs module count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ModuleDetector{
			DetectModulesFn: func(region *docstruct.ContentRegion) ([]*docstruct.Module, error) {
				return []*docstruct.Module{
					docstruct.NewModule("Usage", "u"),
					docstruct.NewModule("API", "a"),
				}, nil
			},
		}

		d := dsslog.NewLoggingModuleDetector(inner, logger)
		modules, err := d.DetectModules(&docstruct.ContentRegion{HTML: "<div></div>"})

		require.NoError(t, err)
		assert.Len(t, modules, 2)
		output := buf.String()
		assert.Contains(t, output, "module detection")
		assert.Contains(t, output, "modules=2")
		assert.Contains(t, output, "duration=")
	})
}

func TestLoggingSubmoduleDetector_DetectSubmodules(t *testing.T) {
	t.Parallel()

	t.Run("logs the enriched module and its submodule count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SubmoduleDetector{
			DetectSubmodulesFn: func(m *docstruct.Module, _ *docstruct.ContentRegion) error {
				m.Submodules.Add("run", "runs it")
				return nil
			},
		}

		d := dsslog.NewLoggingSubmoduleDetector(inner, logger)
		m := docstruct.NewModule("CLI", "Command line")
		err := d.DetectSubmodules(m, nil)

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "submodule detection")
		assert.Contains(t, output, "module=CLI")
		assert.Contains(t, output, "submodules=1")
	})
}
