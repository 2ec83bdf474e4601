package docstruct_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mjaros/docstruct"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns code for application errors", func(t *testing.T) {
		t.Parallel()

		err := docstruct.Errorf(docstruct.ENOTFOUND, "page not found")
		assert.Equal(t, docstruct.ENOTFOUND, docstruct.ErrorCode(err))
	})

	t.Run("unwraps wrapped application errors", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("fetch seed: %w", docstruct.Errorf(docstruct.ETIMEOUT, "deadline exceeded"))
		assert.Equal(t, docstruct.ETIMEOUT, docstruct.ErrorCode(err))
	})

	t.Run("returns EINTERNAL for non-application errors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, docstruct.EINTERNAL, docstruct.ErrorCode(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", docstruct.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns message for application errors", func(t *testing.T) {
		t.Parallel()

		err := docstruct.Errorf(docstruct.EINVALID, "bad URL %q", "ftp://x")
		assert.Equal(t, `bad URL "ftp://x"`, docstruct.ErrorMessage(err))
	})

	t.Run("returns generic message for non-application errors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Internal error.", docstruct.ErrorMessage(errors.New("boom")))
	})
}
