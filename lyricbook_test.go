package lyricbook_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/lyricbook"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := lyricbook.Errorf(lyricbook.ENOTFOUND, "no results for %q", "test")

	assert.Equal(t, lyricbook.ENOTFOUND, lyricbook.ErrorCode(err))
	assert.Equal(t, "no results for \"test\"", lyricbook.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, lyricbook.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, lyricbook.ErrorMessage(nil))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("resolve: %w", lyricbook.Errorf(lyricbook.ENOTFOUND, "not found"))

	assert.Equal(t, lyricbook.ENOTFOUND, lyricbook.ErrorCode(err))
}

func TestErrorCode_PlainError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, lyricbook.EINTERNAL, lyricbook.ErrorCode(err))
	assert.Equal(t, "Internal error.", lyricbook.ErrorMessage(err))
}

func TestMissingRegionError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("extract: %w", &lyricbook.MissingRegionError{Region: "body"})

	var missing *lyricbook.MissingRegionError
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, "body", missing.Region)
	assert.Equal(t, lyricbook.EINVALID, lyricbook.ErrorCode(err))
	assert.Equal(t, "missing body region", lyricbook.ErrorMessage(err))
}
