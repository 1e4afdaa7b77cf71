//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"travel-broker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	base := errs.New("connection reset")
	marked := errs.Mark(base, errs.ErrDatabaseOperationFailed)

	assert.True(t, errors.Is(marked, errs.ErrDatabaseOperationFailed))
	assert.Equal(t, "connection reset", marked.Error())
	assert.Equal(t, errs.ErrDependencyUnavailable, errs.Mark(nil, errs.ErrDependencyUnavailable))
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ctx"))
	assert.NoError(t, errs.Wrapf(nil, "ctx %d", 1))
}

func TestExtractStackLines(t *testing.T) {
	err := errs.Wrap(errs.New("boom"), "load offer")
	lines := errs.ExtractStackLines(err, 3)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "load offer")
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}
