//go:build unit

package errs_test

import (
	"testing"

	"rovera-leads/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSentinel = errs.New("sentinel")

type fieldError struct{ field string }

func (e *fieldError) Error() string { return "invalid " + e.field }

func TestMark(t *testing.T) {
	t.Run("marked error matches both causes", func(t *testing.T) {
		cause := &fieldError{field: "email"}
		err := errs.Wrap(errs.Mark(cause, errSentinel), "create lead")

		assert.True(t, errs.Is(err, errSentinel))

		var fe *fieldError
		require.True(t, errs.As(err, &fe))
		assert.Equal(t, "email", fe.field)
	})

	t.Run("nil error yields the mark", func(t *testing.T) {
		assert.Same(t, errSentinel, errs.Mark(nil, errSentinel))
	})
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))
	assert.NoError(t, errs.Wrapf(nil, "ignored %d", 1))
}

func TestExtractStackLines(t *testing.T) {
	err := errs.Wrapf(errs.New("boom"), "lead %s", "abc")

	lines := errs.ExtractStackLines(err, 3)

	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "lead abc")
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}
