package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReasonString(t *testing.T) {
	assert.Equal(t, "bins not monotonic", NonMonotonic.String())
	assert.Equal(t, "invalid reason (99)", Reason(99).String())
	assert.Equal(t, NonMonotonic, NonMonotonic.Reason())
}

func TestErrorReason(t *testing.T) {
	err := Reasonf(LeafCount, "tree has %d leaves, got %d values", 3, 2)
	require.EqualError(t, err, "leaf count mismatch: tree has 3 leaves, got 2 values")

	cases := []struct {
		name string
		err  error
		want Reason
	}{
		{"nil", nil, Unknown},
		{"plain", New("boom"), Unknown},
		{"bare reason", MissingNode, MissingNode},
		{"tagged", err, LeafCount},
		{"wrapped", Wrapf(err, "conditions"), LeafCount},
		{"stack", pkgerrors.WithStack(err), LeafCount},
		{"fmt wrapped", fmt.Errorf("outer: %w", err), LeafCount},
		{"list", Append(Append(nil, New("x")), err), LeafCount},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ErrorReason(c.err))
		})
	}
}

func TestReasonIs(t *testing.T) {
	err := Wrapf(Reasonf(NonMonotonic, "bins [1 3 2]"), "digitize WIND")
	assert.True(t, stderrors.Is(err, NonMonotonic))
	assert.False(t, stderrors.Is(err, IndexCount))
}

func TestWrapf(t *testing.T) {
	assert.EqualError(t, Wrapf(nil, "no cause %d", 1), "no cause 1")
	assert.EqualError(t, Wrapf(New("inner"), "outer"), "outer: inner")
	assert.Nil(t, WrapfOrNil(nil, "outer"))
}
