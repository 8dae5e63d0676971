package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errGuildNotFound = New("guild not found")

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestWrapKeepsKind(t *testing.T) {
	err := Wrapf(errGuildNotFound, "load guild %s", "g-1")

	assert.True(t, Is(err, errGuildNotFound))
	assert.Equal(t, "load guild g-1: guild not found", err.Error())
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "save guild"))
	assert.NoError(t, WithStack(nil))
}

func TestStackTraceIsPrinted(t *testing.T) {
	err := WithStack(errGuildNotFound)

	assert.Contains(t, fmt.Sprintf("%+v", err), "TestStackTraceIsPrinted")
}

func TestAsFindsWrappedType(t *testing.T) {
	err := Wrap(&codedError{code: "INSUFFICIENT_FUNDS"}, "withdraw")

	var target *codedError
	assert.True(t, As(err, &target))
	assert.Equal(t, "INSUFFICIENT_FUNDS", target.code)
}
