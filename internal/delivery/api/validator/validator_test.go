package validator

import (
	"testing"

	domainerrors "guildbook/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type depositRequest struct {
	Amount   float64 `validate:"gt=0"`
	Currency string  `validate:"required,oneof=TC TS TO LO"`
}

func TestValidate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&depositRequest{Amount: 1, Currency: "TS"}))

	err := v.Validate(&depositRequest{Amount: 0, Currency: "XX"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Contains(t, err.Error(), "Amount failed gt")
	assert.Contains(t, err.Error(), "Currency failed oneof")
}
