// AngelaMos | 2026
// errors_test.go

package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("handler: %w", TokenInvalidError())

	assert.True(t, IsAppError(err))
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.Equal(t, "invalid token: invalid token", TokenInvalidError().Error())
}

func TestFormatValidationErrorIsFieldAgnostic(t *testing.T) {
	type req struct {
		Email string `validate:"required"`
		Age   int    `validate:"gte=0"`
	}
	v := validator.New()

	msg := FormatValidationError(v.Struct(req{Age: 1}))
	assert.Equal(t, "missing required fields", msg)
	assert.NotContains(t, msg, "Email")

	msg = FormatValidationError(v.Struct(req{Email: "a", Age: -1}))
	assert.Equal(t, "invalid field values", msg)

	assert.Equal(t, "invalid request", FormatValidationError(errors.New("x")))
}
