package errs_test

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order-store/internal/pkg/errs"
)

type sample struct {
	Name  string `validate:"required"`
	Price int    `validate:"gte=0"`
}

func TestValidationError(t *testing.T) {
	t.Run("NewValidationError", func(t *testing.T) {
		err := errs.NewValidationError("order_uid: not a uuid")

		assert.Equal(t, "validation failed: order_uid: not a uuid", err.Error())
		require.NoError(t, err.Cause)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("humanizes validator errors", func(t *testing.T) {
		cause := validator.New().Struct(sample{Price: -1})
		err := errs.NewValidationErrorWithCause(cause)

		assert.Equal(t, "validation failed: sample.Name: required; sample.Price: gte=0", err.Error())
		assert.Equal(t, cause, err.Cause)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("plain cause", func(t *testing.T) {
		err := errs.NewValidationErrorWithCause(errors.New("bad\ninput"))
		assert.Equal(t, "validation failed: bad input", err.Error())
	})
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	for _, sentinel := range []error{
		errs.ErrValidation,
		errs.ErrDuplicateIdentifier,
		errs.ErrUnknownOrder,
		errs.ErrNotFound,
		errs.ErrAlreadyAttached,
		errs.ErrIntegrityViolation,
	} {
		wrapped := pkgerrors.Wrapf(sentinel, "order %s", "x")
		require.ErrorIs(t, wrapped, sentinel)
	}

	var verr *errs.ValidationError
	require.True(t, errors.As(pkgerrors.Wrap(errs.NewValidationError("x"), "create"), &verr))
}
