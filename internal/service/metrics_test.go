package service

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"order-store/internal/pkg/errs"
)

func TestResultLabel(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{errs.NewValidationError("x"), "invalid"},
		{errors.Wrap(ErrDecode, "bad json"), "invalid"},
		{errors.Wrap(errs.ErrNotFound, "order"), "not_found"},
		{errs.ErrUnknownOrder, "not_found"},
		{errs.ErrDuplicateIdentifier, "conflict"},
		{errs.ErrAlreadyAttached, "conflict"},
		{errs.ErrIntegrityViolation, "error"},
		{errors.New("boom"), "error"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, resultLabel(tt.err), "%v", tt.err)
	}
}

func TestObserve_CountsByOutcome(t *testing.T) {
	before := testutil.ToFloat64(operations.WithLabelValues("add_item", "conflict"))
	observe("add_item", errs.ErrAlreadyAttached)
	observe("add_item", errs.ErrAlreadyAttached)
	assert.Equal(t, before+2, testutil.ToFloat64(operations.WithLabelValues("add_item", "conflict")))
}
