package service

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"order-store/internal/pkg/errs"
)

var (
	operations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orderstore",
		Name:      "operations_total",
		Help:      "Store operations by outcome.",
	}, []string{"op", "result"})

	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orderstore",
		Name:      "cache_lookups_total",
		Help:      "Order cache lookups by hit or miss.",
	}, []string{"result"})
)

func observe(op string, err error) {
	operations.WithLabelValues(op, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, errs.ErrValidation), errors.Is(err, ErrDecode):
		return "invalid"
	case errors.Is(err, errs.ErrNotFound), errors.Is(err, errs.ErrUnknownOrder):
		return "not_found"
	case errors.Is(err, errs.ErrDuplicateIdentifier), errors.Is(err, errs.ErrAlreadyAttached):
		return "conflict"
	default:
		return "error"
	}
}
