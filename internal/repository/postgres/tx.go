package postgres

import (
	"context"
	"database/sql"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"order-store/internal/models"
	"order-store/internal/pkg/errs"
)

// inTx runs fn in one transaction; any error or panic rolls everything back.
func (r *OrderPostgresRepo) inTx(ctx context.Context, opts *sql.TxOptions, fn func(tx *gorm.DB) error) error {
	tx := r.db.BeginTx(ctx, opts)
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "begin transaction")
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			logrus.WithError(rbErr).Error("rollback failed")
		}
		return err
	}
	return errors.Wrap(tx.Commit().Error, "commit transaction")
}

// readOptions gives aggregate reads a single snapshot so a concurrent delete
// is observed either entirely or not at all.
func (r *OrderPostgresRepo) readOptions() *sql.TxOptions {
	if !isPostgres(r.db) {
		return nil
	}
	return &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
}

// lockOrder checks the order exists and, on postgres, row-locks it for the
// rest of the transaction. Only writers on the same order wait.
func lockOrder(tx *gorm.DB, uid string, missing error) error {
	q := tx
	if isPostgres(tx) {
		q = tx.Set("gorm:query_option", "FOR UPDATE")
	}
	var o models.Order
	err := q.Select("order_uid").Where("order_uid = ?", uid).Limit(1).Find(&o).Error
	if gorm.IsRecordNotFoundError(err) {
		return errors.Wrapf(missing, "order %s", uid)
	}
	return err
}

func isPostgres(db *gorm.DB) bool {
	return db.Dialect().GetName() == "postgres"
}

// classify maps constraint failures caught by postgres onto the store's
// error taxonomy.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case "23505":
		if pqErr.Table == "orders" {
			return errors.Wrap(errs.ErrDuplicateIdentifier, pqErr.Message)
		}
		return errors.Wrap(errs.ErrAlreadyAttached, pqErr.Message)
	case "23503":
		return errors.Wrap(errs.ErrUnknownOrder, pqErr.Message)
	case "23502", "22001", "22P02":
		return errs.NewValidationErrorWithCause(pqErr)
	}
	return err
}
