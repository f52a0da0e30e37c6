package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"order-store/internal/models"
	"order-store/internal/pkg/errs"
)

// OrderPostgresRepo is the order aggregate store. It keeps no mutable state of
// its own; every operation is one database transaction.
type OrderPostgresRepo struct {
	db       *gorm.DB
	validate *validator.Validate
	now      func() time.Time
}

type Option func(*OrderPostgresRepo)

// WithClock replaces the clock used for defaulted timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *OrderPostgresRepo) { r.now = now }
}

func NewOrderPostgres(db *gorm.DB, opts ...Option) *OrderPostgresRepo {
	r := &OrderPostgresRepo{
		db:       db,
		validate: validator.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CreateOrder persists a new order together with any delivery, payment and
// items embedded in it, and returns the order's identifier.
func (r *OrderPostgresRepo) CreateOrder(ctx context.Context, o models.Order) (string, error) {
	if err := r.prepareOrder(&o); err != nil {
		return "", err
	}

	err := r.inTx(ctx, nil, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Order{}).
			Where("order_uid = ?", o.OrderUID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errors.Wrapf(errs.ErrDuplicateIdentifier, "order %s", o.OrderUID)
		}

		hdr := o
		hdr.Delivery, hdr.Payment, hdr.Items = nil, nil, nil
		if err := withoutAssociations(tx).Create(&hdr).Error; err != nil {
			return err
		}

		if o.Delivery != nil {
			if err := insertDelivery(tx, o.OrderUID, o.Delivery); err != nil {
				return err
			}
		}
		if o.Payment != nil {
			if err := insertPayment(tx, o.OrderUID, o.Payment); err != nil {
				return err
			}
		}
		for i := range o.Items {
			if err := insertItem(tx, o.OrderUID, &o.Items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", classify(err)
	}
	return o.OrderUID, nil
}

func (r *OrderPostgresRepo) AttachDelivery(ctx context.Context, orderUID string, d models.Delivery) (int64, error) {
	uid, err := orderKey(orderUID, errs.ErrUnknownOrder)
	if err != nil {
		return 0, err
	}
	if err := r.check(&d); err != nil {
		return 0, err
	}

	err = r.inTx(ctx, nil, func(tx *gorm.DB) error {
		if err := lockOrder(tx, uid, errs.ErrUnknownOrder); err != nil {
			return err
		}
		if err := ensureVacant(tx, &models.Delivery{}, uid); err != nil {
			return err
		}
		return insertDelivery(tx, uid, &d)
	})
	if err != nil {
		return 0, classify(err)
	}
	return d.DeliveryID, nil
}

// AttachPayment stores the order's payment. A zero payment_dt is stamped with
// the current unix time.
func (r *OrderPostgresRepo) AttachPayment(ctx context.Context, orderUID string, p models.Payment) (int64, error) {
	uid, err := orderKey(orderUID, errs.ErrUnknownOrder)
	if err != nil {
		return 0, err
	}
	if p.PaymentDt == 0 {
		p.PaymentDt = r.now().Unix()
	}
	if err := r.check(&p); err != nil {
		return 0, err
	}

	err = r.inTx(ctx, nil, func(tx *gorm.DB) error {
		if err := lockOrder(tx, uid, errs.ErrUnknownOrder); err != nil {
			return err
		}
		if err := ensureVacant(tx, &models.Payment{}, uid); err != nil {
			return err
		}
		return insertPayment(tx, uid, &p)
	})
	if err != nil {
		return 0, classify(err)
	}
	return p.PaymentID, nil
}

func (r *OrderPostgresRepo) AddItem(ctx context.Context, orderUID string, it models.Item) (int64, error) {
	uid, err := orderKey(orderUID, errs.ErrUnknownOrder)
	if err != nil {
		return 0, err
	}
	if err := r.check(&it); err != nil {
		return 0, err
	}

	err = r.inTx(ctx, nil, func(tx *gorm.DB) error {
		if err := lockOrder(tx, uid, errs.ErrUnknownOrder); err != nil {
			return err
		}
		return insertItem(tx, uid, &it)
	})
	if err != nil {
		return 0, classify(err)
	}
	return it.ItemID, nil
}

// Get returns the whole aggregate read from a single snapshot.
func (r *OrderPostgresRepo) Get(ctx context.Context, orderUID string) (models.Order, error) {
	uid, err := orderKey(orderUID, errs.ErrNotFound)
	if err != nil {
		return models.Order{}, err
	}

	var o models.Order
	err = r.inTx(ctx, r.readOptions(), func(tx *gorm.DB) error {
		err := preloadAggregate(tx).
			Where("order_uid = ?", uid).
			First(&o).Error
		if gorm.IsRecordNotFoundError(err) {
			return errors.Wrapf(errs.ErrNotFound, "order %s", uid)
		}
		return err
	})
	if err != nil {
		return models.Order{}, classify(err)
	}
	normalize(&o)
	return o, nil
}

// ListOrders returns up to limit aggregates, newest first. limit <= 0 means all.
func (r *OrderPostgresRepo) ListOrders(ctx context.Context, limit int) ([]models.Order, error) {
	var out []models.Order
	err := r.inTx(ctx, r.readOptions(), func(tx *gorm.DB) error {
		q := preloadAggregate(tx).Order("date_created DESC").Order("order_uid")
		if limit > 0 {
			q = q.Limit(limit)
		}
		return q.Find(&out).Error
	})
	if err != nil {
		return nil, classify(err)
	}
	for i := range out {
		normalize(&out[i])
	}
	return out, nil
}

// Delete removes the order and everything owned by it. The children are swept
// explicitly and the sweep is verified before commit, so the outcome does not
// depend on the engine honouring ON DELETE CASCADE.
func (r *OrderPostgresRepo) Delete(ctx context.Context, orderUID string) error {
	uid, err := orderKey(orderUID, errs.ErrNotFound)
	if err != nil {
		return err
	}

	err = r.inTx(ctx, nil, func(tx *gorm.DB) error {
		if err := lockOrder(tx, uid, errs.ErrNotFound); err != nil {
			return err
		}
		for _, child := range ownedModels() {
			if err := tx.Where("order_uid = ?", uid).Delete(child).Error; err != nil {
				return err
			}
		}

		res := tx.Where("order_uid = ?", uid).Delete(&models.Order{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return errors.Wrapf(errs.ErrNotFound, "order %s", uid)
		}
		return verifySwept(tx, uid)
	})
	return classify(err)
}

func (r *OrderPostgresRepo) prepareOrder(o *models.Order) error {
	if o.OrderUID == "" {
		o.OrderUID = uuid.New().String()
	} else {
		id, err := uuid.Parse(o.OrderUID)
		if err != nil {
			return errs.NewValidationError(fmt.Sprintf("Order.OrderUID: %v", err))
		}
		o.OrderUID = id.String()
	}

	now := r.now().UTC().Truncate(time.Microsecond)
	if o.DateCreated.IsZero() {
		o.DateCreated = now
	} else {
		o.DateCreated = o.DateCreated.UTC().Truncate(time.Microsecond)
	}

	// the caller keeps its own children
	*o = o.Clone()
	if o.Payment != nil && o.Payment.PaymentDt == 0 {
		o.Payment.PaymentDt = now.Unix()
	}

	return r.check(o)
}

func (r *OrderPostgresRepo) check(v interface{}) error {
	if err := r.validate.Struct(v); err != nil {
		return errs.NewValidationErrorWithCause(err)
	}
	return nil
}

// orderKey canonicalises an order identifier. Anything that is not a UUID
// cannot name a stored order.
func orderKey(orderUID string, missing error) (string, error) {
	id, err := uuid.Parse(orderUID)
	if err != nil {
		return "", errors.Wrapf(missing, "order %q", orderUID)
	}
	return id.String(), nil
}

func withoutAssociations(tx *gorm.DB) *gorm.DB {
	return tx.
		Set("gorm:save_associations", false).
		Set("gorm:association_autocreate", false).
		Set("gorm:association_autoupdate", false)
}

func insertDelivery(tx *gorm.DB, uid string, d *models.Delivery) error {
	d.DeliveryID = 0
	d.OrderUID = uid
	return tx.Model(&models.Delivery{}).Create(d).Error
}

func insertPayment(tx *gorm.DB, uid string, p *models.Payment) error {
	p.PaymentID = 0
	p.OrderUID = uid
	return tx.Model(&models.Payment{}).Create(p).Error
}

func insertItem(tx *gorm.DB, uid string, it *models.Item) error {
	it.ItemID = 0
	it.OrderUID = uid
	return tx.Model(&models.Item{}).Create(it).Error
}

func ensureVacant(tx *gorm.DB, model ownedModel, uid string) error {
	var count int64
	if err := tx.Model(model).Where("order_uid = ?", uid).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.Wrapf(errs.ErrAlreadyAttached, "%s for order %s", model.TableName(), uid)
	}
	return nil
}

type ownedModel interface {
	TableName() string
}

func ownedModels() []ownedModel {
	return []ownedModel{&models.Item{}, &models.Payment{}, &models.Delivery{}}
}

func verifySwept(tx *gorm.DB, uid string) error {
	for _, child := range ownedModels() {
		var count int64
		if err := tx.Model(child).Where("order_uid = ?", uid).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errors.Wrapf(errs.ErrIntegrityViolation,
				"%d %s rows still reference order %s", count, child.TableName(), uid)
		}
	}
	return nil
}

func preloadAggregate(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Delivery").
		Preload("Payment").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("item_id")
		})
}

func normalize(o *models.Order) {
	o.DateCreated = o.DateCreated.UTC()
	if o.Items == nil {
		o.Items = []models.Item{}
	}
}
