package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"order-store/internal/models"
	"order-store/internal/pkg/errs"
)

func (s *Service) CreateOrder(ctx context.Context, order models.Order) (string, error) {
	uid, err := s.OrderStore.CreateOrder(ctx, order)
	observe("create_order", err)
	if err != nil {
		return "", err
	}
	s.OrderCache.DeleteOrder(uid)
	return uid, nil
}

func (s *Service) AttachDelivery(ctx context.Context, uid string, d models.Delivery) (int64, error) {
	id, err := s.OrderStore.AttachDelivery(ctx, uid, d)
	observe("attach_delivery", err)
	if err != nil {
		return 0, err
	}
	s.OrderCache.DeleteOrder(cacheKey(uid))
	return id, nil
}

func (s *Service) AttachPayment(ctx context.Context, uid string, p models.Payment) (int64, error) {
	id, err := s.OrderStore.AttachPayment(ctx, uid, p)
	observe("attach_payment", err)
	if err != nil {
		return 0, err
	}
	s.OrderCache.DeleteOrder(cacheKey(uid))
	return id, nil
}

func (s *Service) AddItem(ctx context.Context, uid string, it models.Item) (int64, error) {
	id, err := s.OrderStore.AddItem(ctx, uid, it)
	observe("add_item", err)
	if err != nil {
		return 0, err
	}
	s.OrderCache.DeleteOrder(cacheKey(uid))
	return id, nil
}

// GetOrder serves from the cache and falls back to the store on a miss.
func (s *Service) GetOrder(ctx context.Context, uid string) (models.Order, error) {
	key := cacheKey(uid)
	if ord, err := s.OrderCache.GetOrder(key); err == nil {
		cacheLookups.WithLabelValues("hit").Inc()
		return ord.Clone(), nil
	}
	cacheLookups.WithLabelValues("miss").Inc()

	fill := s.OrderCache.BeginFill(key)
	ord, err := s.OrderStore.Get(ctx, uid)
	observe("get_order", err)
	if err != nil {
		s.OrderCache.EndFill(fill, nil)
		return models.Order{}, err
	}
	cached := ord.Clone()
	if !s.OrderCache.EndFill(fill, &cached) {
		logrus.WithField("uid", key).Debug("order changed during read, not cached")
	}
	return ord, nil
}

func (s *Service) ListOrders(ctx context.Context, limit int) ([]models.Order, error) {
	orders, err := s.OrderStore.ListOrders(ctx, limit)
	observe("list_orders", err)
	return orders, err
}

func (s *Service) DeleteOrder(ctx context.Context, uid string) error {
	err := s.OrderStore.Delete(ctx, uid)
	observe("delete_order", err)
	s.OrderCache.DeleteOrder(cacheKey(uid))
	if errors.Is(err, errs.ErrIntegrityViolation) {
		logrus.WithError(err).WithField("uid", uid).Error("order delete left children behind, rolled back")
	}
	return err
}

// WarmCache loads up to limit recent orders into the cache. Orders that no
// longer pass validation are skipped.
func (s *Service) WarmCache(ctx context.Context, limit int) (int, error) {
	orders, err := s.OrderStore.ListOrders(ctx, limit)
	if err != nil {
		return 0, err
	}

	loaded := 0
	for _, o := range orders {
		if err := s.v.Struct(o); err != nil {
			logrus.WithError(err).WithField("uid", o.OrderUID).Warn("skip invalid order from DB")
			continue
		}
		s.OrderCache.PutOrder(o.OrderUID, o)
		loaded++
	}
	return loaded, nil
}

func (s *Service) PurgeCache() int {
	return s.OrderCache.PurgeExpired()
}

// HandleMessage stores one order document received from the broker. A
// redelivered document whose order already exists is acknowledged.
func (s *Service) HandleMessage(ctx context.Context, payload []byte) error {
	var ord models.Order
	if err := json.Unmarshal(payload, &ord); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}

	uid, err := s.CreateOrder(ctx, ord)
	if errors.Is(err, errs.ErrDuplicateIdentifier) {
		logrus.WithField("uid", ord.OrderUID).Info("order already stored, skip redelivery")
		return nil
	}
	if err != nil {
		return err
	}
	logrus.WithField("uid", uid).Debug("order stored from message")
	return nil
}

func cacheKey(uid string) string {
	if id, err := uuid.Parse(uid); err == nil {
		return id.String()
	}
	return uid
}
