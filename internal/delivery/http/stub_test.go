package http_test

import (
	"context"
	"fmt"

	"order-store/internal/models"
	"order-store/internal/service"
)

type svcStub struct {
	create         func(order models.Order) (string, error)
	attachDelivery func(uid string, d models.Delivery) (int64, error)
	attachPayment  func(uid string, p models.Payment) (int64, error)
	addItem        func(uid string, it models.Item) (int64, error)
	get            func(uid string) (models.Order, error)
	list           func(limit int) ([]models.Order, error)
	del            func(uid string) error

	handle func(ctx context.Context, payload []byte) error
}

var _ service.Order = (*svcStub)(nil)

func (s *svcStub) CreateOrder(_ context.Context, order models.Order) (string, error) {
	if s.create != nil {
		return s.create(order)
	}
	return "", fmt.Errorf("not implemented")
}

func (s *svcStub) AttachDelivery(_ context.Context, uid string, d models.Delivery) (int64, error) {
	if s.attachDelivery != nil {
		return s.attachDelivery(uid, d)
	}
	return 0, fmt.Errorf("not implemented")
}

func (s *svcStub) AttachPayment(_ context.Context, uid string, p models.Payment) (int64, error) {
	if s.attachPayment != nil {
		return s.attachPayment(uid, p)
	}
	return 0, fmt.Errorf("not implemented")
}

func (s *svcStub) AddItem(_ context.Context, uid string, it models.Item) (int64, error) {
	if s.addItem != nil {
		return s.addItem(uid, it)
	}
	return 0, fmt.Errorf("not implemented")
}

func (s *svcStub) GetOrder(_ context.Context, uid string) (models.Order, error) {
	if s.get != nil {
		return s.get(uid)
	}
	return models.Order{}, fmt.Errorf("not implemented")
}

func (s *svcStub) ListOrders(_ context.Context, limit int) ([]models.Order, error) {
	if s.list != nil {
		return s.list(limit)
	}
	return nil, nil
}

func (s *svcStub) DeleteOrder(_ context.Context, uid string) error {
	if s.del != nil {
		return s.del(uid)
	}
	return nil
}

func (s *svcStub) WarmCache(context.Context, int) (int, error) { return 0, nil }
func (s *svcStub) PurgeCache() int                             { return 0 }

func (s *svcStub) HandleMessage(ctx context.Context, payload []byte) error {
	if s.handle != nil {
		return s.handle(ctx, payload)
	}
	return nil
}
