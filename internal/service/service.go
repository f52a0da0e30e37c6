package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"order-store/internal/models"
	"order-store/internal/repository"
)

type Order interface {
	CreateOrder(ctx context.Context, order models.Order) (string, error)
	AttachDelivery(ctx context.Context, uid string, d models.Delivery) (int64, error)
	AttachPayment(ctx context.Context, uid string, p models.Payment) (int64, error)
	AddItem(ctx context.Context, uid string, it models.Item) (int64, error)
	GetOrder(ctx context.Context, uid string) (models.Order, error)
	ListOrders(ctx context.Context, limit int) ([]models.Order, error)
	DeleteOrder(ctx context.Context, uid string) error

	WarmCache(ctx context.Context, limit int) (int, error)
	PurgeCache() int

	HandleMessage(ctx context.Context, payload []byte) error
}

type Service struct {
	repository.OrderCache
	repository.OrderStore

	v *validator.Validate
}

func NewService(repository *repository.Repository) *Service {
	return &Service{
		OrderCache: repository.OrderCache,
		OrderStore: repository.OrderStore,
		v:          validator.New(),
	}
}
