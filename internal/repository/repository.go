package repository

import (
	"context"

	"github.com/jinzhu/gorm"

	"order-store/internal/models"
	"order-store/internal/repository/cache"
	"order-store/internal/repository/postgres"
)

// OrderStore is the durable order aggregate store.
type OrderStore interface {
	CreateOrder(ctx context.Context, ord models.Order) (string, error)
	AttachDelivery(ctx context.Context, orderUID string, d models.Delivery) (int64, error)
	AttachPayment(ctx context.Context, orderUID string, p models.Payment) (int64, error)
	AddItem(ctx context.Context, orderUID string, it models.Item) (int64, error)
	Get(ctx context.Context, orderUID string) (models.Order, error)
	Delete(ctx context.Context, orderUID string) error
	ListOrders(ctx context.Context, limit int) ([]models.Order, error)
}

// OrderCache holds recently read aggregates. Read-through fills go through
// BeginFill/EndFill so an invalidation racing the store read wins.
type OrderCache interface {
	PutOrder(uid string, order models.Order)
	GetOrder(uid string) (models.Order, error)
	DeleteOrder(uid string)
	BeginFill(uid string) cache.Fill
	EndFill(f cache.Fill, order *models.Order) bool
	PurgeExpired() int
	Len() int
}

type Repository struct {
	OrderStore
	OrderCache
}

func NewRepository(db *gorm.DB, kv cache.KV) *Repository {
	return &Repository{
		OrderStore: postgres.NewOrderPostgres(db),
		OrderCache: cache.NewOrderCache(kv),
	}
}
