package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"order-store/internal/migrate"
	"order-store/internal/models"
	pg "order-store/internal/repository/postgres"
)

var fixedNow = time.Date(2024, time.March, 7, 12, 30, 45, 123456789, time.UTC)

func openSQLite(t *testing.T, foreignKeys bool) *gorm.DB {
	t.Helper()

	dsn := ":memory:?_foreign_keys=0"
	if foreignKeys {
		dsn = ":memory:?_foreign_keys=1"
	}
	db, err := gorm.Open("sqlite3", dsn)
	require.NoError(t, err)
	db.DB().SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	m, err := migrate.New(db)
	require.NoError(t, err)
	_, err = m.Up(context.Background())
	require.NoError(t, err)
	return db
}

func newStore(t *testing.T) (*pg.OrderPostgresRepo, *gorm.DB) {
	t.Helper()

	db := openSQLite(t, true)
	return pg.NewOrderPostgres(db, pg.WithClock(func() time.Time { return fixedNow })), db
}

func testOrder() models.Order {
	return models.Order{
		TrackNumber:       "WBILMTESTTRACK",
		Entry:             "WBIL",
		Locale:            "en",
		InternalSignature: "",
		CustomerID:        "test",
		DeliveryService:   "meest",
		ShardKey:          "9",
		SmID:              99,
		OofShard:          "1",
	}
}

func testDelivery() models.Delivery {
	return models.Delivery{
		Name:    "Test Testov",
		Phone:   "+9720000000",
		Zip:     "2639809",
		City:    "Kiryat Mozkin",
		Address: "Ploshad Mira 15",
		Region:  "Kraiot",
		Email:   "test@gmail.com",
	}
}

func testPayment() models.Payment {
	return models.Payment{
		Transaction:  "b563feb7b2b84b6test",
		Currency:     "USD",
		Provider:     "wbpay",
		Amount:       models.Int(1817),
		PaymentDt:    1637907727,
		Bank:         "alpha",
		DeliveryCost: models.Int(1500),
		GoodsTotal:   models.Int(317),
		CustomFee:    models.Int(0),
	}
}

func testItem(name string) models.Item {
	return models.Item{
		ChrtID:      9934930,
		TrackNumber: "WBILMTESTTRACK",
		Price:       models.Int(453),
		Rid:         "ab4219087a764ae0btest",
		Name:        name,
		Sale:        models.Int(30),
		Size:        "0",
		TotalPrice:  models.Int(317),
		NmID:        2389212,
		Brand:       "Vivienne Sabo",
		Status:      models.Int(202),
	}
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, uid string) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(model).Where("order_uid = ?", uid).Count(&n).Error)
	return n
}
