// Package fixtures builds realistic fake order aggregates for the publisher
// and for tests.
package fixtures

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"order-store/internal/models"
)

var (
	rangeStart = time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd   = time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// Order returns a complete aggregate with one to three items. Payment totals
// are consistent with the items.
func Order(f *gofakeit.Faker) models.Order {
	uid := f.UUID()
	track := "WB" + f.LetterN(12)
	created := f.DateRange(rangeStart, rangeEnd).UTC().Truncate(time.Second)

	items := make([]models.Item, f.Number(1, 3))
	goods := 0
	for i := range items {
		items[i] = Item(f, track)
		goods += *items[i].TotalPrice
	}
	deliveryCost := f.Number(100, 2000)

	return models.Order{
		OrderUID:    uid,
		TrackNumber: track,
		Entry:       "WBIL",
		Locale:      f.RandomString([]string{"en", "ru"}),

		InternalSignature: "",
		CustomerID:        f.Username(),
		DeliveryService:   f.RandomString([]string{"meest", "dpd", "dhl"}),
		ShardKey:          f.DigitN(1),
		SmID:              f.Number(1, 999),
		DateCreated:       created,
		OofShard:          f.DigitN(1),

		Delivery: &models.Delivery{
			Name:    f.Name(),
			Phone:   f.Phone(),
			Zip:     f.Zip(),
			City:    f.City(),
			Address: f.Street(),
			Region:  f.State(),
			Email:   f.Email(),
		},
		Payment: &models.Payment{
			Transaction:  uid,
			RequestID:    "",
			Currency:     f.RandomString([]string{"USD", "EUR", "RUB"}),
			Provider:     "wbpay",
			Amount:       models.Int(goods + deliveryCost),
			PaymentDt:    created.Unix(),
			Bank:         f.Company(),
			DeliveryCost: models.Int(deliveryCost),
			GoodsTotal:   models.Int(goods),
			CustomFee:    models.Int(0),
		},
		Items: items,
	}
}

func Item(f *gofakeit.Faker, track string) models.Item {
	price := f.Number(100, 1000)
	sale := f.Number(0, 50)
	return models.Item{
		ChrtID:      int64(f.Number(1_000_000, 9_999_999)),
		TrackNumber: track,
		Price:       models.Int(price),
		Rid:         f.UUID(),
		Name:        f.ProductName(),
		Sale:        models.Int(sale),
		Size:        f.RandomString([]string{"0", "S", "M", "L"}),
		TotalPrice:  models.Int(price * (100 - sale) / 100),
		NmID:        int64(f.Number(1_000_000, 9_999_999)),
		Brand:       f.Company(),
		Status:      models.Int(202),
	}
}
