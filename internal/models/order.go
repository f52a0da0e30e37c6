package models

import (
	"time"
)

// Order is the aggregate root. Delivery and Payment are nil until attached.
type Order struct {
	OrderUID          string    `json:"order_uid"          gorm:"column:order_uid;primary_key"  validate:"omitempty,uuid"`
	TrackNumber       string    `json:"track_number"       gorm:"column:track_number"           validate:"required"`
	Entry             string    `json:"entry"              gorm:"column:entry"                  validate:"required"`
	Locale            string    `json:"locale"             gorm:"column:locale"`
	InternalSignature string    `json:"internal_signature" gorm:"column:internal_signature"`
	CustomerID        string    `json:"customer_id"        gorm:"column:customer_id"            validate:"required"`
	DeliveryService   string    `json:"delivery_service"   gorm:"column:delivery_service"`
	ShardKey          string    `json:"shardkey"           gorm:"column:shardkey"`
	SmID              int       `json:"sm_id"              gorm:"column:sm_id"                  validate:"gte=0"`
	DateCreated       time.Time `json:"date_created"       gorm:"column:date_created"`
	OofShard          string    `json:"oof_shard"          gorm:"column:oof_shard"`
	Delivery          *Delivery `json:"delivery,omitempty" gorm:"foreignkey:OrderUID;association_foreignkey:OrderUID"`
	Payment           *Payment  `json:"payment,omitempty"  gorm:"foreignkey:OrderUID;association_foreignkey:OrderUID"`
	Items             []Item    `json:"items"              gorm:"foreignkey:OrderUID;association_foreignkey:OrderUID" validate:"dive"`
}

func (Order) TableName() string { return "orders" }

// Clone returns a copy that shares no pointers or slices with o.
func (o Order) Clone() Order {
	if o.Delivery != nil {
		d := *o.Delivery
		o.Delivery = &d
	}
	if o.Payment != nil {
		p := o.Payment.clone()
		o.Payment = &p
	}
	if o.Items != nil {
		items := make([]Item, len(o.Items))
		for i := range o.Items {
			items[i] = o.Items[i].clone()
		}
		o.Items = items
	}
	return o
}

// Int returns a pointer to v, for filling payment and item amounts.
func Int(v int) *int { return &v }

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
