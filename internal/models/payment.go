package models

// Payment amounts are integers in the smallest currency unit.
// They are pointers so that an absent amount is rejected while zero is kept.
// PaymentDt is a unix timestamp; zero means "now" at insertion.
type Payment struct {
	PaymentID    int64  `json:"-"             gorm:"column:payment_id;primary_key"`
	OrderUID     string `json:"-"             gorm:"column:order_uid"`
	Transaction  string `json:"transaction"   gorm:"column:transaction"   validate:"required"`
	RequestID    string `json:"request_id"    gorm:"column:request_id"`
	Currency     string `json:"currency"      gorm:"column:currency"      validate:"required"`
	Provider     string `json:"provider"      gorm:"column:provider"      validate:"required"`
	Amount       *int   `json:"amount"        gorm:"column:amount"        validate:"required,gte=0"`
	PaymentDt    int64  `json:"payment_dt"    gorm:"column:payment_dt"    validate:"gte=0"`
	Bank         string `json:"bank"          gorm:"column:bank"          validate:"required"`
	DeliveryCost *int   `json:"delivery_cost" gorm:"column:delivery_cost" validate:"required,gte=0"`
	GoodsTotal   *int   `json:"goods_total"   gorm:"column:goods_total"   validate:"required,gte=0"`
	CustomFee    *int   `json:"custom_fee"    gorm:"column:custom_fee"    validate:"required,gte=0"`
}

func (Payment) TableName() string { return "payment" }

func (p Payment) clone() Payment {
	p.Amount = copyInt(p.Amount)
	p.DeliveryCost = copyInt(p.DeliveryCost)
	p.GoodsTotal = copyInt(p.GoodsTotal)
	p.CustomFee = copyInt(p.CustomFee)
	return p
}
