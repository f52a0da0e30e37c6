package models

type Delivery struct {
	DeliveryID int64  `json:"-"       gorm:"column:delivery_id;primary_key"`
	OrderUID   string `json:"-"       gorm:"column:order_uid"`
	Name       string `json:"name"    gorm:"column:name"    validate:"required"`
	Phone      string `json:"phone"   gorm:"column:phone"   validate:"required"`
	Zip        string `json:"zip"     gorm:"column:zip"     validate:"required"`
	City       string `json:"city"    gorm:"column:city"    validate:"required"`
	Address    string `json:"address" gorm:"column:address" validate:"required"`
	Region     string `json:"region"  gorm:"column:region"  validate:"required"`
	Email      string `json:"email"   gorm:"column:email"   validate:"required"`
}

func (Delivery) TableName() string { return "delivery" }
