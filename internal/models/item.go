package models

// Item.TrackNumber is stored as sent; it is not required to match the order's.
type Item struct {
	ItemID      int64  `json:"-"            gorm:"column:item_id;primary_key"`
	OrderUID    string `json:"-"            gorm:"column:order_uid"`
	ChrtID      int64  `json:"chrt_id"      gorm:"column:chrt_id"      validate:"required"`
	TrackNumber string `json:"track_number" gorm:"column:track_number" validate:"required"`
	Price       *int   `json:"price"        gorm:"column:price"        validate:"required,gte=0"`
	Rid         string `json:"rid"          gorm:"column:rid"          validate:"required"`
	Name        string `json:"name"         gorm:"column:name"         validate:"required"`
	Sale        *int   `json:"sale"         gorm:"column:sale"         validate:"required,gte=0"`
	Size        string `json:"size"         gorm:"column:size"         validate:"required"`
	TotalPrice  *int   `json:"total_price"  gorm:"column:total_price"  validate:"required,gte=0"`
	NmID        int64  `json:"nm_id"        gorm:"column:nm_id"        validate:"required"`
	Brand       string `json:"brand"        gorm:"column:brand"        validate:"required"`
	Status      *int   `json:"status"       gorm:"column:status"       validate:"required,gte=0"`
}

func (Item) TableName() string { return "items" }

func (it Item) clone() Item {
	it.Price = copyInt(it.Price)
	it.Sale = copyInt(it.Sale)
	it.TotalPrice = copyInt(it.TotalPrice)
	it.Status = copyInt(it.Status)
	return it
}
