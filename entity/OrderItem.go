package entity

type OrderItem struct {
	ID      string `gorm:"primaryKey" json:"-"`
	OrderID string `gorm:"index" json:"-"`

	MenuItemID string `json:"menuId"`
	Name       string `json:"name"` // menu item name at order time
	Quantity   int    `json:"quantity"`
}
