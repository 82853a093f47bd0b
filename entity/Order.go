package entity

import "time"

// Order status values. Transitions are one-way: pending → completed.
const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
)

type Order struct {
	ID             string `gorm:"primaryKey" json:"id"`
	UserName       string `json:"userName"`
	RequestMessage string `json:"requestMessage,omitempty"`
	Status         string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}
