package entity

import "time"

type Ingredient struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	Name       string    `json:"name"`
	AbvPercent float64   `json:"abv"` // 0–100
	Image      string    `json:"image,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
