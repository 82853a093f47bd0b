package entity

import "time"

type MenuItem struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`

	// snapshot values, computed once when the item is saved
	FinalAbv      float64 `json:"finalAbv"`
	TotalVolumeMl float64 `json:"totalVolume"`

	CreatedAt time.Time `json:"createdAt"`

	Portions []MenuPortion `gorm:"foreignKey:MenuItemID" json:"items"`
}
