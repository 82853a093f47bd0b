package entity

// MenuPortion is one ingredient pour inside a menu item. Name, abv and image
// are copied from the ingredient at save time so later ingredient edits or
// deletes never change a saved recipe.
type MenuPortion struct {
	ID         string `gorm:"primaryKey" json:"-"`
	MenuItemID string `gorm:"index" json:"-"`

	IngredientID   string  `json:"ingredientId"`
	IngredientName string  `json:"name"`
	AbvPercent     float64 `json:"abv"`
	Image          string  `json:"image,omitempty"`
	VolumeMl       float64 `json:"volume"`
}
