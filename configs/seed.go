package configs

import (
	"time"

	"github.com/google/uuid"

	"github.com/minsmanse/bar/entity"
)

// SeedIngredients fills an empty palette with a starter set so the admin
// screen is usable on first boot. A db that already has ingredients is
// left alone.
func SeedIngredients() error {
	var count int64
	if err := db.Model(&entity.Ingredient{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	starters := []entity.Ingredient{
		{Name: "Vodka", AbvPercent: 40},
		{Name: "White Rum", AbvPercent: 37.5},
		{Name: "Lime Juice", AbvPercent: 0},
		{Name: "Soda Water", AbvPercent: 0},
		{Name: "Orange Juice", AbvPercent: 0},
	}
	for i := range starters {
		starters[i].ID = uuid.NewString()
		starters[i].CreatedAt = time.Now()
	}
	return db.Create(&starters).Error
}
