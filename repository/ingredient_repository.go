package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/minsmanse/bar/entity"
)

type IngredientRepository struct {
	DB *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{DB: db}
}

func (r *IngredientRepository) Create(ing *entity.Ingredient) error {
	ing.ID = uuid.NewString()
	ing.CreatedAt = time.Now()
	return r.DB.Create(ing).Error
}

func (r *IngredientRepository) List() ([]entity.Ingredient, error) {
	var out []entity.Ingredient
	err := r.DB.Order("created_at ASC").Find(&out).Error
	return out, err
}

func (r *IngredientRepository) FindByIDs(ids []string) ([]entity.Ingredient, error) {
	var out []entity.Ingredient
	err := r.DB.Where("id IN ?", ids).Find(&out).Error
	return out, err
}

// Delete reports how many rows went away so the service can 404 on unknown ids.
func (r *IngredientRepository) Delete(id string) (int64, error) {
	res := r.DB.Delete(&entity.Ingredient{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
