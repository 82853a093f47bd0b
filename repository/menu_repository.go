package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/minsmanse/bar/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// Create persists the item and its portions in one transaction.
func (r *MenuRepository) Create(item *entity.MenuItem) error {
	item.ID = uuid.NewString()
	item.CreatedAt = time.Now()
	for i := range item.Portions {
		item.Portions[i].ID = uuid.NewString()
		item.Portions[i].MenuItemID = item.ID
	}
	return r.DB.Create(item).Error
}

func (r *MenuRepository) List() ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	err := r.DB.Preload("Portions").Order("created_at ASC").Find(&out).Error
	return out, err
}

func (r *MenuRepository) FindByID(id string) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.Preload("Portions").First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
