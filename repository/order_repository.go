package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/minsmanse/bar/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Create assigns the id, timestamp and initial status, then writes the order
// and its items through to the store before returning. Timestamp-derived ids
// collide under concurrent creation, so ids are uuids; newest-first ordering
// for history views comes from created_at instead.
func (r *OrderRepository) Create(o *entity.Order) error {
	o.ID = uuid.NewString()
	o.Status = entity.OrderPending
	o.CreatedAt = time.Now()
	for i := range o.Items {
		o.Items[i].ID = uuid.NewString()
		o.Items[i].OrderID = o.ID
	}
	return r.DB.Create(o).Error
}

func (r *OrderRepository) FindByID(id string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// FindByIDs tolerates unknown ids: they are simply absent from the result.
func (r *OrderRepository) FindByIDs(ids []string) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").Where("id IN ?", ids).Find(&out).Error
	return out, err
}

func (r *OrderRepository) List() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").Order("created_at ASC").Find(&out).Error
	return out, err
}

// UpdateStatus persists the new status. It does not judge the transition;
// that policy belongs to the service layer.
func (r *OrderRepository) UpdateStatus(id, status string) error {
	res := r.DB.Model(&entity.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
