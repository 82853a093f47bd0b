package services

import (
	"errors"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/minsmanse/bar/entity"
	"github.com/minsmanse/bar/repository"
)

type OrderService struct {
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	Notifier OrderNotifier
}

func NewOrderService(repo *repository.OrderRepository, menuRepo *repository.MenuRepository, notifier OrderNotifier) *OrderService {
	return &OrderService{Repo: repo, MenuRepo: menuRepo, Notifier: notifier}
}

// ----- DTOs from Controller -----

type PlaceOrderItemIn struct {
	MenuID   string `json:"menuId" binding:"required"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type PlaceOrderReq struct {
	UserName       string             `json:"userName" binding:"required"`
	RequestMessage string             `json:"requestMessage"`
	Items          []PlaceOrderItemIn `json:"items" binding:"required,min=1"`
}

// ----- Place -----

// Place validates the draft, persists it, then announces it. Nothing is
// broadcast unless the order durably saved: announcing an order that was
// silently dropped would be worse than a failed request.
func (s *OrderService) Place(req *PlaceOrderReq) (*entity.Order, error) {
	if strings.TrimSpace(req.UserName) == "" {
		return nil, newValidationError("userName is required")
	}
	if len(req.Items) == 0 {
		return nil, newValidationError("items is required")
	}

	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Quantity < 1 {
			return nil, newValidationError("quantity must be at least 1")
		}
		// the name in the request is display hint only; snapshot the real one
		m, err := s.MenuRepo.FindByID(it.MenuID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newValidationError("unknown menu item: " + it.MenuID)
		}
		if err != nil {
			return nil, err
		}
		items = append(items, entity.OrderItem{MenuItemID: m.ID, Name: m.Name, Quantity: it.Quantity})
	}

	o := &entity.Order{
		UserName:       strings.TrimSpace(req.UserName),
		RequestMessage: req.RequestMessage,
		Items:          items,
	}
	if err := s.Repo.Create(o); err != nil {
		return nil, err
	}
	s.Notifier.OrderCreated(o)
	return o, nil
}

// ----- Status -----

// SetStatus applies the one-way pending → completed policy. Repeating the
// current status is an idempotent no-op and is not re-broadcast; leaving the
// terminal state is rejected. The store itself stays mechanism-only.
func (s *OrderService) SetStatus(id, status string) (*entity.Order, error) {
	if status != entity.OrderPending && status != entity.OrderCompleted {
		return nil, newValidationError("unknown status: " + status)
	}

	o, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if o.Status == status {
		return o, nil
	}
	if o.Status == entity.OrderCompleted {
		return nil, ErrCompletedOrder
	}

	if err := s.Repo.UpdateStatus(o.ID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	o.Status = status
	s.Notifier.OrderUpdated(o)
	return o, nil
}

func (s *OrderService) MarkCompleted(id string) (*entity.Order, error) {
	return s.SetStatus(id, entity.OrderCompleted)
}

// ----- Reads -----

func (s *OrderService) List() ([]entity.Order, error) {
	return s.Repo.List()
}

// History resolves a guest's client-held id list, newest first. Unknown ids
// are omitted, not errors: guests keep ids across menu resets.
func (s *OrderService) History(ids []string) ([]entity.Order, error) {
	orders, err := s.Repo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}
