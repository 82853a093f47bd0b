package services

import (
	"strings"

	"github.com/minsmanse/bar/entity"
	"github.com/minsmanse/bar/pkg/blend"
	"github.com/minsmanse/bar/repository"
)

type MenuService struct {
	Repo    *repository.MenuRepository
	IngRepo *repository.IngredientRepository
}

func NewMenuService(repo *repository.MenuRepository, ingRepo *repository.IngredientRepository) *MenuService {
	return &MenuService{Repo: repo, IngRepo: ingRepo}
}

// ----- DTOs from Controller -----

type MenuPortionIn struct {
	IngredientID string  `json:"ingredientId" binding:"required"`
	VolumeMl     float64 `json:"volume" binding:"required,gt=0"`
}

type CreateMenuItemReq struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Portions    []MenuPortionIn `json:"items" binding:"required,min=1"`
}

// Create composes a menu item from ingredient pours. Ingredient name and abv
// are snapshotted into the portions and the blend totals are computed once
// here; later ingredient changes never rewrite a saved recipe.
func (s *MenuService) Create(req *CreateMenuItemReq) (*entity.MenuItem, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, newValidationError("name is required")
	}
	if len(req.Portions) == 0 {
		return nil, newValidationError("items is required")
	}

	ids := make([]string, 0, len(req.Portions))
	for _, p := range req.Portions {
		if p.VolumeMl <= 0 {
			return nil, newValidationError("volume must be positive")
		}
		ids = append(ids, p.IngredientID)
	}
	ingredients, err := s.IngRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entity.Ingredient, len(ingredients))
	for _, ing := range ingredients {
		byID[ing.ID] = ing
	}

	portions := make([]entity.MenuPortion, 0, len(req.Portions))
	pours := make([]blend.Portion, 0, len(req.Portions))
	for _, p := range req.Portions {
		ing, ok := byID[p.IngredientID]
		if !ok {
			return nil, newValidationError("unknown ingredient: " + p.IngredientID)
		}
		portions = append(portions, entity.MenuPortion{
			IngredientID:   ing.ID,
			IngredientName: ing.Name,
			AbvPercent:     ing.AbvPercent,
			Image:          ing.Image,
			VolumeMl:       p.VolumeMl,
		})
		pours = append(pours, blend.Portion{VolumeMl: p.VolumeMl, AbvPercent: ing.AbvPercent})
	}

	mix := blend.Mix(pours)
	item := &entity.MenuItem{
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		Image:         req.Image,
		FinalAbv:      mix.FinalAbv,
		TotalVolumeMl: mix.TotalVolumeMl,
		Portions:      portions,
	}
	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.Repo.List()
}
