package services

import (
	"strings"

	"github.com/minsmanse/bar/entity"
	"github.com/minsmanse/bar/repository"
)

type IngredientService struct {
	Repo *repository.IngredientRepository
}

func NewIngredientService(repo *repository.IngredientRepository) *IngredientService {
	return &IngredientService{Repo: repo}
}

type CreateIngredientReq struct {
	Name       string  `json:"name" binding:"required"`
	AbvPercent float64 `json:"abv" binding:"min=0,max=100"`
	Image      string  `json:"image"`
}

func (s *IngredientService) Create(req *CreateIngredientReq) (*entity.Ingredient, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, newValidationError("name is required")
	}
	if req.AbvPercent < 0 || req.AbvPercent > 100 {
		return nil, newValidationError("abv must be between 0 and 100")
	}
	ing := &entity.Ingredient{
		Name:       strings.TrimSpace(req.Name),
		AbvPercent: req.AbvPercent,
		Image:      req.Image,
	}
	if err := s.Repo.Create(ing); err != nil {
		return nil, err
	}
	return ing, nil
}

func (s *IngredientService) List() ([]entity.Ingredient, error) {
	return s.Repo.List()
}

// Delete removes an ingredient from the palette. Saved menu items keep their
// snapshot copies, so there is nothing to cascade.
func (s *IngredientService) Delete(id string) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
