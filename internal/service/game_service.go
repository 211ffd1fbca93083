package service

import (
	"modhub/backend/internal/models"
	"modhub/backend/internal/repository"
)

// GameService is the narrow facade game controllers depend on. Every method
// delegates directly to the bound repository.
type GameService struct {
	repo *repository.GameRepository
}

// NewGameService builds a game service over repo.
func NewGameService(repo *repository.GameRepository) *GameService {
	return &GameService{repo: repo}
}

func (s *GameService) Find(id uint, withs ...string) (*models.Game, error) {
	return s.repo.Find(id, withs...)
}

func (s *GameService) FindOrFail(id uint, withs ...string) (*models.Game, error) {
	return s.repo.FindOrFail(id, withs...)
}

func (s *GameService) All(withs ...string) ([]models.Game, error) {
	return s.repo.All(withs...)
}

func (s *GameService) Paginate(perPage, page int) (*repository.Page[models.Game], error) {
	return s.repo.Paginate(perPage, page)
}

func (s *GameService) Create(data map[string]any) (*models.Game, error) {
	return s.repo.Create(data)
}

func (s *GameService) BulkCreate(dataset []map[string]any) error {
	return s.repo.BulkCreate(dataset)
}

func (s *GameService) Update(data map[string]any, id uint) (*models.Game, error) {
	return s.repo.Update(data, id)
}

func (s *GameService) Delete(id uint) error {
	return s.repo.Delete(id)
}

func (s *GameService) DeleteMany(ids []uint) error {
	return s.repo.DeleteMany(ids)
}

func (s *GameService) ForceDelete(id uint) error {
	return s.repo.ForceDelete(id)
}

func (s *GameService) Restore(id uint) error {
	return s.repo.Restore(id)
}

func (s *GameService) RestoreMany(ids []uint) error {
	return s.repo.RestoreMany(ids)
}
