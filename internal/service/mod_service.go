package service

import (
	"modhub/backend/internal/models"
	"modhub/backend/internal/repository"
)

// ModService is the narrow facade mod controllers depend on. Every method
// delegates directly to the bound repository.
type ModService struct {
	repo *repository.ModRepository
}

// NewModService builds a mod service over repo.
func NewModService(repo *repository.ModRepository) *ModService {
	return &ModService{repo: repo}
}

func (s *ModService) Find(id uint, withs ...string) (*models.Mod, error) {
	return s.repo.Find(id, withs...)
}

func (s *ModService) FindOrFail(id uint, withs ...string) (*models.Mod, error) {
	return s.repo.FindOrFail(id, withs...)
}

func (s *ModService) All(withs ...string) ([]models.Mod, error) {
	return s.repo.All(withs...)
}

func (s *ModService) Paginate(perPage, page int) (*repository.Page[models.Mod], error) {
	return s.repo.Paginate(perPage, page)
}

// PaginateByGame pages through the mods of a single game.
func (s *ModService) PaginateByGame(gameID uint, perPage, page int) (*repository.Page[models.Mod], error) {
	return s.repo.Where(map[string]any{"game_id": gameID}).Paginate(perPage, page)
}

func (s *ModService) Create(data map[string]any) (*models.Mod, error) {
	return s.repo.Create(data)
}

func (s *ModService) BulkCreate(dataset []map[string]any) error {
	return s.repo.BulkCreate(dataset)
}

func (s *ModService) Update(data map[string]any, id uint) (*models.Mod, error) {
	return s.repo.Update(data, id)
}

func (s *ModService) Delete(id uint) error {
	return s.repo.Delete(id)
}

func (s *ModService) DeleteMany(ids []uint) error {
	return s.repo.DeleteMany(ids)
}

func (s *ModService) ForceDelete(id uint) error {
	return s.repo.ForceDelete(id)
}

func (s *ModService) Restore(id uint) error {
	return s.repo.Restore(id)
}

func (s *ModService) RestoreMany(ids []uint) error {
	return s.repo.RestoreMany(ids)
}
