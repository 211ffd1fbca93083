package policy

import "modhub/backend/internal/models"

// GamePolicy decides whether an acting user may mutate a game. Evaluation is
// pure; callers must check it before touching the data layer.
type GamePolicy struct{}

// CanUpdate allows only the owner.
func (GamePolicy) CanUpdate(userID uint, game *models.Game) bool {
	return game != nil && userID == game.OwnerID()
}

// CanDelete mirrors CanUpdate.
func (p GamePolicy) CanDelete(userID uint, game *models.Game) bool {
	return p.CanUpdate(userID, game)
}
