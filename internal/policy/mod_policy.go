package policy

import "modhub/backend/internal/models"

// ModPolicy decides whether an acting user may mutate a mod. A mod is jointly
// controlled by its creator and the owner of the hosting game, so callers
// must resolve the mod with its parent game loaded.
type ModPolicy struct{}

// CanUpdate allows the mod's owner and the parent game's owner.
func (ModPolicy) CanUpdate(userID uint, mod *models.Mod) bool {
	if mod == nil {
		return false
	}
	if userID == mod.OwnerID() {
		return true
	}
	return mod.Game != nil && userID == mod.Game.OwnerID()
}

// CanDelete mirrors CanUpdate.
func (p ModPolicy) CanDelete(userID uint, mod *models.Mod) bool {
	return p.CanUpdate(userID, mod)
}

// CanForceDelete mirrors CanUpdate.
func (p ModPolicy) CanForceDelete(userID uint, mod *models.Mod) bool {
	return p.CanUpdate(userID, mod)
}
