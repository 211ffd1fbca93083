package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"modhub/backend/internal/models"
)

func TestGamePolicyOwnerOnly(t *testing.T) {
	game := &models.Game{Ownable: models.Ownable{UserID: 1}}
	var p GamePolicy

	assert.True(t, p.CanUpdate(1, game))
	assert.True(t, p.CanDelete(1, game))
	assert.False(t, p.CanUpdate(2, game))
	assert.False(t, p.CanDelete(2, game))
	assert.False(t, p.CanUpdate(1, nil))
}

func TestModPolicyDualOwner(t *testing.T) {
	parent := &models.Game{Ownable: models.Ownable{UserID: 2}}
	mod := &models.Mod{Ownable: models.Ownable{UserID: 1}, Game: parent}
	var p ModPolicy

	// both the mod's owner and the parent game's owner may mutate
	assert.True(t, p.CanUpdate(1, mod))
	assert.True(t, p.CanUpdate(2, mod))
	assert.False(t, p.CanUpdate(3, mod))

	assert.True(t, p.CanDelete(1, mod))
	assert.True(t, p.CanDelete(2, mod))
	assert.False(t, p.CanDelete(3, mod))

	assert.True(t, p.CanForceDelete(1, mod))
	assert.True(t, p.CanForceDelete(2, mod))
	assert.False(t, p.CanForceDelete(3, mod))
}

func TestModPolicyWithoutLoadedParent(t *testing.T) {
	mod := &models.Mod{Ownable: models.Ownable{UserID: 1}}
	var p ModPolicy

	assert.True(t, p.CanUpdate(1, mod))
	assert.False(t, p.CanUpdate(2, mod), "parent-owner path requires the game to be loaded")
	assert.False(t, p.CanUpdate(1, nil))
}
