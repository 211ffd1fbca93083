package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"modhub/backend/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Game{}, &models.Mod{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()
	user := models.User{Name: name, Email: name + "@example.com", PasswordHash: "hash"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func newGameRepo(t *testing.T, db *gorm.DB) *GameRepository {
	t.Helper()
	repo, err := NewGameRepository(db)
	require.NoError(t, err)
	return repo
}

func TestSanitizeExplicitAllowList(t *testing.T) {
	db := openTestDB(t)
	repo := newGameRepo(t, db)

	data := map[string]any{
		"name":    "Rogue Knight",
		"user_id": uint(1),
		"id":      uint(999),
		"hacked":  true,
	}
	sanitized := repo.Sanitize(data)

	assert.Equal(t, map[string]any{"name": "Rogue Knight", "user_id": uint(1)}, sanitized)
	assert.Equal(t, sanitized, repo.Sanitize(sanitized), "sanitize must be idempotent")
}

func TestSanitizeDerivedColumns(t *testing.T) {
	db := openTestDB(t)
	repo, err := New[models.User](db)
	require.NoError(t, err)

	sanitized := repo.Sanitize(map[string]any{
		"name":          "alice",
		"email":         "alice@example.com",
		"password_hash": "sneaky",
		"id":            uint(42),
	})

	assert.Equal(t, map[string]any{"name": "alice", "email": "alice@example.com"}, sanitized)
}

func TestCreatePopulatesIdentityAndTimestamps(t *testing.T) {
	db := openTestDB(t)
	repo := newGameRepo(t, db)
	user := seedUser(t, db, "owner")

	game, err := repo.Create(map[string]any{
		"name":    "Rogue Knight",
		"user_id": user.ID,
		"id":      uint(999),
	})
	require.NoError(t, err)

	assert.NotZero(t, game.ID)
	assert.NotEqual(t, uint(999), game.ID)
	assert.Equal(t, "Rogue Knight", game.Name)
	assert.Equal(t, user.ID, game.UserID)
	assert.False(t, game.CreatedAt.IsZero())
	assert.False(t, game.UpdatedAt.IsZero())
}

func TestBulkCreateInsertsBatch(t *testing.T) {
	db := openTestDB(t)
	repo := newGameRepo(t, db)
	user := seedUser(t, db, "owner")

	err := repo.BulkCreate([]map[string]any{
		{"name": "a", "user_id": user.ID, "hacked": true},
		{"name": "b", "user_id": user.ID},
		{"name": "c", "user_id": user.ID},
	})
	require.NoError(t, err)

	games, err := repo.All()
	require.NoError(t, err)
	assert.Len(t, games, 3)
}

func TestFindMissing(t *testing.T) {
	db := openTestDB(t)
	repo := newGameRepo(t, db)

	game, err := repo.Find(12345)
	require.NoError(t, err)
	assert.Nil(t, game)

	_, err = repo.FindOrFail(12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindByFilter(t *testing.T) {
	db := openTestDB(t)
	repo := newGameRepo(t, db)
	u1 := seedUser(t, db, "u1")
	u2 := seedUser(t, db, "u2")

	for _, spec := range []struct {
		name  string
		owner uint
	}{{"alpha", u1.ID}, {"beta", u2.ID}, {"gamma", u2.ID}} {
		_, err := repo.Create(map[string]any{"name": spec.name, "user_id": spec.owner})
		require.NoError(t, err)
	}

	game, err := repo.FindBy(map[string]any{"user_id": u2.ID})
	require.NoError(t, err)
	require.NotNil(t, game)
	assert.Equal(t, "beta", game.Name)

	// pending ordering applies to filter-mode lookups
	game, err = repo.OrderBy(Order{Column: "name", Direction: "desc"}).FindBy(map[string]any{"user_id": u2.ID})
	require.NoError(t, err)
	require.NotNil(t, game)
	assert.Equal(t, "gamma", game.Name)

	missing, err := repo.FindBy(map[string]any{"name": "nope"})
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = repo.FindByOrFail(map[string]any{"name": "nope"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPaginateDefaultOrdering(t *testing.T) {
	db := openTestDB(t)
	repo := newGameRepo(t, db)
	user := seedUser(t, db, "owner")

	var ids []uint
	for _, name := range []string{"c", "a", "b"} {
		game, err := repo.Create(map[string]any{"name": name, "user_id": user.ID})
		require.NoError(t, err)
		ids = append(ids, game.ID)
	}

	page1, err := repo.Paginate(2, 1)
	require.NoError(t, err)
	require.Len(t, page1.Data, 2)
	assert.Equal(t, ids[0], page1.Data[0].ID)
	assert.Equal(t, ids[1], page1.Data[1].ID)
	assert.Equal(t, int64(3), page1.Meta.TotalItems)
	assert.Equal(t, 2, page1.Meta.TotalPages)
	assert.Equal(t, 1, page1.Meta.CurrentPage)
	assert.Equal(t, 2, page1.Meta.PageSize)

	// repeated call with no explicit order stays primary-key ascending
	again, err := repo.Paginate(2, 1)
	require.NoError(t, err)
	require.Len(t, again.Data, 2)
	assert.Equal(t, page1.Data[0].ID, again.Data[0].ID)

	page2, err := repo.Paginate(2, 2)
	require.NoError(t, err)
	require.Len(t, page2.Data, 1)
	assert.Equal(t, ids[2], page2.Data[0].ID)
}

func TestPaginateExplicitOrdering(t *testing.T) {
	db := openTestDB(t)
	repo := newGameRepo(t, db)
	user := seedUser(t, db, "owner")

	for _, name := range []string{"banana", "apple", "cherry"} {
		_, err := repo.Create(map[string]any{"name": name, "user_id": user.ID})
		require.NoError(t, err)
	}

	page, err := repo.OrderBy(Order{Column: "name", Direction: "desc"}).Paginate(3, 1)
	require.NoError(t, err)
	require.Len(t, page.Data, 3)
	assert.Equal(t, "cherry", page.Data[0].Name)
	assert.Equal(t, "banana", page.Data[1].Name)
	assert.Equal(t, "apple", page.Data[2].Name)
}

func TestOrderByDeduplicates(t *testing.T) {
	db := openTestDB(t)
	repo := newGameRepo(t, db)

	o := Order{Column: "name", Direction: "desc"}
	chained := repo.OrderBy(o).OrderBy(o).OrderBy(Order{Column: "name", Direction: "asc"})

	assert.Len(t, chained.orders, 2)
	assert.Empty(t, repo.orders, "chaining must not mutate the base repository")
}

func TestUpdate(t *testing.T) {
	db := openTestDB(t)
	repo := newGameRepo(t, db)
	user := seedUser(t, db, "owner")

	game, err := repo.Create(map[string]any{"name": "Rogue Knight", "user_id": user.ID})
	require.NoError(t, err)

	updated, err := repo.Update(map[string]any{"name": "Rogue Knight Remastered", "hacked": true}, game.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rogue Knight Remastered", updated.Name)
	assert.Equal(t, user.ID, updated.UserID)

	reloaded, err := repo.FindOrFail(game.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rogue Knight Remastered", reloaded.Name)

	_, err = repo.Update(map[string]any{"name": "x"}, 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSoftDeleteAndRestore(t *testing.T) {
	db := openTestDB(t)
	repo := newGameRepo(t, db)
	user := seedUser(t, db, "owner")

	game, err := repo.Create(map[string]any{"name": "Rogue Knight", "user_id": user.ID})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(game.ID))

	gone, err := repo.Find(game.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	var trashedCount int64
	require.NoError(t, db.Unscoped().Model(&models.Game{}).Count(&trashedCount).Error)
	assert.Equal(t, int64(1), trashedCount, "soft delete must keep the row")

	require.NoError(t, repo.Restore(game.ID))

	restored, err := repo.FindOrFail(game.ID)
	require.NoError(t, err)
	assert.Equal(t, game.Name, restored.Name)
	assert.Equal(t, game.UserID, restored.UserID)
	assert.False(t, restored.DeletedAt.Valid)

	// restoring a live row reads as not found among the trashed
	assert.ErrorIs(t, repo.Restore(game.ID), ErrNotFound)
	assert.ErrorIs(t, repo.Delete(12345), ErrNotFound)
}

func TestDeleteManyAndRestoreMany(t *testing.T) {
	db := openTestDB(t)
	repo := newGameRepo(t, db)
	user := seedUser(t, db, "owner")

	var ids []uint
	for _, name := range []string{"a", "b", "c"} {
		game, err := repo.Create(map[string]any{"name": name, "user_id": user.ID})
		require.NoError(t, err)
		ids = append(ids, game.ID)
	}

	require.NoError(t, repo.DeleteMany(ids[:2]))

	remaining, err := repo.All()
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, ids[2], remaining[0].ID)

	require.NoError(t, repo.RestoreMany(ids[:2]))

	all, err := repo.All()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestForceDelete(t *testing.T) {
	db := openTestDB(t)
	repo := newGameRepo(t, db)
	user := seedUser(t, db, "owner")

	game, err := repo.Create(map[string]any{"name": "Rogue Knight", "user_id": user.ID})
	require.NoError(t, err)

	require.NoError(t, repo.ForceDelete(game.ID))

	var count int64
	require.NoError(t, db.Unscoped().Model(&models.Game{}).Count(&count).Error)
	assert.Zero(t, count, "force delete must remove the row physically")

	assert.ErrorIs(t, repo.ForceDelete(game.ID), ErrNotFound)
}

func TestRestoreUnsupported(t *testing.T) {
	db := openTestDB(t)
	repo, err := New[models.User](db)
	require.NoError(t, err)

	user := seedUser(t, db, "alice")

	assert.False(t, repo.HasSoftDelete())
	assert.ErrorIs(t, repo.Restore(user.ID), ErrRestoreUnsupported)
	assert.ErrorIs(t, repo.RestoreMany([]uint{user.ID}), ErrRestoreUnsupported)

	// the failed restore must not have mutated anything
	stored, err := repo.FindOrFail(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", stored.Name)
}

func TestSoftDeleteCapabilityDetection(t *testing.T) {
	db := openTestDB(t)

	games := newGameRepo(t, db)
	assert.True(t, games.HasSoftDelete())

	mods, err := NewModRepository(db)
	require.NoError(t, err)
	assert.True(t, mods.HasSoftDelete())
}
