package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"modhub/backend/internal/models"
	"modhub/backend/internal/policy"
	"modhub/backend/internal/repository"
	"modhub/backend/internal/service"
)

// region --- DTOs ---

type ModInput struct {
	Name string `json:"name" binding:"required,max=255"`
}

type ModResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	UserID    uint      `json:"user_id"`
	GameID    uint      `json:"game_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newModResponse(mod models.Mod) ModResponse {
	return ModResponse{
		ID:        mod.ID,
		Name:      mod.Name,
		UserID:    mod.UserID,
		GameID:    mod.GameID,
		CreatedAt: mod.CreatedAt,
		UpdatedAt: mod.UpdatedAt,
	}
}

// PaginatedModResponse defines the structure for a paginated list of mods.
type PaginatedModResponse struct {
	Data []ModResponse       `json:"data"`
	Meta repository.PageMeta `json:"meta"`
}

// endregion

// ModHandler serves the /games/:id/mods resource.
type ModHandler struct {
	mods   *service.ModService
	games  *service.GameService
	policy policy.ModPolicy
}

// NewModHandler builds a mod handler over the mod and game services.
func NewModHandler(mods *service.ModService, games *service.GameService) *ModHandler {
	return &ModHandler{mods: mods, games: games}
}

// resolveGame loads the game named in the path, writing a 404 on a miss.
func (h *ModHandler) resolveGame(c *gin.Context) (*models.Game, bool) {
	id, _ := strconv.Atoi(c.Param("id"))

	game, err := h.games.FindOrFail(uint(id))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve game"})
		return nil, false
	}
	return game, true
}

// GetMods godoc
// @Summary      Get mods of a game
// @Description  Retrieves a paginated list of mods for a specific game.
// @Tags         mods
// @Produce      json
// @Param        id       path   int  true   "Game ID"
// @Param        page     query  int  false  "Page number"     default(1)
// @Param        per_page query  int  false  "Items per page"  default(15)
// @Success      200 {object} PaginatedModResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id}/mods [get]
func (h *ModHandler) GetMods(c *gin.Context) {
	game, ok := h.resolveGame(c)
	if !ok {
		return
	}
	page, perPage := pageParams(c)

	result, err := h.mods.PaginateByGame(game.ID, perPage, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve mods"})
		return
	}

	data := make([]ModResponse, 0, len(result.Data))
	for _, mod := range result.Data {
		data = append(data, newModResponse(mod))
	}

	c.JSON(http.StatusOK, PaginatedModResponse{Data: data, Meta: result.Meta})
}

// GetModByID godoc
// @Summary      Get mod by ID
// @Tags         mods
// @Produce      json
// @Param        id    path int true "Game ID"
// @Param        modID path int true "Mod ID"
// @Success      200 {object} ModResponse
// @Failure      404 {object} ErrorResponse "Mod or game not found"
// @Router       /games/{id}/mods/{modID} [get]
func (h *ModHandler) GetModByID(c *gin.Context) {
	modID, _ := strconv.Atoi(c.Param("modID"))

	mod, err := h.mods.FindOrFail(uint(modID))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Mod not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve mod"})
		return
	}

	c.JSON(http.StatusOK, newModResponse(*mod))
}

// CreateMod godoc
// @Summary      Create a new mod for a game
// @Description  Creates a mod under the given game, owned by the authenticated user.
// @Tags         mods
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int      true "Game ID"
// @Param        input body ModInput true "Mod Info"
// @Success      201  {object}  ModResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{id}/mods [post]
func (h *ModHandler) CreateMod(c *gin.Context) {
	game, ok := h.resolveGame(c)
	if !ok {
		return
	}

	var input ModInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mod, err := h.mods.Create(map[string]any{
		"name":    input.Name,
		"game_id": game.ID,
		"user_id": c.GetUint("userID"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create mod"})
		return
	}

	c.JSON(http.StatusCreated, newModResponse(*mod))
}

// UpdateMod godoc
// @Summary      Update a mod
// @Description  Updates a mod. Allowed for the mod's owner and the game's owner.
// @Tags         mods
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int      true "Game ID"
// @Param        modID path int      true "Mod ID"
// @Param        input body ModInput true "New Mod Info"
// @Success      200  {object}  ModResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not an owner"
// @Failure      404  {object}  ErrorResponse "Mod or game not found"
// @Router       /games/{id}/mods/{modID} [put]
func (h *ModHandler) UpdateMod(c *gin.Context) {
	modID, _ := strconv.Atoi(c.Param("modID"))

	var input ModInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mod, err := h.mods.FindOrFail(uint(modID), "Game")
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Mod not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve mod"})
		return
	}

	if !h.policy.CanUpdate(c.GetUint("userID"), mod) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this mod"})
		return
	}

	updated, err := h.mods.Update(map[string]any{"name": input.Name}, mod.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update mod"})
		return
	}

	c.JSON(http.StatusOK, newModResponse(*updated))
}

// DeleteMod godoc
// @Summary      Delete a mod
// @Description  Deletes a mod. Allowed for the mod's owner and the game's owner.
// @Tags         mods
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int true "Game ID"
// @Param        modID path int true "Mod ID"
// @Success      204 "Mod deleted"
// @Failure      403 {object} ErrorResponse "Not an owner"
// @Failure      404 {object} ErrorResponse "Mod or game not found"
// @Router       /games/{id}/mods/{modID} [delete]
func (h *ModHandler) DeleteMod(c *gin.Context) {
	modID, _ := strconv.Atoi(c.Param("modID"))

	mod, err := h.mods.FindOrFail(uint(modID), "Game")
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Mod not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve mod"})
		return
	}

	if !h.policy.CanDelete(c.GetUint("userID"), mod) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this mod"})
		return
	}

	if err := h.mods.Delete(mod.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete mod"})
		return
	}

	c.Status(http.StatusNoContent)
}
