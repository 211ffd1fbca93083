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

type GameInput struct {
	Name string `json:"name" binding:"required,max=255"`
}

type GameResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newGameResponse(game models.Game) GameResponse {
	return GameResponse{
		ID:        game.ID,
		Name:      game.Name,
		UserID:    game.UserID,
		CreatedAt: game.CreatedAt,
		UpdatedAt: game.UpdatedAt,
	}
}

// PaginatedGameResponse defines the structure for a paginated list of games.
type PaginatedGameResponse struct {
	Data []GameResponse      `json:"data"`
	Meta repository.PageMeta `json:"meta"`
}

// endregion

// GameHandler serves the /games resource.
type GameHandler struct {
	games  *service.GameService
	policy policy.GamePolicy
}

// NewGameHandler builds a game handler over the game service.
func NewGameHandler(games *service.GameService) *GameHandler {
	return &GameHandler{games: games}
}

// GetGames godoc
// @Summary      Get a list of games
// @Description  Retrieves a paginated list of games.
// @Tags         games
// @Produce      json
// @Param        page     query  int  false  "Page number"      default(1)
// @Param        per_page query  int  false  "Items per page"   default(15)
// @Success      200 {object} PaginatedGameResponse
// @Router       /games [get]
func (h *GameHandler) GetGames(c *gin.Context) {
	page, perPage := pageParams(c)

	result, err := h.games.Paginate(perPage, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}

	data := make([]GameResponse, 0, len(result.Data))
	for _, game := range result.Data {
		data = append(data, newGameResponse(game))
	}

	c.JSON(http.StatusOK, PaginatedGameResponse{Data: data, Meta: result.Meta})
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} GameResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func (h *GameHandler) GetGameByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	game, err := h.games.FindOrFail(uint(id))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve game"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(*game))
}

// CreateGame godoc
// @Summary      Create a new game
// @Description  Creates a game owned by the authenticated user.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GameInput true "Game Info"
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.games.Create(map[string]any{
		"name":    input.Name,
		"user_id": c.GetUint("userID"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	c.JSON(http.StatusCreated, newGameResponse(*game))
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Updates a game's details. Only the owner may update.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int       true  "Game ID"
// @Param        input body      GameInput true  "New Game Info"
// @Success      200   {object}  GameResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse "Not the owner"
// @Failure      404   {object}  ErrorResponse "Game not found"
// @Router       /games/{id} [put]
func (h *GameHandler) UpdateGame(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.games.FindOrFail(uint(id))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve game"})
		return
	}

	if !h.policy.CanUpdate(c.GetUint("userID"), game) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this game"})
		return
	}

	updated, err := h.games.Update(map[string]any{"name": input.Name}, game.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update game"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(*updated))
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes an existing game. Only the owner may delete.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      204 "Game deleted"
// @Failure      403 {object} ErrorResponse "Not the owner"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [delete]
func (h *GameHandler) DeleteGame(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	game, err := h.games.FindOrFail(uint(id))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve game"})
		return
	}

	if !h.policy.CanDelete(c.GetUint("userID"), game) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this game"})
		return
	}

	if err := h.games.Delete(game.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete game"})
		return
	}

	c.Status(http.StatusNoContent)
}

// pageParams reads page/per_page query parameters, clamping both to sane
// values.
func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	if err != nil || perPage < 1 {
		perPage = 15
	}
	if perPage > 100 {
		perPage = 100 // Max page size
	}

	return page, perPage
}
