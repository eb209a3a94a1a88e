package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/KamilKvasnicka/player-wallet/internal/core/ports/services"
	"github.com/KamilKvasnicka/player-wallet/internal/dto"
	"github.com/KamilKvasnicka/player-wallet/internal/middleware"
)

// gameHandler handles HTTP requests coming from the game engine.
type gameHandler struct {
	gameService portssvc.GameSvcFacade
}

// newGameHandler creates a new gameHandler.
func newGameHandler(gs portssvc.GameSvcFacade) *gameHandler {
	return &gameHandler{
		gameService: gs,
	}
}

// registerGameRoutes registers routes related to game rounds.
func registerGameRoutes(r *gin.Engine, gameService portssvc.GameSvcFacade) {
	h := newGameHandler(gameService)

	game := r.Group("/game")
	{
		game.POST("/stake", h.stake)
		game.POST("/win", h.win)
		game.POST("/endround", h.endRound)
	}
}

// bindGameRequest binds and converts the game engine payload. Returns false
// after writing the error response when binding fails.
func bindGameRequest(c *gin.Context, operation string) (dto.TransactionRequest, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GameTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for "+operation, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return dto.TransactionRequest{}, false
	}
	return dto.TransactionRequest{
		PlayerID:   req.PlayerID,
		ExternalID: req.ExternalID,
		Amount:     req.Amount,
		Kind:       req.Kind,
	}, true
}

func (h *gameHandler) stake(c *gin.Context) {
	req, ok := bindGameRequest(c, "Stake")
	if !ok {
		return
	}
	outcome := h.gameService.Stake(c.Request.Context(), req)
	c.JSON(outcomeStatus(outcome), outcome)
}

func (h *gameHandler) win(c *gin.Context) {
	req, ok := bindGameRequest(c, "Win")
	if !ok {
		return
	}
	outcome := h.gameService.Win(c.Request.Context(), req)
	c.JSON(outcomeStatus(outcome), outcome)
}

func (h *gameHandler) endRound(c *gin.Context) {
	req, ok := bindGameRequest(c, "EndRound")
	if !ok {
		return
	}
	outcome := h.gameService.EndRound(c.Request.Context(), req)
	c.JSON(outcomeStatus(outcome), outcome)
}
