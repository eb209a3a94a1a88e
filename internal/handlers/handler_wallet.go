package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/KamilKvasnicka/player-wallet/internal/apperrors"
	portssvc "github.com/KamilKvasnicka/player-wallet/internal/core/ports/services"
	"github.com/KamilKvasnicka/player-wallet/internal/dto"
	"github.com/KamilKvasnicka/player-wallet/internal/middleware"
)

// walletHandler handles HTTP requests for wallet lifecycle and funds.
type walletHandler struct {
	walletService portssvc.WalletSvcFacade
}

// newWalletHandler creates a new walletHandler.
func newWalletHandler(ws portssvc.WalletSvcFacade) *walletHandler {
	return &walletHandler{
		walletService: ws,
	}
}

// outcomeStatus maps a transaction outcome to its HTTP status. Committed and
// replayed transactions answer 200; every rejection answers 400 with the same
// outcome body so callers always get the status taxonomy.
func outcomeStatus(outcome dto.TransactionOutcome) int {
	if outcome.Success {
		return http.StatusOK
	}
	return http.StatusBadRequest
}

// registerWalletRoutes registers routes related to wallets.
func registerWalletRoutes(r *gin.Engine, walletService portssvc.WalletSvcFacade) {
	h := newWalletHandler(walletService)

	wallet := r.Group("/wallet")
	{
		wallet.POST("/register", h.registerWallet)
		wallet.POST("/deposit", h.deposit)
		wallet.POST("/withdraw", h.withdraw)
		wallet.GET("/balance/:playerID", h.getBalance)
		wallet.GET("/transactions/:playerID", h.getTransactions)
		wallet.DELETE("/:playerID", h.deleteWallet)
	}
}

func (h *walletHandler) registerWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterWallet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	wallet, err := h.walletService.RegisterWallet(c.Request.Context(), req.PlayerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Wallet already exists for this player"})
			return
		}
		logger.Error("Failed to register wallet", slog.String("player_id", req.PlayerID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register wallet"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToWalletResponse(wallet))
}

func (h *walletHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Deposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	outcome := h.walletService.Deposit(c.Request.Context(), dto.TransactionRequest{
		PlayerID:   req.PlayerID,
		ExternalID: req.ExternalID,
		Amount:     req.Amount,
	})
	c.JSON(outcomeStatus(outcome), outcome)
}

func (h *walletHandler) withdraw(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Withdraw", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	outcome := h.walletService.Withdraw(c.Request.Context(), dto.TransactionRequest{
		PlayerID:   req.PlayerID,
		ExternalID: req.ExternalID,
		Amount:     req.Amount,
	})
	c.JSON(outcomeStatus(outcome), outcome)
}

func (h *walletHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	playerID := c.Param("playerID")
	if _, err := uuid.Parse(playerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Player ID must be a valid UUID"})
		return
	}

	balance, err := h.walletService.GetBalance(c.Request.Context(), playerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wallet not found"})
			return
		}
		logger.Error("Failed to get balance", slog.String("player_id", playerID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get balance"})
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{PlayerID: playerID, Balance: balance})
}

func (h *walletHandler) getTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	playerID := c.Param("playerID")
	if _, err := uuid.Parse(playerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Player ID must be a valid UUID"})
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	txns, err := h.walletService.GetTransactions(c.Request.Context(), playerID, params.Limit)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wallet not found"})
			return
		}
		logger.Error("Failed to list transactions", slog.String("player_id", playerID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: dto.ToListTransactionResponse(txns)})
}

func (h *walletHandler) deleteWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	playerID := c.Param("playerID")
	if _, err := uuid.Parse(playerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Player ID must be a valid UUID"})
		return
	}

	if err := h.walletService.DeleteWallet(c.Request.Context(), playerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wallet not found"})
			return
		}
		logger.Error("Failed to delete wallet", slog.String("player_id", playerID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete wallet"})
		return
	}

	c.Status(http.StatusNoContent)
}
