package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KamilKvasnicka/player-wallet/internal/apperrors"
	"github.com/KamilKvasnicka/player-wallet/internal/core/domain"
	portsrepo "github.com/KamilKvasnicka/player-wallet/internal/core/ports/repositories"
	"github.com/KamilKvasnicka/player-wallet/internal/models"
)

type PgxWalletRepository struct {
	BaseRepository
}

// newPgxWalletRepository creates a new repository for wallet data.
func newPgxWalletRepository(pool *pgxpool.Pool) portsrepo.WalletRepositoryFacade {
	return &PgxWalletRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxWalletRepository implements portsrepo.WalletRepositoryFacade
var _ portsrepo.WalletRepositoryFacade = (*PgxWalletRepository)(nil)

// Helper to convert domain.Wallet to models.Wallet for DB storage
func toModelWallet(d domain.Wallet) models.Wallet {
	return models.Wallet{
		PlayerID:  d.PlayerID,
		Balance:   d.Balance,
		CreatedAt: d.CreatedAt,
		Version:   d.Version,
	}
}

// Helper to convert models.Wallet from DB to domain.Wallet
func toDomainWallet(m models.Wallet) domain.Wallet {
	return domain.Wallet{
		PlayerID:  m.PlayerID,
		Balance:   m.Balance,
		CreatedAt: m.CreatedAt,
		Version:   m.Version,
	}
}

// SaveWallet inserts a new wallet row.
func (r *PgxWalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	modelWallet := toModelWallet(wallet)

	query := `
		INSERT INTO wallets (player_id, balance, created_at, version)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelWallet.PlayerID,
		modelWallet.Balance,
		modelWallet.CreatedAt,
		modelWallet.Version,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: wallet for player %s already exists", apperrors.ErrDuplicate, modelWallet.PlayerID)
			}
		}
		return fmt.Errorf("failed to save wallet for player %s: %w", modelWallet.PlayerID, err)
	}
	return nil
}

// FindWalletByPlayerID retrieves a wallet by the owning player's ID.
func (r *PgxWalletRepository) FindWalletByPlayerID(ctx context.Context, playerID string) (*domain.Wallet, error) {
	query := `
		SELECT player_id, balance, created_at, version
		FROM wallets
		WHERE player_id = $1;
	`
	var modelWallet models.Wallet
	err := r.Pool.QueryRow(ctx, query, playerID).Scan(
		&modelWallet.PlayerID,
		&modelWallet.Balance,
		&modelWallet.CreatedAt,
		&modelWallet.Version,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find wallet for player %s: %w", playerID, err)
	}

	domainWallet := toDomainWallet(modelWallet)
	return &domainWallet, nil
}

// DeleteWallet removes a wallet row. The journal keeps its entries so the
// audit trail survives the wallet.
func (r *PgxWalletRepository) DeleteWallet(ctx context.Context, playerID string) error {
	query := `DELETE FROM wallets WHERE player_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, playerID)
	if err != nil {
		return fmt.Errorf("failed to delete wallet for player %s: %w", playerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
