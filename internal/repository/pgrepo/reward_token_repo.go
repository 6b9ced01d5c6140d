package pgrepo

import (
	"context"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const rewardTokenColumns = `token, created_at, claimed_at, user_id, claimed`

type RewardTokenRepository struct {
	conn uow.DBTX
}

func NewRewardTokenRepository(conn uow.DBTX) *RewardTokenRepository {
	return &RewardTokenRepository{conn: conn}
}

func (r *RewardTokenRepository) Create(ctx context.Context, userID string) (*domain.RewardToken, error) {
	t, err := scanRewardToken(r.conn.QueryRow(ctx, `
		INSERT INTO reward_tokens (token, user_id) VALUES ($1, $2)
		RETURNING `+rewardTokenColumns, uuid.NewString(), userID))
	if err != nil {
		return nil, convertErr(err, "creating reward token for user `%s`", userID)
	}
	return t, nil
}

func (r *RewardTokenRepository) FindForUpdate(ctx context.Context, token string) (*domain.RewardToken, error) {
	if _, parseErr := uuid.Parse(token); parseErr != nil {
		return nil, convertErr(pgx.ErrNoRows, "locking reward token `%s`", token)
	}
	t, err := scanRewardToken(r.conn.QueryRow(ctx,
		`SELECT `+rewardTokenColumns+` FROM reward_tokens WHERE token = $1 FOR UPDATE`, token))
	if err != nil {
		return nil, convertErr(err, "locking reward token `%s`", token)
	}
	return t, nil
}

func (r *RewardTokenRepository) MarkClaimed(ctx context.Context, token string) (*domain.RewardToken, error) {
	t, err := scanRewardToken(r.conn.QueryRow(ctx, `
		UPDATE reward_tokens SET claimed = TRUE, claimed_at = now()
		WHERE token = $1 AND NOT claimed
		RETURNING `+rewardTokenColumns, token))
	if err != nil {
		return nil, convertErr(err, "claiming reward token `%s`", token)
	}
	return t, nil
}

func scanRewardToken(row pgx.Row) (*domain.RewardToken, error) {
	var t domain.RewardToken
	if err := row.Scan(&t.Token, &t.CreatedAt, &t.ClaimedAt, &t.UserID, &t.Claimed); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &t, nil
}
